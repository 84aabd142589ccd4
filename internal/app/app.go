package app

import (
	"context"
	"log"
	"os"

	"go-storefront/internal/catalog"
	"go-storefront/internal/events"
	"go-storefront/internal/session"
	"go-storefront/internal/shopapi"
	"go-storefront/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	st, rdb, err := buildStore()
	if err != nil {
		return err
	}

	publisher := events.Publisher(events.NopPublisher{})
	if rdb != nil {
		publisher = events.NewPublisher(events.NewRedisOutbox(rdb), zap.L())
	}

	// 2. Setup Remote Shop API
	shop := shopapi.NewClient(os.Getenv("SHOP_API_BASE"), nil, zap.L())

	cat := catalog.NewService(shop, zap.L())
	if err := cat.Refresh(context.Background()); err != nil {
		// a failed initial fetch leaves the cache empty, not the app down
		log.Printf("⚠️ Catalog fetch failed, starting empty: %v", err)
	}

	sessions := session.NewManager(st, zap.L())

	// 3. Register Modules & Routes
	registerModules(router, sessions, cat, shop, publisher)

	return nil
}

// buildStore selects the persistence driver from STORE_DRIVER. Redis is
// the default; it is the only driver carrying cross-context change
// notifications. The redis client is returned alongside so the event
// outbox can share it.
func buildStore() (store.Store, *redis.Client, error) {
	switch os.Getenv("STORE_DRIVER") {
	case "postgres":
		db, err := connectDBWithRetry(os.Getenv("DB_URL"), 5)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPgStore(db), nil, nil

	case "memory":
		return store.NewMemStore(), nil, nil

	default:
		rdb, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(rdb, zap.L()), rdb, nil
	}
}
