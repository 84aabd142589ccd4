package store

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "sf"

// RedisStore keeps session state in redis and uses pub/sub as the
// cross-context change signal. Each instance carries a writer id so its
// own writes never echo back through Subscribe.
type RedisStore struct {
	rdb      *redis.Client
	writerID string
	logger   *zap.Logger
}

func NewRedisStore(rdb *redis.Client, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{
		rdb:      rdb,
		writerID: uuid.NewString(),
		logger:   logger.Named("store.redis"),
	}
}

func stateKey(namespace, key string) string {
	return keyPrefix + ":" + namespace + ":" + key
}

func channelKey(namespace string) string {
	return keyPrefix + ":events:" + namespace
}

func (s *RedisStore) Load(ctx context.Context, namespace, key string, dest any) error {
	raw, err := s.rdb.Get(ctx, stateKey(namespace, key)).Bytes()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return ErrMalformed
	}
	return nil
}

func (s *RedisStore) Save(ctx context.Context, namespace, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, stateKey(namespace, key), raw, 0).Err(); err != nil {
		return err
	}
	// best-effort signal to other contexts on the same namespace
	if err := s.rdb.Publish(ctx, channelKey(namespace), s.writerID+"|"+key).Err(); err != nil {
		s.logger.Warn("publish change signal failed",
			zap.String("namespace", namespace),
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return nil
}

func (s *RedisStore) Erase(ctx context.Context, namespace, key string) error {
	return s.rdb.Del(ctx, stateKey(namespace, key)).Err()
}

func (s *RedisStore) Subscribe(ctx context.Context, namespace string, fn func(key string)) (func(), error) {
	sub := s.rdb.Subscribe(ctx, channelKey(namespace))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	ch := sub.Channel()
	go func() {
		for msg := range ch {
			writerID, key, ok := strings.Cut(msg.Payload, "|")
			if !ok || writerID == s.writerID {
				continue
			}
			fn(key)
		}
	}()

	return func() { _ = sub.Close() }, nil
}
