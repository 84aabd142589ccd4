package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-storefront/internal/events"

	"go.uber.org/zap"
)

// RunWorker drains the redis activity outbox into kafka until signalled.
func RunWorker() error {
	log.Println("[WORKER] Starting outbox processor...")

	// 1. Connect to Redis (outbox source)
	rdb, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer rdb.Close()
	log.Println("[WORKER] Redis connected")

	// 2. Setup Kafka writer
	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "storefront.activity"
	}
	kafkaWriter, err := connectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), topic, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()
	log.Println("[WORKER] Kafka writer initialized")

	// 3. Start processor
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outbox := events.NewRedisOutbox(rdb)
	go events.ProcessOutbox(ctx, outbox, kafkaWriter, 5*time.Second, zap.L())

	// 4. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[WORKER] Shutting down...")
	cancel()
	time.Sleep(1 * time.Second)
	log.Println("[WORKER] Stopped")

	return nil
}
