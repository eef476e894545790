package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/foliohub/adapters/event"
	"github.com/khoahotran/foliohub/adapters/persistence"
	"github.com/khoahotran/foliohub/internal/config"
)

// The worker keeps the public portfolio cache honest: every profile or
// section mutation publishes an event, and the entry for that username
// gets evicted here. Entries also expire by TTL, so a lost message only
// extends staleness, it never serves wrong data forever.
func main() {
	fmt.Println("Starting FolioHub Worker...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("FATAL: KAFKA_BROKERS is required for the worker")
	}
	if cfg.Redis.Addr == "" {
		log.Fatal("FATAL: REDIS_ADDR is required for the worker")
	}

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPortfolioEvents,
		GroupID:  "portfolio-cache-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicPortfolioEvents)

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.PortfolioEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(consumer, msg)
			continue
		}

		log.Printf("Processing event: [%s] for user %s", payload.EventType, payload.Username)

		key := persistence.PortfolioCacheKey(payload.Username)
		if err := redisClient.Del(ctx, key).Err(); err != nil {
			log.Printf("ERROR: Failed to evict cache for %s: %v", payload.Username, err)
			continue
		}

		commitMessage(consumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
