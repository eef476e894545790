package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/foliohub/internal/config"
)

const TopicPortfolioEvents = "portfolio.events"

const (
	EventProfileUpdated = "profile.updated"
	EventSectionCreated = "section.created"
	EventSectionUpdated = "section.updated"
	EventSectionDeleted = "section.deleted"
)

// PortfolioEventPayload is published after each successful profile or
// section mutation. The worker uses Username to evict the cached public
// portfolio.
type PortfolioEventPayload struct {
	EventType string     `json:"event_type"`
	UserID    uuid.UUID  `json:"user_id"`
	Username  string     `json:"username"`
	SectionID *uuid.UUID `json:"section_id,omitempty"`
}

type KafkaProducerClient struct {
	PortfolioEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producer successfully.")

	return &KafkaProducerClient{PortfolioEventsWriter: writer}, nil
}

// Publish is best effort from the caller's point of view: use cases log
// the error and never fail the request over it.
func (c *KafkaProducerClient) Publish(ctx context.Context, payload PortfolioEventPayload) error {
	if c == nil || c.PortfolioEventsWriter == nil {
		return nil
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal portfolio event: %w", err)
	}

	return c.PortfolioEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.Username),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.PortfolioEventsWriter != nil {
		c.PortfolioEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producer")
}
