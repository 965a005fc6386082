package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/pkg/utils"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
}

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	logger *slog.Logger
	writer MessageWriter
	retry  utils.RetryConfig
}

func NewKafkaPublisher(logger *slog.Logger, cfg Config) *Publisher {
	return NewPublisher(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func NewPublisher(logger *slog.Logger, w MessageWriter) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: w,
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 50 * time.Millisecond,
			MaxDelay:     time.Second,
		},
	}
}

// Message is the wire form consumers of the event topic decode.
type Message struct {
	Type       string    `json:"type"`
	OrderNo    string    `json:"order_no"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	Total      int64     `json:"total"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publish writes the events keyed by order number, so one order's events
// stay ordered on a single partition.
func (p *Publisher) Publish(ctx context.Context, events []entities.OrderEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(Message{
			Type:       string(e.Type),
			OrderNo:    e.OrderNo,
			UserID:     e.UserID,
			Status:     string(e.Status),
			Total:      e.Total,
			Currency:   e.Currency,
			OccurredAt: e.OccurredAt.UTC(),
		})
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(e.OrderNo),
			Value:   value,
			Headers: []kafka.Header{{Key: "event_type", Value: []byte(e.Type)}},
		})
	}

	start := time.Now()
	err := utils.Retry(ctx, p.retry, func() error {
		return p.writer.WriteMessages(ctx, msgs...)
	})
	publishDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		eventsFailed.Add(float64(len(msgs)))
		return fmt.Errorf("failed to write events: %w", err)
	}

	for _, e := range events {
		eventsPublished.WithLabelValues(string(e.Type)).Inc()
	}
	p.logger.DebugContext(ctx, "events published", slog.Int("count", len(msgs)))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
