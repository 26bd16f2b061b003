package events

import (
	"context"
	"fmt"
	"time"

	"boldstore-be/internal/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	writer MessageWriter
}

func NewKafkaPublisher(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// NewKafkaWriter builds the writer for broker and topic.
func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	value, err := e.encode()
	if err != nil {
		return fmt.Errorf("encode %s event: %w", e.Type, err)
	}

	occurred := e.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}

	msg := kafka.Message{
		Key:   []byte(e.Key),
		Value: value,
		Time:  occurred,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}
	if rid := logger.RequestIDFrom(ctx); rid != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: "request_id", Value: []byte(rid)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.FromCtx(ctx).Error("kafka publish failed",
			zap.String("event_type", e.Type),
			zap.String("key", e.Key),
			zap.Error(err),
		)
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

// LogPublisher stands in when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, e Event) error {
	value, err := e.encode()
	if err != nil {
		return fmt.Errorf("encode %s event: %w", e.Type, err)
	}

	logger.FromCtx(ctx).Info("event published",
		zap.String("event_type", e.Type),
		zap.String("key", e.Key),
		zap.ByteString("payload", value),
	)
	return nil
}
