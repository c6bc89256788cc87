package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/config"
	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes mail jobs to the mail topic
type Producer struct {
	writer KafkaWriter
	logger *gecho.Logger
}

// NewProducer builds a producer connected to the configured brokers.
// Returns nil when the queue is disabled so callers can fall back to
// direct delivery.
func NewProducer(logger *gecho.Logger) *Producer {
	cfg := config.GetConfig().Queue
	if !cfg.Enabled {
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 10 * time.Second,
		BatchTimeout: 50 * time.Millisecond,
	}

	return &Producer{writer: writer, logger: logger}
}

// NewProducerWithWriter builds a producer around an existing writer
func NewProducerWithWriter(writer KafkaWriter, logger *gecho.Logger) *Producer {
	return &Producer{writer: writer, logger: logger}
}

// Enqueue publishes a mail job. The job ID is assigned here.
func (p *Producer) Enqueue(ctx context.Context, job MailJob) error {
	if p == nil || p.writer == nil {
		return fmt.Errorf("mail queue not configured")
	}

	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now().UTC()
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal mail job: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(job.ID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish mail job: %w", err)
	}

	p.logger.Debug("Mail job enqueued",
		gecho.Field("job_id", job.ID),
		gecho.Field("kind", job.Kind))
	return nil
}

// Close flushes pending messages and releases the writer
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
