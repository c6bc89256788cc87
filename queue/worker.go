package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/config"
	"github.com/MonkyMars/gecho"
	"github.com/segmentio/kafka-go"
)

// Sender delivers a mail job to its recipients
type Sender interface {
	Deliver(ctx context.Context, job MailJob) error
}

// Worker consumes mail jobs from the mail topic and hands them to the sender
type Worker struct {
	reader *kafka.Reader
	sender Sender
	logger *gecho.Logger
}

// NewWorker builds a consumer in the configured consumer group.
// Returns nil when the queue is disabled.
func NewWorker(sender Sender, logger *gecho.Logger) *Worker {
	cfg := config.GetConfig().Queue
	if !cfg.Enabled {
		return nil
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.GroupID,
		MinBytes:       1,
		MaxBytes:       1 << 20, // 1 MB
		MaxWait:        time.Second,
		CommitInterval: 0, // commit after each delivery
	})

	return &Worker{reader: reader, sender: sender, logger: logger}
}

// Run consumes jobs until the context is cancelled. Delivery failures
// are logged and the message is committed anyway; mail delivery is
// best-effort and must never wedge the consumer group.
func (w *Worker) Run(ctx context.Context) {
	if w == nil {
		return
	}

	w.logger.Info("Mail worker started",
		gecho.Field("topic", w.reader.Config().Topic),
		gecho.Field("group_id", w.reader.Config().GroupID))

	for {
		msg, err := w.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			w.logger.Error("Failed to fetch mail job", gecho.Field("error", err.Error()))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		var job MailJob
		if err := json.Unmarshal(msg.Value, &job); err != nil {
			w.logger.Error("Dropping malformed mail job",
				gecho.Field("offset", msg.Offset),
				gecho.Field("error", err.Error()))
		} else if err := w.sender.Deliver(ctx, job); err != nil {
			w.logger.Error("Failed to deliver mail job",
				gecho.Field("job_id", job.ID),
				gecho.Field("kind", job.Kind),
				gecho.Field("error", err.Error()))
		} else {
			w.logger.Info("Mail job delivered",
				gecho.Field("job_id", job.ID),
				gecho.Field("kind", job.Kind))
		}

		if err := w.reader.CommitMessages(ctx, msg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			w.logger.Error("Failed to commit mail job offset", gecho.Field("error", err.Error()))
		}
	}
}

// Close stops the underlying reader
func (w *Worker) Close() error {
	if w == nil {
		return nil
	}
	return w.reader.Close()
}
