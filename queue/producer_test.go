package queue_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/queue"

	"github.com/MonkyMars/gecho"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	writeErr error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func testLogger() *gecho.Logger {
	return gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
}

func TestProducerEnqueue(t *testing.T) {
	writer := &fakeWriter{}
	producer := queue.NewProducerWithWriter(writer, testLogger())

	job := queue.MailJob{
		Kind: queue.JobLoginCodeEmail,
		To:   []string{"bethuel@thipe.dev"},
		Payload: map[string]string{
			"code": "482913",
		},
	}

	err := producer.Enqueue(context.Background(), job)
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	var published queue.MailJob
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &published))

	assert.NotEmpty(t, published.ID)
	assert.Equal(t, published.ID, string(writer.messages[0].Key))
	assert.Equal(t, queue.JobLoginCodeEmail, published.Kind)
	assert.Equal(t, []string{"bethuel@thipe.dev"}, published.To)
	assert.Equal(t, "482913", published.Payload["code"])
	assert.False(t, published.EnqueuedAt.IsZero())
}

func TestProducerEnqueueWriteFailure(t *testing.T) {
	writer := &fakeWriter{writeErr: errors.New("broker unreachable")}
	producer := queue.NewProducerWithWriter(writer, testLogger())

	err := producer.Enqueue(context.Background(), queue.MailJob{Kind: queue.JobContactNotify})
	assert.Error(t, err)
}

func TestNilProducerIsSafe(t *testing.T) {
	var producer *queue.Producer

	err := producer.Enqueue(context.Background(), queue.MailJob{Kind: queue.JobContactNotify})
	assert.Error(t, err)

	assert.NoError(t, producer.Close())
}

func TestProducerClose(t *testing.T) {
	writer := &fakeWriter{}
	producer := queue.NewProducerWithWriter(writer, testLogger())

	require.NoError(t, producer.Close())
	assert.True(t, writer.closed)
}
