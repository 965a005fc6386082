package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/events"
	"github.com/pawtag/order-service/internal/status"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	failures int
	calls    int
	written  []kafka.Message
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.failures > 0 {
		w.failures--
		return errors.New("leader not available")
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newPublisher(w *fakeWriter) *events.Publisher {
	return events.NewPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)
}

func sampleEvents() []entities.OrderEvent {
	at := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return []entities.OrderEvent{
		{Type: entities.EventOrderCreated, OrderNo: "PT1", UserID: "user-1", Status: status.Pending, Total: 2300, Currency: "BDT", OccurredAt: at},
		{Type: entities.EventOrderExpired, OrderNo: "PT2", UserID: "user-2", Status: status.Expired, Total: 900, Currency: "BDT", OccurredAt: at},
	}
}

func TestPublish(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w)

	require.NoError(t, p.Publish(context.Background(), sampleEvents()))
	require.Len(t, w.written, 2)

	first := w.written[0]
	assert.Equal(t, "PT1", string(first.Key))
	require.Len(t, first.Headers, 1)
	assert.Equal(t, "order.created", string(first.Headers[0].Value))

	var msg events.Message
	require.NoError(t, json.Unmarshal(first.Value, &msg))
	assert.Equal(t, events.Message{
		Type:       "order.created",
		OrderNo:    "PT1",
		UserID:     "user-1",
		Status:     "PENDING",
		Total:      2300,
		Currency:   "BDT",
		OccurredAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}, msg)
}

func TestPublish_Retries(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		wantErr   bool
		wantCalls int
	}{
		{name: "recovers", failures: 2, wantCalls: 3},
		{name: "gives up", failures: 5, wantErr: true, wantCalls: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWriter{failures: tt.failures}
			err := newPublisher(w).Publish(context.Background(), sampleEvents())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, w.written)
			} else {
				assert.NoError(t, err)
				assert.Len(t, w.written, 2)
			}
			assert.Equal(t, tt.wantCalls, w.calls)
		})
	}
}

func TestPublish_Empty(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, newPublisher(w).Publish(context.Background(), nil))
	assert.Zero(t, w.calls)
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, newPublisher(w).Close())
	assert.True(t, w.closed)
}
