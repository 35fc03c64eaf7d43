package events_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	mu       sync.Mutex
	failures int
	sent     []entities.Event
}

func (f *fakeNotifier) Send(_ context.Context, evt entities.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("broker unavailable")
	}
	f.sent = append(f.sent, evt)
	return nil
}

func (f *fakeNotifier) sentEvents() []entities.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entities.Event(nil), f.sent...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDispatcher_DeliversAfterDispatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := &fakeNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := events.NewDispatcher(logger, notifier, 8)
	require.NoError(t, d.Start(ctx))

	order := entities.Order{ID: 42, UserID: 7}
	received := entities.NewEvent(entities.EventOrderReceived, order)
	cancelled := entities.NewEvent(entities.EventOrderCancelled, order)

	d.Dispatch(received, cancelled)

	waitFor(t, func() bool { return len(notifier.sentEvents()) == 2 })

	sent := notifier.sentEvents()
	assert.Equal(t, entities.EventOrderReceived, sent[0].Type)
	assert.Equal(t, entities.EventOrderCancelled, sent[1].Type)
}

func TestDispatcher_RetriesNotifierFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// первые две попытки падают, третья проходит
	notifier := &fakeNotifier{failures: 2}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := events.NewDispatcher(logger, notifier, 8)
	require.NoError(t, d.Start(ctx))

	d.Dispatch(entities.NewEvent(entities.EventOrderShipped, entities.Order{ID: 1}))

	waitFor(t, func() bool { return len(notifier.sentEvents()) == 1 })
	assert.Equal(t, entities.EventOrderShipped, notifier.sentEvents()[0].Type)
}

func TestDispatcher_OverflowDropsWithoutBlocking(t *testing.T) {
	// воркер не запущен — очередь заполняется до отказа
	notifier := &fakeNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := events.NewDispatcher(logger, notifier, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			d.Dispatch(entities.NewEvent(entities.EventOrderReceived, entities.Order{ID: int64(i)}))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on full queue")
	}
}
