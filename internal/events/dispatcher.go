// Package events доставляет доменные события нотификатору строго после
// коммита породившей их транзакции: сервисы кладут события в очередь уже
// после возврата из trm.Manager.Do.
package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/pkg/utils"
)

type Notifier interface {
	Send(ctx context.Context, evt entities.Event) error
}

type Dispatcher struct {
	logger   *slog.Logger
	notifier Notifier
	queue    chan entities.Event
}

func NewDispatcher(logger *slog.Logger, notifier Notifier, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 128
	}
	return &Dispatcher{
		logger:   logger.With(slog.String("component", "dispatcher")),
		notifier: notifier,
		queue:    make(chan entities.Event, buffer),
	}
}

// Dispatch ставит события в очередь, не блокируя обработчик запроса.
// Переполнение очереди роняет событие с логом: потерянное уведомление
// не повод валить оформление заказа.
func (d *Dispatcher) Dispatch(evts ...entities.Event) {
	for _, evt := range evts {
		select {
		case d.queue <- evt:
		default:
			d.logger.Error("event queue is full, dropping event",
				slog.String("event_id", evt.EventID),
				slog.String("type", string(evt.Type)),
				slog.Int64("order_id", evt.OrderID),
			)
		}
	}
}

// Start запускает воркер доставки. Ошибки нотификатора логируются
// и никогда не поднимаются наверх.
func (d *Dispatcher) Start(ctx context.Context) error {
	go func() {
		for {
			select {
			case evt := <-d.queue:
				d.deliver(ctx, evt)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, evt entities.Event) {
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}

	err := utils.Retry(cfg, func() error {
		return d.notifier.Send(ctx, evt)
	}, context.Canceled)

	if err != nil {
		d.logger.Error("failed to deliver event",
			slog.String("event_id", evt.EventID),
			slog.String("type", string(evt.Type)),
			slog.Int64("order_id", evt.OrderID),
			slog.Any("error", err),
		)
		return
	}

	d.logger.Debug("event delivered",
		slog.String("event_id", evt.EventID),
		slog.String("type", string(evt.Type)),
	)
}
