package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/pkg/trm"
	"github.com/xwear/shop-backend/pkg/utils"
)

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}

type orderService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	repo       OrderRepo
	cache      Cache
	dispatcher Dispatcher
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, dispatcher Dispatcher) *orderService {
	return &orderService{
		logger:     logger.With(slog.String("service", "order")),
		txManager:  txManager,
		repo:       repo,
		cache:      cache,
		dispatcher: dispatcher,
	}
}

func orderCacheKey(orderID int64) string {
	return fmt.Sprintf("order:%d", orderID)
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// GetOrder возвращает заказ пользователя. Чужой заказ неотличим от
// несуществующего: в обоих случаях ErrOrderNotFound.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID int64) (entities.Order, error) {
	if data, ok := s.cache.Get(orderCacheKey(orderID)); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.Int64("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		if order.UserID != userID {
			return entities.Order{}, entities.ErrOrderNotFound
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if order.UserID != userID {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Int64("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderCacheKey(orderID), data)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID int64) ([]entities.Order, error) {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx, userID)
		return err
	}
	if err := utils.Retry(readRetry, fn); err != nil {
		return nil, err
	}
	return orders, nil
}

// ChangeStatus переводит заказ в новый статус через машину состояний.
// Проверка легальности перехода и запись статуса идут в одной транзакции,
// событие уходит нотификатору только после коммита.
func (s *orderService) ChangeStatus(ctx context.Context, orderID int64, to entities.Status) (entities.Order, error) {
	var (
		order entities.Order
		evt   *entities.Event
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		evt, err = order.Transition(to)
		if err != nil {
			return err
		}

		return s.repo.UpdateStatus(ctx, orderID, order.Status)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Remove(orderCacheKey(orderID))

	if evt != nil {
		s.dispatcher.Dispatch(*evt)
	}

	s.logger.Info("order status changed",
		slog.Int64("order_id", orderID),
		slog.String("status", string(to)),
	)
	return order, nil
}
