package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/internal/pricing"
	"github.com/xwear/shop-backend/pkg/trm"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	InsertItems(ctx context.Context, orderID int64, items []entities.OrderItem) error
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
	ListOrders(ctx context.Context, userID int64) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status entities.Status) error
}

type ConfigRepo interface {
	GetCommercialConfig(ctx context.Context) (entities.CommercialConfig, error)
}

type Dispatcher interface {
	Dispatch(evts ...entities.Event)
}

type CheckoutRequest struct {
	DeliveryMethod entities.DeliveryMethod
	AddressID      *int64
	PickupPointID  *int64
}

type checkoutService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	carts      CartRepo
	catalog    CatalogRepo
	delivery   DeliveryRepo
	config     ConfigRepo
	orders     OrderRepo
	dispatcher Dispatcher
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	carts CartRepo,
	catalog CatalogRepo,
	delivery DeliveryRepo,
	config ConfigRepo,
	orders OrderRepo,
	dispatcher Dispatcher,
) *checkoutService {
	return &checkoutService{
		logger:     logger.With(slog.String("service", "checkout")),
		txManager:  txManager,
		carts:      carts,
		catalog:    catalog,
		delivery:   delivery,
		config:     config,
		orders:     orders,
		dispatcher: dispatcher,
	}
}

// Checkout превращает корзину в заказ. Все шаги — от чтения корзины до ее
// очистки — выполняются в одной транзакции: либо заказ создан и корзина
// пуста, либо не изменилось ничего. Событие order_received уходит
// нотификатору только после коммита.
func (s *checkoutService) Checkout(ctx context.Context, userID int64, req CheckoutRequest) (entities.Order, error) {
	var (
		order entities.Order
		evt   entities.Event
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.carts.GetOrCreateCart(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}

		items, err := s.carts.GetCartItems(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load cart items: %w", err)
		}
		if len(items) == 0 {
			return entities.ErrEmptyCart
		}

		products, err := s.catalog.GetProducts(ctx, productIDs(items))
		if err != nil {
			return fmt.Errorf("failed to reload products: %w", err)
		}
		if err := checkAvailability(items, products); err != nil {
			return err
		}

		target, err := s.resolveTarget(ctx, userID, req)
		if err != nil {
			return err
		}

		subtotal, err := pricing.Subtotal(items)
		if err != nil {
			return err
		}

		cfg, err := s.config.GetCommercialConfig(ctx)
		if err != nil {
			return fmt.Errorf("failed to load commercial config: %w", err)
		}
		deliveryCost := pricing.DeliveryCost(req.DeliveryMethod, target.city, subtotal, cfg)

		order, err = s.orders.CreateOrder(ctx, buildOrderWithItems(userID, req.DeliveryMethod, target, items, subtotal, deliveryCost))
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		if err := s.orders.InsertItems(ctx, order.ID, order.Items); err != nil {
			return fmt.Errorf("failed to insert order items: %w", err)
		}

		if err := s.carts.ClearCart(ctx, cart.ID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		evt = entities.NewEvent(entities.EventOrderReceived, order)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	// транзакция закоммичена — только теперь событие можно отдавать
	s.dispatcher.Dispatch(evt)

	s.logger.Info("order created",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", userID),
		slog.Int64("total_price", order.TotalPrice),
	)
	return order, nil
}

func (s *checkoutService) resolveTarget(ctx context.Context, userID int64, req CheckoutRequest) (deliveryTarget, error) {
	switch req.DeliveryMethod {
	case entities.MethodDelivery:
		if req.AddressID == nil {
			return deliveryTarget{}, fmt.Errorf("%w: address_id is required", entities.ErrInvalidDeliveryTarget)
		}

		address, err := s.delivery.GetUserAddress(ctx, userID, *req.AddressID)
		if errors.Is(err, entities.ErrAddressNotFound) {
			return deliveryTarget{}, fmt.Errorf("%w: address does not belong to user", entities.ErrInvalidDeliveryTarget)
		}
		if err != nil {
			return deliveryTarget{}, fmt.Errorf("failed to resolve address: %w", err)
		}
		if !address.City.Active {
			return deliveryTarget{}, fmt.Errorf("%w: delivery to %s is not available", entities.ErrInvalidDeliveryTarget, address.City.Name)
		}

		return deliveryTarget{
			city:        address.City,
			addressText: fmt.Sprintf("г. %s, %s", address.City.Name, address.Text()),
		}, nil

	case entities.MethodPickup:
		if req.PickupPointID == nil {
			return deliveryTarget{}, fmt.Errorf("%w: pickup_point_id is required", entities.ErrInvalidDeliveryTarget)
		}

		point, err := s.delivery.GetPickupPoint(ctx, *req.PickupPointID)
		if err != nil {
			return deliveryTarget{}, err
		}
		if !point.Active {
			return deliveryTarget{}, fmt.Errorf("%w: pickup point is not active", entities.ErrInvalidDeliveryTarget)
		}

		pointID := point.ID
		return deliveryTarget{
			city:          point.City,
			addressText:   point.Text(),
			pickupPointID: &pointID,
		}, nil
	}

	return deliveryTarget{}, fmt.Errorf("%w: unknown delivery method %q", entities.ErrInvalidDeliveryTarget, req.DeliveryMethod)
}

func buildOrderWithItems(userID int64, method entities.DeliveryMethod, target deliveryTarget, items []entities.CartItem, subtotal, deliveryCost int64) entities.Order {
	order, orderItems := buildOrder(userID, method, target, items, subtotal, deliveryCost)
	order.Items = orderItems
	return order
}
