package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/internal/service"
	mocks "github.com/xwear/shop-backend/internal/service/mocks"
	txMocks "github.com/xwear/shop-backend/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_Checkout(t *testing.T) {
	type Mocks struct {
		carts      *mocks.MockCartRepo
		catalog    *mocks.MockCatalogRepo
		delivery   *mocks.MockDeliveryRepo
		config     *mocks.MockConfigRepo
		orders     *mocks.MockOrderRepo
		dispatcher *mocks.MockDispatcher
	}
	type MockBehavior func(m Mocks)

	const userID = int64(42)

	dbError := errors.New("db error")

	moscow := entities.City{ID: 1, Name: "Москва", Active: true, DeliveryCost: 2000}

	cart := entities.Cart{ID: 7, UserID: userID}
	items := []entities.CartItem{
		{
			ID:     1,
			CartID: cart.ID,
			Variant: entities.Variant{
				ID: 1, ProductID: 10, ProductName: "Куртка", SizeName: "M",
				Price: 15000, Active: true,
			},
			Quantity: 1,
		},
		{
			ID:     2,
			CartID: cart.ID,
			Variant: entities.Variant{
				ID: 2, ProductID: 11, ProductName: "Кеды", SizeName: "42",
				Price: 18750, DiscountPercent: 20, Active: true,
			},
			Quantity: 1,
		},
	}
	activeProducts := []entities.Product{
		{ID: 10, Name: "Куртка", Active: true},
		{ID: 11, Name: "Кеды", Active: true},
	}

	address := entities.Address{
		ID: 5, UserID: userID, City: moscow,
		Street: "Ленина", House: "10",
	}
	point := entities.PickupPoint{
		ID: 3, City: moscow,
		Address: "Тверская 1", WorkingHours: "10:00-22:00", Active: true,
	}

	cfg := entities.CommercialConfig{FreeDeliveryActive: true, FreeDeliveryThreshold: 100000}

	addressID := address.ID
	pointID := point.ID

	loadCart := func(m Mocks) {
		m.carts.EXPECT().GetOrCreateCart(mock.Anything, userID).Return(cart, nil)
		m.carts.EXPECT().GetCartItems(mock.Anything, userID).Return(items, nil)
		m.catalog.EXPECT().GetProducts(mock.Anything, []int64{10, 11}).Return(activeProducts, nil)
	}

	testCases := []struct {
		name         string
		req          service.CheckoutRequest
		mockBehavior MockBehavior
		// ожидания по возвращенному заказу, проверяются только при wantErr == nil
		wantTotal    int64
		wantDelivery int64
		wantAddress  string
		wantErr      error
	}{
		{
			name: "OK delivery",
			req:  service.CheckoutRequest{DeliveryMethod: entities.MethodDelivery, AddressID: &addressID},
			mockBehavior: func(m Mocks) {
				loadCart(m)
				m.delivery.EXPECT().GetUserAddress(mock.Anything, userID, addressID).Return(address, nil)
				m.config.EXPECT().GetCommercialConfig(mock.Anything).Return(cfg, nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						o.ID = 100
						return o, nil
					})
				m.orders.EXPECT().InsertItems(mock.Anything, int64(100), mock.Anything).Return(nil)
				m.carts.EXPECT().ClearCart(mock.Anything, cart.ID).Return(nil)
				m.dispatcher.EXPECT().Dispatch(mock.Anything).Run(func(evts ...entities.Event) {
					require.Len(t, evts, 1)
					assert.Equal(t, entities.EventOrderReceived, evts[0].Type)
					assert.Equal(t, int64(100), evts[0].OrderID)
				})
			},
			// 150 + 150 (18750 со скидкой 20%) товары, 20 доставка
			wantTotal:    32000,
			wantDelivery: 2000,
			wantAddress:  "г. Москва, ул. Ленина, д. 10",
		},
		{
			name: "OK pickup is free",
			req:  service.CheckoutRequest{DeliveryMethod: entities.MethodPickup, PickupPointID: &pointID},
			mockBehavior: func(m Mocks) {
				loadCart(m)
				m.delivery.EXPECT().GetPickupPoint(mock.Anything, pointID).Return(point, nil)
				m.config.EXPECT().GetCommercialConfig(mock.Anything).Return(cfg, nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						o.ID = 101
						return o, nil
					})
				m.orders.EXPECT().InsertItems(mock.Anything, int64(101), mock.Anything).Return(nil)
				m.carts.EXPECT().ClearCart(mock.Anything, cart.ID).Return(nil)
				m.dispatcher.EXPECT().Dispatch(mock.Anything)
			},
			wantTotal:    30000,
			wantDelivery: 0,
			wantAddress:  "ПВЗ: Тверская 1 (10:00-22:00)",
		},
		{
			name: "empty cart",
			req:  service.CheckoutRequest{DeliveryMethod: entities.MethodPickup, PickupPointID: &pointID},
			mockBehavior: func(m Mocks) {
				m.carts.EXPECT().GetOrCreateCart(mock.Anything, userID).Return(cart, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, userID).Return(nil, nil)
			},
			wantErr: entities.ErrEmptyCart,
		},
		{
			name: "product deactivated after adding to cart",
			req:  service.CheckoutRequest{DeliveryMethod: entities.MethodDelivery, AddressID: &addressID},
			mockBehavior: func(m Mocks) {
				m.carts.EXPECT().GetOrCreateCart(mock.Anything, userID).Return(cart, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, userID).Return(items, nil)
				m.catalog.EXPECT().GetProducts(mock.Anything, []int64{10, 11}).Return([]entities.Product{
					{ID: 10, Name: "Куртка", Active: true},
					{ID: 11, Name: "Кеды", Active: false},
				}, nil)
			},
			wantErr: entities.ErrProductUnavailable,
		},
		{
			name: "delivery without address id",
			req:  service.CheckoutRequest{DeliveryMethod: entities.MethodDelivery},
			mockBehavior: func(m Mocks) {
				loadCart(m)
			},
			wantErr: entities.ErrInvalidDeliveryTarget,
		},
		{
			name: "address belongs to another user",
			req:  service.CheckoutRequest{DeliveryMethod: entities.MethodDelivery, AddressID: &addressID},
			mockBehavior: func(m Mocks) {
				loadCart(m)
				m.delivery.EXPECT().GetUserAddress(mock.Anything, userID, addressID).
					Return(entities.Address{}, entities.ErrAddressNotFound)
			},
			wantErr: entities.ErrInvalidDeliveryTarget,
		},
		{
			name: "inactive pickup point",
			req:  service.CheckoutRequest{DeliveryMethod: entities.MethodPickup, PickupPointID: &pointID},
			mockBehavior: func(m Mocks) {
				loadCart(m)
				inactive := point
				inactive.Active = false
				m.delivery.EXPECT().GetPickupPoint(mock.Anything, pointID).Return(inactive, nil)
			},
			wantErr: entities.ErrInvalidDeliveryTarget,
		},
		{
			name: "order insert fails, cart stays, no event",
			req:  service.CheckoutRequest{DeliveryMethod: entities.MethodPickup, PickupPointID: &pointID},
			mockBehavior: func(m Mocks) {
				loadCart(m)
				m.delivery.EXPECT().GetPickupPoint(mock.Anything, pointID).Return(point, nil)
				m.config.EXPECT().GetCommercialConfig(mock.Anything).Return(cfg, nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, dbError)
				// ClearCart и Dispatch не ожидаются: заказ не создан
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Mocks{
				carts:      mocks.NewMockCartRepo(t),
				catalog:    mocks.NewMockCatalogRepo(t),
				delivery:   mocks.NewMockDeliveryRepo(t),
				config:     mocks.NewMockConfigRepo(t),
				orders:     mocks.NewMockOrderRepo(t),
				dispatcher: mocks.NewMockDispatcher(t),
			}
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			tc.mockBehavior(m)

			svc := service.NewCheckoutService(logger, tx, m.carts, m.catalog, m.delivery, m.config, m.orders, m.dispatcher)

			order, err := svc.Checkout(context.Background(), userID, tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entities.StatusProcessing, order.Status)
			assert.Equal(t, tc.wantTotal, order.TotalPrice)
			assert.Equal(t, tc.wantDelivery, order.DeliveryCost)
			assert.Equal(t, tc.wantAddress, order.AddressText)
			assert.Equal(t, moscow.Name, order.CityName)

			require.Len(t, order.Items, 2)
			// снимок цены: 18750 со скидкой 20% округляется до 15000
			assert.Equal(t, int64(15000), order.Items[0].PriceAtPurchase)
			assert.Equal(t, int64(15000), order.Items[1].PriceAtPurchase)
		})
	}
}
