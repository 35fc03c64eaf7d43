package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/internal/handler"
	mocks "github.com/xwear/shop-backend/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testMocks struct {
	carts     *mocks.MockCartService
	checkout  *mocks.MockCheckoutService
	orders    *mocks.MockOrderService
	addresses *mocks.MockAddressService
}

func newTestRouter(t *testing.T) (chi.Router, testMocks) {
	m := testMocks{
		carts:     mocks.NewMockCartService(t),
		checkout:  mocks.NewMockCheckoutService(t),
		orders:    mocks.NewMockOrderService(t),
		addresses: mocks.NewMockAddressService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.carts, m.checkout, m.orders, m.addresses)

	r := chi.NewRouter()
	h.Init(r)
	return r, m
}

func doRequest(r chi.Router, method, path, body string, authorized bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if authorized {
		req.Header.Set("X-User-ID", "42")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doAdminRequest(r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("X-User-ID", "42")
	req.Header.Set("X-User-Role", "admin")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHTTPHandler_Checkout(t *testing.T) {
	createdOrder := entities.Order{
		ID: 100, UserID: 42,
		DeliveryMethod: entities.MethodDelivery,
		CityName:       "Москва",
		AddressText:    "г. Москва, ул. Ленина, д. 10",
		Status:         entities.StatusProcessing,
		TotalPrice:     32000,
		DeliveryCost:   2000,
	}

	testCases := []struct {
		name         string
		body         string
		authorized   bool
		mockBehavior func(m testMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:       "success",
			body:       `{"delivery_method":"delivery","address_id":5}`,
			authorized: true,
			mockBehavior: func(m testMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, int64(42), mock.Anything).
					Return(createdOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"total_price":32000`,
		},
		{
			name:         "unauthorized",
			body:         `{"delivery_method":"delivery","address_id":5}`,
			authorized:   false,
			mockBehavior: func(m testMocks) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"unauthorized"`,
		},
		{
			name:         "unknown delivery method",
			body:         `{"delivery_method":"teleport"}`,
			authorized:   true,
			mockBehavior: func(m testMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:       "empty cart",
			body:       `{"delivery_method":"pickup","pickup_point_id":3}`,
			authorized: true,
			mockBehavior: func(m testMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, int64(42), mock.Anything).
					Return(entities.Order{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"cart is empty"`,
		},
		{
			name:       "unavailable product",
			body:       `{"delivery_method":"pickup","pickup_point_id":3}`,
			authorized: true,
			mockBehavior: func(m testMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, int64(42), mock.Anything).
					Return(entities.Order{}, entities.ErrProductUnavailable).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"product is unavailable"`,
		},
		{
			name:       "invalid delivery target",
			body:       `{"delivery_method":"delivery","address_id":5}`,
			authorized: true,
			mockBehavior: func(m testMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, int64(42), mock.Anything).
					Return(entities.Order{}, entities.ErrInvalidDeliveryTarget).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid delivery target"`,
		},
		{
			name:       "internal error",
			body:       `{"delivery_method":"pickup","pickup_point_id":3}`,
			authorized: true,
			mockBehavior: func(m testMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, int64(42), mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			rr := doRequest(r, http.MethodPost, "/checkout", tc.body, tc.authorized)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetCart(t *testing.T) {
	cart := entities.Cart{
		ID:     7,
		UserID: 42,
		Items: []entities.CartItem{
			{
				ID: 1,
				Variant: entities.Variant{
					ID: 2, ProductID: 11, ProductName: "Кеды", SizeName: "42",
					Price: 18750, DiscountPercent: 20, Active: true,
				},
				Quantity: 2,
			},
		},
	}

	r, m := newTestRouter(t)
	m.carts.EXPECT().GetCart(mock.Anything, int64(42)).Return(cart, nil).Once()

	rr := doRequest(r, http.MethodGet, "/cart", "", true)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	// 18750 со скидкой 20% -> 15000, две штуки
	assert.Equal(t, float64(30000), resp["total"])
	items := resp["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(15000), items[0].(map[string]any)["effective_price"])
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		mockBehavior func(m testMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			path: "/orders/100",
			mockBehavior: func(m testMocks) {
				m.orders.EXPECT().
					GetOrder(mock.Anything, int64(42), int64(100)).
					Return(entities.Order{ID: 100, Status: entities.StatusProcessing}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"processing"`,
		},
		{
			name: "not found",
			path: "/orders/999",
			mockBehavior: func(m testMocks) {
				m.orders.EXPECT().
					GetOrder(mock.Anything, int64(42), int64(999)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "invalid id",
			path:         "/orders/abc",
			mockBehavior: func(m testMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid order id"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			rr := doRequest(r, http.MethodGet, tc.path, "", true)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_ChangeOrderStatus(t *testing.T) {
	t.Run("forbidden for customers", func(t *testing.T) {
		// валидный X-User-ID, но без роли admin: чужой заказ трогать нельзя
		r, _ := newTestRouter(t)

		rr := doRequest(r, http.MethodPatch, "/orders/100/status", `{"status":"cancelled"}`, true)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), `"forbidden"`)
	})

	t.Run("forbidden for other roles", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPatch, "/orders/100/status", strings.NewReader(`{"status":"cancelled"}`))
		req.Header.Set("X-User-ID", "42")
		req.Header.Set("X-User-Role", "support")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("illegal transition", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().
			ChangeStatus(mock.Anything, int64(100), entities.StatusShipped).
			Return(entities.Order{}, entities.ErrIllegalTransition).Once()

		rr := doAdminRequest(r, http.MethodPatch, "/orders/100/status", `{"status":"shipped"}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "illegal status transition")
	})

	t.Run("success", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().
			ChangeStatus(mock.Anything, int64(100), entities.StatusCancelled).
			Return(entities.Order{ID: 100, Status: entities.StatusCancelled}, nil).Once()

		rr := doAdminRequest(r, http.MethodPatch, "/orders/100/status", `{"status":"cancelled"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"cancelled"`)
	})
}

func TestHTTPHandler_CreateAddress(t *testing.T) {
	t.Run("success sets user from context", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.addresses.EXPECT().
			CreateAddress(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, a entities.Address) (entities.Address, error) {
				return a, nil
			})

		rr := doRequest(r, http.MethodPost, "/addresses", `{"city_id":1,"street":"Ленина","house":"10","is_default":true}`, true)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("missing street", func(t *testing.T) {
		r, _ := newTestRouter(t)

		rr := doRequest(r, http.MethodPost, "/addresses", `{"city_id":1,"house":"10"}`, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"Street"`)
	})
}

func TestHTTPHandler_ListCities(t *testing.T) {
	r, m := newTestRouter(t)
	m.addresses.EXPECT().ListCities(mock.Anything).Return([]entities.City{
		{ID: 1, Name: "Москва", Active: true, DeliveryCost: 2000},
	}, nil).Once()

	// публичный маршрут, заголовок не нужен
	rr := doRequest(r, http.MethodGet, "/cities", "", false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"Москва"`)
}
