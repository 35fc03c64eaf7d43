package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/internal/middleware"
	"github.com/xwear/shop-backend/internal/service"
	"github.com/xwear/shop-backend/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	GetCart(ctx context.Context, userID int64) (entities.Cart, error)
	AddItem(ctx context.Context, userID, productSizeID int64, quantity int) (entities.Cart, error)
	UpdateItem(ctx context.Context, userID, itemID int64, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID int64) error
}

type CheckoutService interface {
	Checkout(ctx context.Context, userID int64, req service.CheckoutRequest) (entities.Order, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, userID, orderID int64) (entities.Order, error)
	ListOrders(ctx context.Context, userID int64) ([]entities.Order, error)
	ChangeStatus(ctx context.Context, orderID int64, to entities.Status) (entities.Order, error)
}

type AddressService interface {
	ListAddresses(ctx context.Context, userID int64) ([]entities.Address, error)
	CreateAddress(ctx context.Context, address entities.Address) (entities.Address, error)
	SetDefaultAddress(ctx context.Context, userID, addressID int64) error
	ListPickupPoints(ctx context.Context) ([]entities.PickupPoint, error)
	ListCities(ctx context.Context) ([]entities.City, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	carts     CartService
	checkout  CheckoutService
	orders    OrderService
	addresses AddressService
}

func NewHTTPHandler(logger *slog.Logger, carts CartService, checkout CheckoutService, orders OrderService, addresses AddressService) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		carts:     carts,
		checkout:  checkout,
		orders:    orders,
		addresses: addresses,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/healthz", h.Healthz)
	r.Get("/cities", h.ListCities)
	r.Get("/pickup-points", h.ListPickupPoints)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth)

		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.AddCartItem)
		r.Patch("/cart/items/{item_id}", h.UpdateCartItem)
		r.Delete("/cart/items/{item_id}", h.RemoveCartItem)

		r.Post("/checkout", h.Checkout)

		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{order_id}", h.GetOrder)
		// смена статуса — операция оператора, не покупателя
		r.With(middleware.Admin).Patch("/orders/{order_id}/status", h.ChangeOrderStatus)

		r.Get("/addresses", h.ListAddresses)
		r.Post("/addresses", h.CreateAddress)
		r.Patch("/addresses/{address_id}/default", h.SetDefaultAddress)
	})
}

func (h *HTTPHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// writeDomainError переводит доменные ошибки в HTTP-статусы.
// Всё, что не распознано, логируется и уходит как 500.
func (h *HTTPHandler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entities.ErrCartItemNotFound),
		errors.Is(err, entities.ErrVariantNotFound),
		errors.Is(err, entities.ErrAddressNotFound),
		errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)

	// ошибки оформления заказа клиент чинит сам, поэтому 400
	case errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrProductUnavailable),
		errors.Is(err, entities.ErrInvalidDeliveryTarget):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, entities.ErrIllegalTransition):
		utils.WriteError(w, err.Error(), http.StatusConflict)

	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
