package handler

import (
	"net/http"
	"strconv"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/internal/middleware"
	"github.com/xwear/shop-backend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// ListAddresses возвращает адреса пользователя.
// @Summary      Список адресов
// @Tags         addresses
// @Success      200  {array}  Address
// @Router       /addresses [get]
func (h *HTTPHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserID(ctx)

	addresses, err := h.addresses.ListAddresses(ctx, userID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	res := make([]Address, 0, len(addresses))
	for _, a := range addresses {
		res = append(res, AddressEntityToJSON(a))
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

// CreateAddress сохраняет новый адрес доставки.
// @Summary      Добавить адрес
// @Description  Флаг is_default атомарно снимается с прежнего основного адреса
// @Tags         addresses
// @Param        request  body  createAddressRequest  true  "Адрес"
// @Success      201  {object}  Address
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /addresses [post]
func (h *HTTPHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserID(ctx)

	var req createAddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	address, err := h.addresses.CreateAddress(ctx, entities.Address{
		UserID:    userID,
		City:      entities.City{ID: req.CityID},
		Street:    req.Street,
		House:     req.House,
		Apartment: req.Apartment,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, AddressEntityToJSON(address), http.StatusCreated)
}

// SetDefaultAddress делает адрес основным.
// @Summary      Сделать адрес основным
// @Tags         addresses
// @Param        address_id  path  int  true  "Идентификатор адреса"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Адрес не найден"
// @Router       /addresses/{address_id}/default [patch]
func (h *HTTPHandler) SetDefaultAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserID(ctx)

	addressID, err := strconv.ParseInt(chi.URLParam(r, "address_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid address id", http.StatusBadRequest)
		return
	}

	if err := h.addresses.SetDefaultAddress(ctx, userID, addressID); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCities возвращает города, в которые возможна доставка.
// @Summary      Список городов
// @Tags         delivery
// @Success      200  {array}  City
// @Router       /cities [get]
func (h *HTTPHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.addresses.ListCities(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	res := make([]City, 0, len(cities))
	for _, c := range cities {
		res = append(res, CityEntityToJSON(c))
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

// ListPickupPoints возвращает действующие пункты выдачи.
// @Summary      Список пунктов выдачи
// @Tags         delivery
// @Success      200  {array}  PickupPoint
// @Router       /pickup-points [get]
func (h *HTTPHandler) ListPickupPoints(w http.ResponseWriter, r *http.Request) {
	points, err := h.addresses.ListPickupPoints(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	res := make([]PickupPoint, 0, len(points))
	for _, p := range points {
		res = append(res, PickupPointEntityToJSON(p))
	}

	utils.WriteJSON(w, res, http.StatusOK)
}
