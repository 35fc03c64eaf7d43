package handler

import (
	"net/http"
	"strconv"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/internal/middleware"
	"github.com/xwear/shop-backend/internal/service"
	"github.com/xwear/shop-backend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// Checkout оформляет заказ из корзины.
// @Summary      Оформить заказ
// @Description  Превращает корзину в заказ: проверяет доступность товаров, считает суммы, очищает корзину
// @Tags         orders
// @Param        request  body  checkoutRequest  true  "Способ доставки и пункт назначения"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Пустая корзина, недоступный товар или некорректный пункт назначения"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Router       /checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserID(ctx)

	var req checkoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.checkout.Checkout(ctx, userID, service.CheckoutRequest{
		DeliveryMethod: entities.DeliveryMethod(req.DeliveryMethod),
		AddressID:      req.AddressID,
		PickupPointID:  req.PickupPointID,
	})
	if err != nil {
		checkoutsFailed.Inc()
		h.writeDomainError(w, r, err)
		return
	}

	checkoutsSucceeded.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders возвращает заказы пользователя, новые первыми.
// @Summary      Список заказов
// @Tags         orders
// @Success      200  {array}  Order
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserID(ctx)

	orders, err := h.orders.ListOrders(ctx, userID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOrder возвращает заказ пользователя по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id  path  int  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserID(ctx)

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.orders.GetOrder(ctx, userID, orderID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ChangeOrderStatus переводит заказ в новый статус. Доступно только
// операторам: маршрут закрыт ролью admin.
// @Summary      Сменить статус заказа
// @Description  Допустимость перехода проверяет машина состояний заказа
// @Tags         orders
// @Param        order_id  path  int  true  "Идентификатор заказа"
// @Param        request   body  changeStatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Требуется роль admin"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /orders/{order_id}/status [patch]
func (h *HTTPHandler) ChangeOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req changeStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.ChangeStatus(ctx, orderID, entities.Status(req.Status))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
