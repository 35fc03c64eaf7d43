package handler

import (
	"net/http"
	"strconv"

	"github.com/xwear/shop-backend/internal/middleware"
	"github.com/xwear/shop-backend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// GetCart возвращает корзину пользователя.
// @Summary      Получить корзину
// @Description  Возвращает корзину текущего пользователя с посчитанными суммами
// @Tags         cart
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart [get]
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserID(ctx)

	cart, err := h.carts.GetCart(ctx, userID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// AddCartItem добавляет вариант товара в корзину.
// @Summary      Добавить товар в корзину
// @Description  Повторное добавление того же варианта увеличивает количество
// @Tags         cart
// @Param        request  body  addItemRequest  true  "Вариант и количество"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Вариант не найден"
// @Failure      409  {object}  utils.ErrorResponse "Товар недоступен"
// @Router       /cart/items [post]
func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserID(ctx)

	var req addItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cart, err := h.carts.AddItem(ctx, userID, req.ProductSizeID, req.Quantity)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// UpdateCartItem меняет количество в строке корзины.
// @Summary      Изменить количество
// @Tags         cart
// @Param        item_id  path  int  true  "Идентификатор строки корзины"
// @Param        request  body  updateItemRequest  true  "Новое количество"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse "Строка не найдена"
// @Router       /cart/items/{item_id} [patch]
func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserID(ctx)

	itemID, err := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid item id", http.StatusBadRequest)
		return
	}

	var req updateItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cart, err := h.carts.UpdateItem(ctx, userID, itemID, req.Quantity)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// RemoveCartItem удаляет строку корзины.
// @Summary      Удалить строку корзины
// @Tags         cart
// @Param        item_id  path  int  true  "Идентификатор строки корзины"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Строка не найдена"
// @Router       /cart/items/{item_id} [delete]
func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserID(ctx)

	itemID, err := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := h.carts.RemoveItem(ctx, userID, itemID); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
