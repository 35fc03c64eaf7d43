package repo

import (
	"context"
	"fmt"

	"github.com/xwear/shop-backend/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type cartRepo struct {
	base
}

func NewCartRepo(db *sqlx.DB) *cartRepo {
	return &cartRepo{base: newBase(db)}
}

// GetOrCreateCart возвращает корзину пользователя, создавая ее при первом
// обращении. Upsert вместо DO NOTHING, чтобы RETURNING отработал и на
// существующей строке.
func (r *cartRepo) GetOrCreateCart(ctx context.Context, userID int64) (entities.Cart, error) {
	query, args := r.qb.Insert("carts").
		Columns("user_id").
		Values(userID).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id RETURNING cart_id, user_id, created_at").
		MustSql()

	var cart Cart
	if err := r.getContext(ctx, &cart, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get or create cart: %w", err)
	}

	return entities.Cart{ID: cart.CartID, UserID: cart.UserID, CreatedAt: cart.CreatedAt}, nil
}

// GetCartItems возвращает строки корзины пользователя вместе с данными
// вариантов. Внутри транзакции оформления заказа это первый шаг: пустой
// результат означает ErrEmptyCart выше по стеку.
func (r *cartRepo) GetCartItems(ctx context.Context, userID int64) ([]entities.CartItem, error) {
	query, args := r.qb.Select(
		"ci.cart_item_id", "ci.cart_id", "ci.quantity",
		"ps.product_size_id", "ps.price", "ps.discount_percent",
		"ps.size_name", "ps.is_active AS variant_active",
		"p.product_id", "p.name AS product_name").
		From("cart_items ci").
		Join("carts c ON c.cart_id = ci.cart_id").
		Join("product_sizes ps ON ps.product_size_id = ci.product_size_id").
		Join("products p ON p.product_id = ps.product_id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("ci.cart_item_id").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}

	result := make([]entities.CartItem, 0, len(items))
	for _, it := range items {
		result = append(result, CartItemToEntity(it))
	}
	return result, nil
}

// AddItem добавляет вариант в корзину. Если такой вариант уже есть,
// количество суммируется — не более одной строки на (корзина, вариант).
func (r *cartRepo) AddItem(ctx context.Context, cartID, productSizeID int64, quantity int) error {
	query, args := r.qb.Insert("cart_items").
		Columns("cart_id", "product_size_id", "quantity").
		Values(cartID, productSizeID, quantity).
		Suffix("ON CONFLICT (cart_id, product_size_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

func (r *cartRepo) UpdateItemQuantity(ctx context.Context, userID, itemID int64, quantity int) error {
	query, args := r.qb.Update("cart_items").
		Set("quantity", quantity).
		Where("cart_item_id = ? AND cart_id IN (SELECT cart_id FROM carts WHERE user_id = ?)", itemID, userID).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrCartItemNotFound
	}
	return nil
}

func (r *cartRepo) RemoveItem(ctx context.Context, userID, itemID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where("cart_item_id = ? AND cart_id IN (SELECT cart_id FROM carts WHERE user_id = ?)", itemID, userID).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrCartItemNotFound
	}
	return nil
}

func (r *cartRepo) ClearCart(ctx context.Context, cartID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
