package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xwear/shop-backend/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type orderRepo struct {
	base
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{base: newBase(db)}
}

var orderColumns = []string{
	"o.order_id", "o.user_id", "o.delivery_method", "o.pickup_point_id",
	"o.city_id", "c.name AS city_name", "o.address_text", "o.status",
	"o.total_price", "o.delivery_cost", "o.created_at", "o.updated_at",
}

// CreateOrder вставляет строку заказа и возвращает присвоенные базой
// идентификатор и метки времени.
func (r *orderRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("user_id", "delivery_method", "pickup_point_id", "city_id",
			"address_text", "status", "total_price", "delivery_cost").
		Values(o.UserID, string(o.DeliveryMethod), nullInt64(o.PickupPointID), o.CityID,
			o.AddressText, string(o.Status), o.TotalPrice, o.DeliveryCost).
		Suffix("RETURNING order_id, created_at, updated_at").
		MustSql()

	var row struct {
		OrderID   int64        `db:"order_id"`
		CreatedAt sql.NullTime `db:"created_at"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	o.ID = row.OrderID
	o.CreatedAt = row.CreatedAt.Time
	o.UpdatedAt = row.UpdatedAt.Time
	return o, nil
}

// InsertItems вставляет снимки позиций одним запросом,
// чтобы не плодить round-trip внутри транзакции оформления.
func (r *orderRepo) InsertItems(ctx context.Context, orderID int64, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "product_name", "size_name", "price_at_purchase", "quantity")

	for _, it := range items {
		q = q.Values(orderID, nullInt64(it.ProductID), it.ProductName, it.SizeName, it.PriceAtPurchase, it.Quantity)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders o").
		Join("cities c ON c.city_id = o.city_id").
		Where(sq.Eq{"o.order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(
		"order_item_id", "order_id", "product_id", "product_name",
		"size_name", "price_at_purchase", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("order_item_id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

// ListOrders возвращает заказы пользователя со всеми позициями.
// Позиции добираются одним запросом и раскладываются по заказам в памяти.
func (r *orderRepo) ListOrders(ctx context.Context, userID int64) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders o").
		Join("cities c ON c.city_id = o.city_id").
		Where(sq.Eq{"o.user_id": userID}).
		OrderBy("o.created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}

	query, args = r.qb.Select(
		"order_item_id", "order_id", "product_id", "product_name",
		"size_name", "price_at_purchase", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_item_id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[int64][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.OrderID]))
	}
	return result, nil
}

// UpdateStatus меняет только статус и updated_at: остальные поля заказа
// после создания неизменяемы.
func (r *orderRepo) UpdateStatus(ctx context.Context, orderID int64, status entities.Status) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}
