package repo

import (
	"database/sql"
	"time"

	"github.com/xwear/shop-backend/internal/entities"
)

type Cart struct {
	CartID    int64     `db:"cart_id"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// CartItem — строка корзины вместе с данными варианта (join).
type CartItem struct {
	CartItemID      int64  `db:"cart_item_id"`
	CartID          int64  `db:"cart_id"`
	Quantity        int    `db:"quantity"`
	ProductSizeID   int64  `db:"product_size_id"`
	ProductID       int64  `db:"product_id"`
	ProductName     string `db:"product_name"`
	SizeName        string `db:"size_name"`
	Price           int64  `db:"price"`
	DiscountPercent int    `db:"discount_percent"`
	VariantActive   bool   `db:"variant_active"`
}

type Product struct {
	ProductID int64  `db:"product_id"`
	Name      string `db:"name"`
	IsActive  bool   `db:"is_active"`
}

type City struct {
	CityID       int64  `db:"city_id"`
	Name         string `db:"name"`
	IsActive     bool   `db:"is_active"`
	DeliveryCost int64  `db:"delivery_cost"`
}

type Address struct {
	AddressID int64          `db:"address_id"`
	UserID    int64          `db:"user_id"`
	Street    string         `db:"street"`
	House     string         `db:"house"`
	Apartment sql.NullString `db:"apartment"`
	IsDefault bool           `db:"is_default"`
	CreatedAt time.Time      `db:"created_at"`

	CityID           int64  `db:"city_id"`
	CityName         string `db:"city_name"`
	CityActive       bool   `db:"city_active"`
	CityDeliveryCost int64  `db:"city_delivery_cost"`
}

type PickupPoint struct {
	PickupPointID int64  `db:"pickup_point_id"`
	Address       string `db:"address"`
	WorkingHours  string `db:"working_hours"`
	IsActive      bool   `db:"is_active"`

	CityID           int64  `db:"city_id"`
	CityName         string `db:"city_name"`
	CityActive       bool   `db:"city_active"`
	CityDeliveryCost int64  `db:"city_delivery_cost"`
}

type Order struct {
	OrderID        int64         `db:"order_id"`
	UserID         int64         `db:"user_id"`
	DeliveryMethod string        `db:"delivery_method"`
	PickupPointID  sql.NullInt64 `db:"pickup_point_id"`
	CityID         int64         `db:"city_id"`
	CityName       string        `db:"city_name"`
	AddressText    string        `db:"address_text"`
	Status         string        `db:"status"`
	TotalPrice     int64         `db:"total_price"`
	DeliveryCost   int64         `db:"delivery_cost"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

type OrderItem struct {
	OrderItemID     int64         `db:"order_item_id"`
	OrderID         int64         `db:"order_id"`
	ProductID       sql.NullInt64 `db:"product_id"`
	ProductName     string        `db:"product_name"`
	SizeName        string        `db:"size_name"`
	PriceAtPurchase int64         `db:"price_at_purchase"`
	Quantity        int           `db:"quantity"`
}

type CommercialConfig struct {
	FreeDeliveryActive    bool  `db:"free_delivery_active"`
	FreeDeliveryThreshold int64 `db:"free_delivery_threshold"`
}

func CartItemToEntity(it CartItem) entities.CartItem {
	return entities.CartItem{
		ID:       it.CartItemID,
		CartID:   it.CartID,
		Quantity: it.Quantity,
		Variant: entities.Variant{
			ID:              it.ProductSizeID,
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			SizeName:        it.SizeName,
			Price:           it.Price,
			DiscountPercent: it.DiscountPercent,
			Active:          it.VariantActive,
		},
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{ID: p.ProductID, Name: p.Name, Active: p.IsActive}
}

func CityToEntity(c City) entities.City {
	return entities.City{ID: c.CityID, Name: c.Name, Active: c.IsActive, DeliveryCost: c.DeliveryCost}
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		ID:        a.AddressID,
		UserID:    a.UserID,
		Street:    a.Street,
		House:     a.House,
		Apartment: nullStringToString(a.Apartment),
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
		City: entities.City{
			ID:           a.CityID,
			Name:         a.CityName,
			Active:       a.CityActive,
			DeliveryCost: a.CityDeliveryCost,
		},
	}
}

func PickupPointToEntity(p PickupPoint) entities.PickupPoint {
	return entities.PickupPoint{
		ID:           p.PickupPointID,
		Address:      p.Address,
		WorkingHours: p.WorkingHours,
		Active:       p.IsActive,
		City: entities.City{
			ID:           p.CityID,
			Name:         p.CityName,
			Active:       p.CityActive,
			DeliveryCost: p.CityDeliveryCost,
		},
	}
}

func OrderItemToEntity(it OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:              it.OrderItemID,
		OrderID:         it.OrderID,
		ProductID:       nullInt64ToPtr(it.ProductID),
		ProductName:     it.ProductName,
		SizeName:        it.SizeName,
		PriceAtPurchase: it.PriceAtPurchase,
		Quantity:        it.Quantity,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:             o.OrderID,
		UserID:         o.UserID,
		DeliveryMethod: entities.DeliveryMethod(o.DeliveryMethod),
		PickupPointID:  nullInt64ToPtr(o.PickupPointID),
		CityID:         o.CityID,
		CityName:       o.CityName,
		AddressText:    o.AddressText,
		Status:         entities.Status(o.Status),
		TotalPrice:     o.TotalPrice,
		DeliveryCost:   o.DeliveryCost,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}

	return order
}
