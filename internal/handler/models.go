package handler

import (
	"time"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/internal/pricing"
)

// CartItem позиция корзины
type CartItem struct {
	ID              int64  `json:"id"`
	ProductSizeID   int64  `json:"product_size_id"`
	ProductName     string `json:"product_name"`
	SizeName        string `json:"size_name"`
	Price           int64  `json:"price"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
	EffectivePrice  int64  `json:"effective_price"`
	Quantity        int    `json:"quantity"`
	Total           int64  `json:"total"`
}

// Cart корзина с посчитанными суммами
type Cart struct {
	ID    int64      `json:"id"`
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}

// OrderItem снимок позиции заказа
type OrderItem struct {
	ProductID       *int64 `json:"product_id,omitempty"`
	ProductName     string `json:"product_name"`
	SizeName        string `json:"size_name"`
	PriceAtPurchase int64  `json:"price_at_purchase"`
	Quantity        int    `json:"quantity"`
}

// Order представляет заказ
type Order struct {
	ID             int64       `json:"id"`
	Status         string      `json:"status"`
	DeliveryMethod string      `json:"delivery_method"`
	City           string      `json:"city"`
	Address        string      `json:"address"`
	TotalPrice     int64       `json:"total_price"`
	DeliveryCost   int64       `json:"delivery_cost"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	Items          []OrderItem `json:"items,omitempty"`
}

// Address адрес доставки пользователя
type Address struct {
	ID        int64     `json:"id"`
	CityID    int64     `json:"city_id"`
	City      string    `json:"city"`
	Street    string    `json:"street"`
	House     string    `json:"house"`
	Apartment string    `json:"apartment,omitempty"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

// City город с тарифом доставки
type City struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DeliveryCost int64  `json:"delivery_cost"`
}

// PickupPoint пункт выдачи заказов
type PickupPoint struct {
	ID           int64  `json:"id"`
	CityID       int64  `json:"city_id"`
	City         string `json:"city"`
	Address      string `json:"address"`
	WorkingHours string `json:"working_hours"`
}

type addItemRequest struct {
	ProductSizeID int64 `json:"product_size_id" validate:"required"`
	Quantity      int   `json:"quantity" validate:"required,gt=0"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type checkoutRequest struct {
	DeliveryMethod string `json:"delivery_method" validate:"required,oneof=pickup delivery"`
	AddressID      *int64 `json:"address_id,omitempty"`
	PickupPointID  *int64 `json:"pickup_point_id,omitempty"`
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type createAddressRequest struct {
	CityID    int64  `json:"city_id" validate:"required"`
	Street    string `json:"street" validate:"required"`
	House     string `json:"house" validate:"required"`
	Apartment string `json:"apartment"`
	IsDefault bool   `json:"is_default"`
}

func CartItemEntityToJSON(it entities.CartItem) CartItem {
	return CartItem{
		ID:              it.ID,
		ProductSizeID:   it.Variant.ID,
		ProductName:     it.Variant.ProductName,
		SizeName:        it.Variant.SizeName,
		Price:           it.Variant.Price,
		DiscountPercent: it.Variant.DiscountPercent,
		EffectivePrice:  pricing.EffectivePrice(it.Variant),
		Quantity:        it.Quantity,
		Total:           pricing.ItemTotal(it),
	}
}

func CartEntityToJSON(c entities.Cart) Cart {
	items := make([]CartItem, 0, len(c.Items))
	var total int64
	for _, it := range c.Items {
		jsonItem := CartItemEntityToJSON(it)
		total += jsonItem.Total
		items = append(items, jsonItem)
	}

	return Cart{
		ID:    c.ID,
		Items: items,
		Total: total,
	}
}

func OrderItemEntityToJSON(it entities.OrderItem) OrderItem {
	return OrderItem{
		ProductID:       it.ProductID,
		ProductName:     it.ProductName,
		SizeName:        it.SizeName,
		PriceAtPurchase: it.PriceAtPurchase,
		Quantity:        it.Quantity,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemEntityToJSON(it))
	}

	return Order{
		ID:             o.ID,
		Status:         string(o.Status),
		DeliveryMethod: string(o.DeliveryMethod),
		City:           o.CityName,
		Address:        o.AddressText,
		TotalPrice:     o.TotalPrice,
		DeliveryCost:   o.DeliveryCost,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		Items:          items,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		ID:        a.ID,
		CityID:    a.City.ID,
		City:      a.City.Name,
		Street:    a.Street,
		House:     a.House,
		Apartment: a.Apartment,
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
	}
}

func CityEntityToJSON(c entities.City) City {
	return City{
		ID:           c.ID,
		Name:         c.Name,
		DeliveryCost: c.DeliveryCost,
	}
}

func PickupPointEntityToJSON(p entities.PickupPoint) PickupPoint {
	return PickupPoint{
		ID:           p.ID,
		CityID:       p.City.ID,
		City:         p.City.Name,
		Address:      p.Address,
		WorkingHours: p.WorkingHours,
	}
}
