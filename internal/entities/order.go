package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type DeliveryMethod string

const (
	MethodPickup   DeliveryMethod = "pickup"
	MethodDelivery DeliveryMethod = "delivery"
)

// Order неизменяем после создания, кроме поля Status.
// AddressText и позиции — снимки на момент оформления.
type Order struct {
	ID             int64
	UserID         int64
	DeliveryMethod DeliveryMethod
	PickupPointID  *int64
	CityID         int64
	CityName       string
	AddressText    string
	Status         Status
	TotalPrice     int64
	DeliveryCost   int64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items []OrderItem
}

type OrderItem struct {
	ID      int64
	OrderID int64
	// ProductID обнуляется при удалении товара из каталога, снимки остаются
	ProductID       *int64
	ProductName     string
	SizeName        string
	PriceAtPurchase int64
	Quantity        int
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
}
