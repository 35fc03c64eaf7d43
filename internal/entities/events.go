package entities

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventOrderReceived       EventType = "order_received"
	EventOrderShipped        EventType = "order_shipped"
	EventOrderReadyForPickup EventType = "order_ready_for_pickup"
	EventOrderCancelled      EventType = "order_cancelled"
)

// Event — доменное событие заказа. Отправляется нотификатору только после
// коммита транзакции, породившей его. Дубликаты допустимы (у получателя
// есть EventID для дедупликации), потери фатальными не считаются.
type Event struct {
	EventID      string    `json:"event_id"`
	Type         EventType `json:"type"`
	OrderID      int64     `json:"order_id"`
	UserID       int64     `json:"user_id"`
	TotalPrice   int64     `json:"total_price"`
	DeliveryCost int64     `json:"delivery_cost"`
	CityName     string    `json:"city_name"`
	AddressText  string    `json:"address_text"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func NewEvent(t EventType, o Order) Event {
	return Event{
		EventID:      uuid.NewString(),
		Type:         t,
		OrderID:      o.ID,
		UserID:       o.UserID,
		TotalPrice:   o.TotalPrice,
		DeliveryCost: o.DeliveryCost,
		CityName:     o.CityName,
		AddressText:  o.AddressText,
		OccurredAt:   time.Now().UTC(),
	}
}
