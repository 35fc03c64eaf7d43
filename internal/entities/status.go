package entities

import "fmt"

type Status string

const (
	StatusProcessing     Status = "processing"
	StatusReadyForPickup Status = "ready_for_pickup"
	StatusShipped        Status = "shipped"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusReadyForPickup, StatusShipped, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition проверяет допустимость перехода без учета способа доставки.
func (s Status) CanTransition(to Status) bool {
	switch to {
	case StatusReadyForPickup, StatusShipped:
		return s == StatusProcessing
	case StatusCompleted:
		return s == StatusReadyForPickup || s == StatusShipped
	case StatusCancelled:
		return s != StatusCompleted && s != StatusCancelled
	}
	return false
}

// Transition переводит заказ в новый статус. Проверяет и легальность
// перехода, и совместимость статуса со способом доставки: shipped — только
// доставка, ready_for_pickup — только самовывоз. Возвращает событие для
// уведомления, если переход его порождает (nil для completed).
func (o *Order) Transition(to Status) (*Event, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, to)
	}
	if to == StatusShipped && o.DeliveryMethod != MethodDelivery {
		return nil, fmt.Errorf("%w: %s order cannot be shipped", ErrIllegalTransition, o.DeliveryMethod)
	}
	if to == StatusReadyForPickup && o.DeliveryMethod != MethodPickup {
		return nil, fmt.Errorf("%w: %s order cannot be ready for pickup", ErrIllegalTransition, o.DeliveryMethod)
	}
	if !o.Status.CanTransition(to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.Status, to)
	}

	o.Status = to

	switch to {
	case StatusShipped:
		evt := NewEvent(EventOrderShipped, *o)
		return &evt, nil
	case StatusReadyForPickup:
		evt := NewEvent(EventOrderReadyForPickup, *o)
		return &evt, nil
	case StatusCancelled:
		evt := NewEvent(EventOrderCancelled, *o)
		return &evt, nil
	}
	return nil, nil
}
