package entities

import (
	"fmt"
	"time"
)

type City struct {
	ID           int64
	Name         string
	Active       bool
	DeliveryCost int64
}

type Address struct {
	ID        int64
	UserID    int64
	City      City
	Street    string
	House     string
	Apartment string
	IsDefault bool
	CreatedAt time.Time
}

// Text возвращает строку адреса для снимка в заказе.
func (a Address) Text() string {
	s := fmt.Sprintf("ул. %s, д. %s", a.Street, a.House)
	if a.Apartment != "" {
		s += fmt.Sprintf(", кв. %s", a.Apartment)
	}
	return s
}

type PickupPoint struct {
	ID           int64
	City         City
	Address      string
	WorkingHours string
	Active       bool
}

func (p PickupPoint) Text() string {
	return fmt.Sprintf("ПВЗ: %s (%s)", p.Address, p.WorkingHours)
}
