package entities

import "time"

// Cart — одна корзина на пользователя, создается при первом обращении.
type Cart struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	Items     []CartItem
}

type CartItem struct {
	ID       int64
	CartID   int64
	Variant  Variant
	Quantity int
}
