package entities

import "errors"

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrCartItemNotFound      = errors.New("cart item not found")
	ErrVariantNotFound       = errors.New("product variant not found")
	ErrProductUnavailable    = errors.New("product is unavailable")
	ErrInvalidDeliveryTarget = errors.New("invalid delivery target")
	ErrAddressNotFound       = errors.New("address not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrder          = errors.New("invalid order data")
	ErrIllegalTransition     = errors.New("illegal status transition")
)
