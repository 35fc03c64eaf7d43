package pricing_test

import (
	"testing"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/internal/pricing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	testCases := []struct {
		name     string
		price    int64
		discount int
		want     int64
	}{
		{name: "no discount", price: 10000, discount: 0, want: 10000},
		{name: "20 percent off 100.00", price: 10000, discount: 20, want: 8000},
		{name: "exact half rounds up", price: 500, discount: 50, want: 300},
		{name: "half boundary rounds up", price: 12500, discount: 10, want: 11300},
		{name: "below half rounds down", price: 3100, discount: 5, want: 2900},
		{name: "full discount", price: 10000, discount: 100, want: 0},
		{name: "negative discount ignored", price: 10000, discount: -5, want: 10000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := entities.Variant{Price: tc.price, DiscountPercent: tc.discount}
			assert.Equal(t, tc.want, pricing.EffectivePrice(v))
		})
	}
}

func TestSubtotal(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		_, err := pricing.Subtotal(nil)
		assert.ErrorIs(t, err, entities.ErrEmptyCart)
	})

	t.Run("deterministic", func(t *testing.T) {
		// round(100 * 0.8) * 2 + 50 = 210
		items := []entities.CartItem{
			{Variant: entities.Variant{Price: 10000, DiscountPercent: 20}, Quantity: 2},
			{Variant: entities.Variant{Price: 5000}, Quantity: 1},
		}
		got, err := pricing.Subtotal(items)
		assert.NoError(t, err)
		assert.Equal(t, int64(21000), got)
	})
}

func TestDeliveryCost(t *testing.T) {
	city := entities.City{DeliveryCost: 2000}
	cfg := entities.CommercialConfig{FreeDeliveryActive: true, FreeDeliveryThreshold: 20000}

	testCases := []struct {
		name     string
		method   entities.DeliveryMethod
		subtotal int64
		cfg      entities.CommercialConfig
		want     int64
	}{
		{name: "pickup is free", method: entities.MethodPickup, subtotal: 100, cfg: cfg, want: 0},
		{name: "at threshold", method: entities.MethodDelivery, subtotal: 20000, cfg: cfg, want: 0},
		{name: "just below threshold", method: entities.MethodDelivery, subtotal: 19999, cfg: cfg, want: 2000},
		{
			name:     "free delivery disabled",
			method:   entities.MethodDelivery,
			subtotal: 50000,
			cfg:      entities.CommercialConfig{FreeDeliveryActive: false, FreeDeliveryThreshold: 20000},
			want:     2000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.DeliveryCost(tc.method, city, tc.subtotal, tc.cfg))
		})
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(32000), pricing.Total(30000, 2000))
}
