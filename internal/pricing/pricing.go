// Package pricing считает стоимость позиций, корзины и доставки.
// Никакого I/O: все функции чистые, деньги — int64 в минорных единицах.
package pricing

import "github.com/xwear/shop-backend/internal/entities"

// minorUnits — минорных единиц в одной единице валюты.
const minorUnits = 100

// EffectivePrice возвращает цену варианта с учетом скидки.
// Каталог ведется в целых рублях, поэтому результат округляется до целой
// единицы валюты, половина — вверх (round half-up).
func EffectivePrice(v entities.Variant) int64 {
	if v.DiscountPercent <= 0 {
		return v.Price
	}
	d := int64(v.DiscountPercent)
	if d >= 100 {
		return 0
	}
	units := (v.Price*(100-d) + minorUnits*100/2) / (minorUnits * 100)
	return units * minorUnits
}

// ItemTotal — стоимость одной позиции корзины.
func ItemTotal(it entities.CartItem) int64 {
	return EffectivePrice(it.Variant) * int64(it.Quantity)
}

// Subtotal — сумма товаров без доставки.
func Subtotal(items []entities.CartItem) (int64, error) {
	if len(items) == 0 {
		return 0, entities.ErrEmptyCart
	}
	var sum int64
	for _, it := range items {
		sum += ItemTotal(it)
	}
	return sum, nil
}

// DeliveryCost: самовывоз всегда бесплатный, доставка — по тарифу города,
// обнуляется при активной бесплатной доставке и subtotal >= порога.
func DeliveryCost(method entities.DeliveryMethod, city entities.City, subtotal int64, cfg entities.CommercialConfig) int64 {
	if method == entities.MethodPickup {
		return 0
	}
	if cfg.FreeDeliveryActive && subtotal >= cfg.FreeDeliveryThreshold {
		return 0
	}
	return city.DeliveryCost
}

func Total(subtotal, deliveryCost int64) int64 {
	return subtotal + deliveryCost
}
