package service

import (
	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/internal/pricing"
)

// deliveryTarget — разрешенный пункт назначения: адрес пользователя или ПВЗ.
type deliveryTarget struct {
	city          entities.City
	addressText   string
	pickupPointID *int64
}

// buildOrder собирает неизменяемый заказ из проверенной корзины.
// Имя товара, размер и действующая цена копируются в позиции именно в этот
// момент: дальнейшие изменения каталога исторических заказов не трогают.
// Исходные строки корзины и варианты не мутируются.
func buildOrder(userID int64, method entities.DeliveryMethod, target deliveryTarget, items []entities.CartItem, subtotal, deliveryCost int64) (entities.Order, []entities.OrderItem) {
	order := entities.Order{
		UserID:         userID,
		DeliveryMethod: method,
		PickupPointID:  target.pickupPointID,
		CityID:         target.city.ID,
		CityName:       target.city.Name,
		AddressText:    target.addressText,
		Status:         entities.StatusProcessing,
		TotalPrice:     pricing.Total(subtotal, deliveryCost),
		DeliveryCost:   deliveryCost,
	}

	orderItems := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		productID := it.Variant.ProductID
		orderItems = append(orderItems, entities.OrderItem{
			ProductID:       &productID,
			ProductName:     it.Variant.ProductName,
			SizeName:        it.Variant.SizeName,
			PriceAtPurchase: pricing.EffectivePrice(it.Variant),
			Quantity:        it.Quantity,
		})
	}

	return order, orderItems
}
