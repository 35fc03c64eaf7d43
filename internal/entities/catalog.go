package entities

type Product struct {
	ID     int64
	Name   string
	Active bool
}

// Variant — покупаемая пара (товар, размер) со своей ценой и скидкой.
// Цены везде в минорных единицах (копейках).
type Variant struct {
	ID              int64
	ProductID       int64
	ProductName     string
	SizeName        string
	Price           int64
	DiscountPercent int
	Active          bool
}
