package entities

// CommercialConfig — условия доставки, редактируются в админке.
type CommercialConfig struct {
	FreeDeliveryActive    bool
	FreeDeliveryThreshold int64
}
