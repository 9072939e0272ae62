package model

// Product is a sellable item. Stock is not stored here; the inventory log
// is the authoritative record of stock movement.
type Product struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	SKU        string `gorm:"column:sku;uniqueIndex;not null"`
	Name       string `gorm:"index;not null"`
	PriceCents int64  `gorm:"not null;default:0"`
	CategoryID *int64 `gorm:"index"`

	Category *Category `gorm:"foreignKey:CategoryID"`
}
