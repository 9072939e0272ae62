package model

import "time"

// Log types. Sale entries are written automatically inside the sale
// transaction; anything else is a manual adjustment.
const (
	LogTypeSale   = "s"
	LogTypeManual = "m"
)

// InventoryLog is one entry of the append-only stock ledger. Delta is
// signed: negative means stock leaving (a sale), positive means stock
// arriving (restock, correction).
type InventoryLog struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Type      string `gorm:"type:char(1);not null;default:'m'"`
	ProductID int64  `gorm:"not null;index"`
	Delta     int64  `gorm:"not null"`
	Note      string
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
