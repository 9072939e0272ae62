package model

import "time"

// Sale is the header row of a sale. TotalCents is derived from the detail
// subtotals at creation time and kept for display.
type Sale struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID int64 `gorm:"not null;index"`
	UserID     int64 `gorm:"not null;index"`
	TotalCents int64 `gorm:"not null;default:0"`
	CreatedAt  time.Time

	Customer *Customer    `gorm:"foreignKey:CustomerID"`
	User     *User        `gorm:"foreignKey:UserID"`
	Details  []SaleDetail `gorm:"foreignKey:SaleID"`
}

// SaleDetail is one line item of a sale. LogID is nil when the line has no
// inventory effect (services, fees); otherwise it points at the inventory
// log entry that recorded the stock movement for this line.
type SaleDetail struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	SaleID        int64  `gorm:"not null;index"`
	LogID         *int64 `gorm:"index"`
	SubtotalCents int64  `gorm:"not null"`
	Note          string

	// SET NULL lets the cascade delete remove logs ahead of their details
	// without tripping the reference.
	Log *InventoryLog `gorm:"foreignKey:LogID;constraint:OnDelete:SET NULL"`
}

// TableName keeps the historical table name from the original schema.
func (SaleDetail) TableName() string { return "sales_details" }
