package model

// Category classifies products.
type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"uniqueIndex;not null"`
}

// TableName pins the plural GORM would otherwise derive ("categories" is
// irregular in some inflection tables).
func (Category) TableName() string { return "categories" }
