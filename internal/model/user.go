package model

import "time"

// User stores system accounts with role-based access.
// Role: "d" disabled | "r" viewer | "w" writer | "a" admin.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"type:char(1);not null;default:'r'"`
	CreatedAt    time.Time
}
