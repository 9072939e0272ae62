package infra

import (
	"context"
	"fmt"

	"tallypos/internal/model"
	"tallypos/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate to create / update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.InventoryLog{},
		&model.Sale{},
		&model.SaleDetail{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// EnsureAdmin seeds the default admin/admin account when no admin exists.
// The fallback keeps a fresh install reachable; the credentials must be
// rotated before exposing the service.
func EnsureAdmin(ctx context.Context, users repository.UserRepository) error {
	n, err := users.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), 12)
	if err != nil {
		return err
	}
	if err := users.Create(ctx, &model.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}); err != nil {
		return err
	}
	log.Warn().Msg("seeded default admin account with password 'admin' — rotate it immediately")
	return nil
}
