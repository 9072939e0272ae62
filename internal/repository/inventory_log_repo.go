package repository

import (
	"context"

	"tallypos/internal/model"

	"gorm.io/gorm"
)

// InventoryLogRepository covers both the manual ledger CRUD and the
// transactional inserts performed inside a sale.
type InventoryLogRepository interface {
	Create(ctx context.Context, l *model.InventoryLog) error
	// CreateTx inserts inside a caller-owned transaction. tx may be nil in
	// unit tests, where stubs record the insert in memory instead.
	CreateTx(ctx context.Context, tx *gorm.DB, l *model.InventoryLog) error
	FindByID(ctx context.Context, id int64) (*model.InventoryLog, error)
	List(ctx context.Context) ([]model.InventoryLog, error)
	Update(ctx context.Context, l *model.InventoryLog) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type inventoryLogRepo struct{ db *gorm.DB }

func NewInventoryLogRepository(db *gorm.DB) InventoryLogRepository {
	return &inventoryLogRepo{db: db}
}

func (r *inventoryLogRepo) Create(ctx context.Context, l *model.InventoryLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *inventoryLogRepo) CreateTx(ctx context.Context, tx *gorm.DB, l *model.InventoryLog) error {
	return tx.WithContext(ctx).Create(l).Error
}

func (r *inventoryLogRepo) FindByID(ctx context.Context, id int64) (*model.InventoryLog, error) {
	var l model.InventoryLog
	err := r.db.WithContext(ctx).Preload("Product").First(&l, id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *inventoryLogRepo) List(ctx context.Context) ([]model.InventoryLog, error) {
	var logs []model.InventoryLog
	err := r.db.WithContext(ctx).Preload("Product").Order("created_at desc").Find(&logs).Error
	return logs, err
}

func (r *inventoryLogRepo) Update(ctx context.Context, l *model.InventoryLog) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *inventoryLogRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.InventoryLog{}, id)
	return res.RowsAffected, res.Error
}
