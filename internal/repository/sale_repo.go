package repository

import (
	"context"

	"tallypos/internal/model"

	"gorm.io/gorm"
)

// SaleRepository exposes the single-row operations the sale service composes
// into its create/delete transactions. The Tx methods take a caller-owned
// transaction; tx is nil only in unit tests backed by in-memory stubs.
type SaleRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, s *model.Sale) error
	CreateDetailTx(ctx context.Context, tx *gorm.DB, d *model.SaleDetail) error
	SetTotalTx(ctx context.Context, tx *gorm.DB, saleID, totalCents int64) error
	FindByID(ctx context.Context, id int64) (*model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	UpdateCustomer(ctx context.Context, id, customerID int64) error
	DetailLogIDsTx(ctx context.Context, tx *gorm.DB, saleID int64) ([]int64, error)
	DeleteLogsTx(ctx context.Context, tx *gorm.DB, logIDs []int64) error
	DeleteDetailsTx(ctx context.Context, tx *gorm.DB, saleID int64) error
	DeleteTx(ctx context.Context, tx *gorm.DB, saleID int64) (int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) CreateTx(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	return tx.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) CreateDetailTx(ctx context.Context, tx *gorm.DB, d *model.SaleDetail) error {
	return tx.WithContext(ctx).Create(d).Error
}

func (r *saleRepo) SetTotalTx(ctx context.Context, tx *gorm.DB, saleID, totalCents int64) error {
	return tx.WithContext(ctx).Model(&model.Sale{}).
		Where("id = ?", saleID).
		Update("total_cents", totalCents).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id int64) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details", func(db *gorm.DB) *gorm.DB { return db.Order("sales_details.id asc") }).
		Preload("Details.Log.Product").
		First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepo) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details", func(db *gorm.DB) *gorm.DB { return db.Order("sales_details.id asc") }).
		Preload("Details.Log.Product").
		Order("created_at desc").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) UpdateCustomer(ctx context.Context, id, customerID int64) error {
	return r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("id = ?", id).
		Update("customer_id", customerID).Error
}

func (r *saleRepo) DetailLogIDsTx(ctx context.Context, tx *gorm.DB, saleID int64) ([]int64, error) {
	var ids []int64
	err := tx.WithContext(ctx).Model(&model.SaleDetail{}).
		Where("sale_id = ? AND log_id IS NOT NULL", saleID).
		Pluck("log_id", &ids).Error
	return ids, err
}

func (r *saleRepo) DeleteLogsTx(ctx context.Context, tx *gorm.DB, logIDs []int64) error {
	if len(logIDs) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Delete(&model.InventoryLog{}, logIDs).Error
}

func (r *saleRepo) DeleteDetailsTx(ctx context.Context, tx *gorm.DB, saleID int64) error {
	return tx.WithContext(ctx).Where("sale_id = ?", saleID).Delete(&model.SaleDetail{}).Error
}

func (r *saleRepo) DeleteTx(ctx context.Context, tx *gorm.DB, saleID int64) (int64, error) {
	res := tx.WithContext(ctx).Delete(&model.Sale{}, saleID)
	return res.RowsAffected, res.Error
}
