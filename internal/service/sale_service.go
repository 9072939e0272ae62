package service

import (
	"context"
	"errors"
	"fmt"

	"tallypos/internal/apierror"
	"tallypos/internal/dto"
	"tallypos/internal/model"
	"tallypos/internal/repository"

	"gorm.io/gorm"
)

type SaleService interface {
	Create(ctx context.Context, userID int64, req dto.CreateSaleRequest) (int64, error)
	Get(ctx context.Context, id int64) (*dto.SaleResponse, error)
	List(ctx context.Context) ([]dto.SaleResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateSaleRequest) error
	Delete(ctx context.Context, id int64) error
	Find(ctx context.Context, id int64) (*model.Sale, error)
}

type saleService struct {
	repo repository.SaleRepository
	logs repository.InventoryLogRepository
}

func NewSaleService(repo repository.SaleRepository, logs repository.InventoryLogRepository) SaleService {
	return &saleService{repo: repo, logs: logs}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Create ───────────────────────────────────────────────────────────────────
// One atomic unit of work:
//  1. insert the sale header
//  2. per inventory-affecting line, insert a ledger entry with delta=-quantity
//  3. insert the detail row pointing at the ledger entry (or NULL)
//  4. record the derived total on the header
//
// Foreign-key violations abort the whole transaction and are classified by
// offending column (customer vs product) into 400s; everything else rolls
// back and surfaces as a 500.

func (s *saleService) Create(ctx context.Context, userID int64, req dto.CreateSaleRequest) (int64, error) {
	if req.CustomerID == nil {
		return 0, apierror.Validation("A customer is required!")
	}
	if len(req.Details) == 0 {
		return 0, apierror.Validation("A non-empty list of details is required!")
	}
	for _, line := range req.Details {
		if line.SubtotalCents == nil {
			return 0, apierror.Validation("Each detail requires a subtotal!")
		}
		if line.ProductID != nil && (line.Quantity == nil || *line.Quantity <= 0) {
			return 0, apierror.Validation("Each detail that contains inventory change must have a quantity!")
		}
	}

	var sale model.Sale
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		sale = model.Sale{CustomerID: *req.CustomerID, UserID: userID}
		if err := s.repo.CreateTx(ctx, tx, &sale); err != nil {
			return err
		}

		var total int64
		for _, line := range req.Details {
			var logID *int64
			if line.ProductID != nil {
				entry := model.InventoryLog{
					Type:      model.LogTypeSale,
					ProductID: *line.ProductID,
					Delta:     -*line.Quantity,
					Note:      fmt.Sprintf("Automatic logging from sale #%d: %s", sale.ID, line.Note),
				}
				if err := s.logs.CreateTx(ctx, tx, &entry); err != nil {
					return err
				}
				logID = &entry.ID
			}

			detail := model.SaleDetail{
				SaleID:        sale.ID,
				LogID:         logID,
				SubtotalCents: *line.SubtotalCents,
				Note:          line.Note,
			}
			if err := s.repo.CreateDetailTx(ctx, tx, &detail); err != nil {
				return err
			}
			total += *line.SubtotalCents
		}

		return s.repo.SetTotalTx(ctx, tx, sale.ID, total)
	})
	if txErr != nil {
		return 0, repository.Translate(txErr)
	}
	return sale.ID, nil
}

// ── Delete ───────────────────────────────────────────────────────────────────
// Removes, in one atomic unit, the ledger entries reachable via the sale's
// details, then the details, then the header. The rowcount on the header
// delete is the existence check.

func (s *saleService) Delete(ctx context.Context, id int64) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		logIDs, err := s.repo.DetailLogIDsTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.repo.DeleteLogsTx(ctx, tx, logIDs); err != nil {
			return err
		}
		if err := s.repo.DeleteDetailsTx(ctx, tx, id); err != nil {
			return err
		}
		n, err := s.repo.DeleteTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return apierror.NotFound("Sale is not found!")
		}
		return nil
	})
}

// ── Update ───────────────────────────────────────────────────────────────────

func (s *saleService) Update(ctx context.Context, id int64, req dto.UpdateSaleRequest) error {
	if req.CustomerID == nil {
		return apierror.Validation("No valid fields to update!")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Sale is not found!")
		}
		return err
	}
	if err := s.repo.UpdateCustomer(ctx, id, *req.CustomerID); err != nil {
		return repository.Translate(err)
	}
	return nil
}

// ── Reads ────────────────────────────────────────────────────────────────────

func (s *saleService) Get(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Sale is not found!")
		}
		return nil, err
	}
	resp := saleToResponse(sale)
	return &resp, nil
}

func (s *saleService) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, saleToResponse(&sales[i]))
	}
	return out, nil
}

// Find returns the raw model with associations loaded, for receipt rendering.
func (s *saleService) Find(ctx context.Context, id int64) (*model.Sale, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Sale is not found!")
		}
		return nil, err
	}
	return sale, nil
}

func saleToResponse(sale *model.Sale) dto.SaleResponse {
	details := make([]dto.SaleDetailResponse, 0, len(sale.Details))
	for _, d := range sale.Details {
		line := dto.SaleDetailResponse{
			SubtotalCents: d.SubtotalCents,
			LogID:         d.LogID,
			Note:          d.Note,
		}
		if d.Log != nil {
			qty := -d.Log.Delta
			line.ProductID = &d.Log.ProductID
			line.Quantity = &qty
			if d.Log.Product != nil {
				line.ProductName = &d.Log.Product.Name
				line.UnitPriceCents = &d.Log.Product.PriceCents
				line.SKU = &d.Log.Product.SKU
			}
		}
		details = append(details, line)
	}

	resp := dto.SaleResponse{
		ID:         sale.ID,
		Time:       sale.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		TotalCents: sale.TotalCents,
		CustomerID: sale.CustomerID,
		UserID:     sale.UserID,
		Details:    details,
	}
	if sale.Customer != nil {
		resp.CustomerName = &sale.Customer.Name
	}
	return resp
}
