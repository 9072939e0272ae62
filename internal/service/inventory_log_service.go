package service

import (
	"context"
	"errors"

	"tallypos/internal/apierror"
	"tallypos/internal/dto"
	"tallypos/internal/model"
	"tallypos/internal/repository"

	"gorm.io/gorm"
)

type InventoryLogService interface {
	Create(ctx context.Context, req dto.CreateLogRequest) (int64, error)
	Get(ctx context.Context, id int64) (*dto.LogResponse, error)
	List(ctx context.Context) ([]dto.LogResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateLogRequest) error
	Delete(ctx context.Context, id int64) error
}

type inventoryLogService struct {
	repo repository.InventoryLogRepository
}

func NewInventoryLogService(repo repository.InventoryLogRepository) InventoryLogService {
	return &inventoryLogService{repo: repo}
}

func mapLog(l *model.InventoryLog) dto.LogResponse {
	resp := dto.LogResponse{
		ID:        l.ID,
		Type:      l.Type,
		ProductID: l.ProductID,
		Delta:     l.Delta,
		Note:      l.Note,
		Time:      l.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if l.Product != nil {
		resp.ProductName = &l.Product.Name
	}
	return resp
}

func (s *inventoryLogService) Create(ctx context.Context, req dto.CreateLogRequest) (int64, error) {
	logType := req.Type
	if logType == "" {
		logType = model.LogTypeManual
	}
	if logType == model.LogTypeSale {
		// Sale entries are written only by the sale transaction.
		return 0, apierror.Validation("Sale log entries cannot be created manually!")
	}
	entry := &model.InventoryLog{
		Type:      logType,
		ProductID: *req.ProductID,
		Delta:     *req.Delta,
		Note:      req.Note,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return 0, repository.Translate(err)
	}
	return entry.ID, nil
}

func (s *inventoryLogService) Get(ctx context.Context, id int64) (*dto.LogResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Log is not found!")
		}
		return nil, err
	}
	resp := mapLog(entry)
	return &resp, nil
}

func (s *inventoryLogService) List(ctx context.Context) ([]dto.LogResponse, error) {
	logs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LogResponse, 0, len(logs))
	for i := range logs {
		out = append(out, mapLog(&logs[i]))
	}
	return out, nil
}

func (s *inventoryLogService) Update(ctx context.Context, id int64, req dto.UpdateLogRequest) error {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Log is not found!")
		}
		return err
	}
	if req.Delta == nil && req.Note == nil {
		return apierror.Validation("No valid fields to update!")
	}
	if entry.Type == model.LogTypeSale {
		return apierror.Validation("Sale log entries cannot be edited!")
	}
	if req.Delta != nil {
		entry.Delta = *req.Delta
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}
	if err := s.repo.Update(ctx, entry); err != nil {
		return repository.Translate(err)
	}
	return nil
}

func (s *inventoryLogService) Delete(ctx context.Context, id int64) error {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Log is not found!")
		}
		return err
	}
	if entry.Type == model.LogTypeSale {
		return apierror.Validation("Sale log entries are removed with their sale!")
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		if repository.IsForeignKey(err) {
			return apierror.Constraint("Log is referenced by a sale detail!")
		}
		return err
	}
	if n == 0 {
		return apierror.NotFound("Log is not found!")
	}
	return nil
}
