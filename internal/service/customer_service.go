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

type CustomerService interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (int64, error)
	Get(ctx context.Context, id int64) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateCustomerRequest) error
	Delete(ctx context.Context, id int64) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (int64, error) {
	c := &model.Customer{Name: req.Name}
	if err := s.repo.Create(ctx, c); err != nil {
		return 0, repository.Translate(err)
	}
	return c.ID, nil
}

func (s *customerService) Get(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Customer is not found!")
		}
		return nil, err
	}
	return &dto.CustomerResponse{ID: c.ID, Name: c.Name}, nil
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.CustomerResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (s *customerService) Update(ctx context.Context, id int64, req dto.UpdateCustomerRequest) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Customer is not found!")
		}
		return err
	}
	c.Name = req.Name
	if err := s.repo.Update(ctx, c); err != nil {
		return repository.Translate(err)
	}
	return nil
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		if repository.IsForeignKey(err) {
			return apierror.Constraint("Customer is referenced by existing sales!")
		}
		return err
	}
	if n == 0 {
		return apierror.NotFound("Customer is not found!")
	}
	return nil
}
