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

type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (int64, error)
	Get(ctx context.Context, id int64) (*dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateCategoryRequest) error
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (int64, error) {
	c := &model.Category{Name: req.Name}
	if err := s.repo.Create(ctx, c); err != nil {
		return 0, repository.Translate(err)
	}
	return c.ID, nil
}

func (s *categoryService) Get(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Category is not found!")
		}
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}, nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, req dto.UpdateCategoryRequest) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Category is not found!")
		}
		return err
	}
	c.Name = req.Name
	if err := s.repo.Update(ctx, c); err != nil {
		return repository.Translate(err)
	}
	return nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		if repository.IsForeignKey(err) {
			return apierror.Constraint("Category is referenced by products!")
		}
		return err
	}
	if n == 0 {
		return apierror.NotFound("Category is not found!")
	}
	return nil
}
