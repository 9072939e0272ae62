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

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (int64, error)
	Get(ctx context.Context, id int64) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateProductRequest) error
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func mapProduct(p *model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:         p.ID,
		SKU:        p.SKU,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		CategoryID: p.CategoryID,
	}
	if p.Category != nil {
		resp.CategoryName = &p.Category.Name
	}
	return resp
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (int64, error) {
	p := &model.Product{
		SKU:        req.SKU,
		Name:       req.Name,
		PriceCents: *req.PriceCents,
		CategoryID: req.CategoryID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return 0, repository.Translate(err)
	}
	return p.ID, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Product is not found!")
		}
		return nil, err
	}
	resp := mapProduct(p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, mapProduct(&products[i]))
	}
	return out, nil
}

func (s *productService) Update(ctx context.Context, id int64, req dto.UpdateProductRequest) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Product is not found!")
		}
		return err
	}
	if req.SKU != nil {
		p.SKU = *req.SKU
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.PriceCents != nil {
		p.PriceCents = *req.PriceCents
	}
	if req.CategoryID != nil {
		p.CategoryID = req.CategoryID
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return repository.Translate(err)
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		if repository.IsForeignKey(err) {
			return apierror.Constraint("Product is referenced by inventory logs!")
		}
		return err
	}
	if n == 0 {
		return apierror.NotFound("Product is not found!")
	}
	return nil
}
