package dto

type CreateProductRequest struct {
	SKU        string `json:"sku"         validate:"required,min=1"`
	Name       string `json:"name"        validate:"required,min=1"`
	PriceCents *int64 `json:"price_cents" validate:"required,min=0"`
	CategoryID *int64 `json:"category_id"`
}

type UpdateProductRequest struct {
	SKU        *string `json:"sku"         validate:"omitempty,min=1"`
	Name       *string `json:"name"        validate:"omitempty,min=1"`
	PriceCents *int64  `json:"price_cents" validate:"omitempty,min=0"`
	CategoryID *int64  `json:"category_id"`
}

type ProductResponse struct {
	ID           int64   `json:"id"`
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	PriceCents   int64   `json:"price_cents"`
	CategoryID   *int64  `json:"category_id"`
	CategoryName *string `json:"category_name,omitempty"`
}
