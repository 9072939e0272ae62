package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SaleLineRequest is one line of a sale. A line that references a product
// affects inventory and must carry a positive quantity; a line without a
// product (service, fee) only needs its subtotal.
type SaleLineRequest struct {
	ProductID     *int64 `json:"product_id"`
	Quantity      *int64 `json:"quantity"`
	SubtotalCents *int64 `json:"subtotal_cents"`
	Note          string `json:"note"`
}

type CreateSaleRequest struct {
	CustomerID *int64            `json:"customer_id" validate:"required"`
	Details    []SaleLineRequest `json:"details"     validate:"required,min=1"`
}

// UpdateSaleRequest: customer reassignment is the only mutable field.
type UpdateSaleRequest struct {
	CustomerID *int64 `json:"customer_id"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleDetailResponse struct {
	SubtotalCents  int64   `json:"subtotal_cents"`
	LogID          *int64  `json:"log_id"`
	Note           string  `json:"note"`
	ProductID      *int64  `json:"product_id"`
	Quantity       *int64  `json:"quantity"`
	ProductName    *string `json:"product_name"`
	UnitPriceCents *int64  `json:"unit_price_cents"`
	SKU            *string `json:"sku"`
}

type SaleResponse struct {
	ID           int64                `json:"id"`
	Time         string               `json:"time"`
	TotalCents   int64                `json:"total_cents"`
	CustomerID   int64                `json:"customer_id"`
	UserID       int64                `json:"user_id"`
	CustomerName *string              `json:"customer_name,omitempty"`
	Details      []SaleDetailResponse `json:"details"`
}

// MessageID is the envelope for successful creates: {"message": ..., "id": n}.
type MessageID struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
