package dto

// CreateLogRequest records a manual stock adjustment. Type defaults to "m";
// "s" entries are written only by the sale transaction.
type CreateLogRequest struct {
	Type      string `json:"type"       validate:"omitempty,len=1"`
	ProductID *int64 `json:"product_id" validate:"required"`
	Delta     *int64 `json:"delta"      validate:"required"`
	Note      string `json:"note"`
}

type UpdateLogRequest struct {
	Delta *int64  `json:"delta"`
	Note  *string `json:"note"`
}

type LogResponse struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	ProductID   int64   `json:"product_id"`
	Delta       int64   `json:"delta"`
	Note        string  `json:"note"`
	Time        string  `json:"time"`
	ProductName *string `json:"product_name,omitempty"`
}
