package dto

type CreateCustomerRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type UpdateCustomerRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type CustomerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
