package dto

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
