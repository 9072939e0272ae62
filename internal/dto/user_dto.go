package dto

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"     validate:"required,oneof=d r w a"`
}

type UpdateUserRequest struct {
	Password string `json:"password" validate:"omitempty,min=4"`
	Role     string `json:"role"     validate:"omitempty,oneof=d r w a"`
}
