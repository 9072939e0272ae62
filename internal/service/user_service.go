package service

import (
	"context"
	"errors"

	"tallypos/internal/apierror"
	"tallypos/internal/dto"
	"tallypos/internal/model"
	"tallypos/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (int64, error)
	Get(ctx context.Context, id int64) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateUserRequest) error
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func mapUser(u *model.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Username: u.Username, Role: string(u.Role)}
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return 0, err
	}
	user := &model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         model.Role(req.Role),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return 0, repository.Translate(err)
	}
	return user.ID, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("User is not found!")
		}
		return nil, err
	}
	resp := mapUser(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, mapUser(&users[i]))
	}
	return out, nil
}

func (s *userService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("User is not found!")
		}
		return err
	}
	if req.Password == "" && req.Role == "" {
		return apierror.Validation("No valid fields to update!")
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	if req.Role != "" {
		user.Role = model.Role(req.Role)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return repository.Translate(err)
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		if repository.IsForeignKey(err) {
			return apierror.Constraint("User is referenced by existing sales!")
		}
		return err
	}
	if n == 0 {
		return apierror.NotFound("User is not found!")
	}
	return nil
}
