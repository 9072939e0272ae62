package service

import (
	"context"
	"time"

	"tallypos/internal/apierror"
	"tallypos/internal/dto"
	"tallypos/internal/repository"
	"tallypos/internal/session"

	"golang.org/x/crypto/bcrypt"
)

// LoginResult pairs the JSON body with the session id the handler turns
// into a cookie. Both the token and the session id resolve through the
// same store, so either authenticates subsequent requests.
type LoginResult struct {
	Response  dto.LoginResponse
	SessionID string
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	repo  repository.UserRepository
	store session.Store
	ttl   time.Duration
}

func NewAuthService(repo repository.UserRepository, store session.Store, ttl time.Duration) AuthService {
	return &authService{repo: repo, store: store, ttl: ttl}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*LoginResult, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		// Same message for unknown user and bad password.
		return nil, apierror.Unauthenticated("Invalid credentials!")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthenticated("Invalid credentials!")
	}

	identity := session.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	token, err := session.NewToken()
	if err != nil {
		return nil, err
	}
	sessionID, err := session.NewToken()
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, token, identity, s.ttl); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, sessionID, identity, s.ttl); err != nil {
		return nil, err
	}

	return &LoginResult{
		Response: dto.LoginResponse{
			Message: "Logged in.",
			User: dto.UserResponse{
				ID:       user.ID,
				Username: user.Username,
				Role:     string(user.Role),
			},
			Token: token,
		},
		SessionID: sessionID,
	}, nil
}

// Logout revokes only the cookie session. The bearer token issued at login
// stays valid until its TTL runs out — the historical behavior this API
// promises; see DESIGN.md.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.store.Revoke(ctx, sessionID)
}
