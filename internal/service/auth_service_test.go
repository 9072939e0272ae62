package service

import (
	"context"
	"testing"
	"time"

	"tallypos/internal/apierror"
	"tallypos/internal/dto"
	"tallypos/internal/model"
	"tallypos/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users map[string]*model.User
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) { return nil, nil }

func (r *stubUserRepo) Update(_ context.Context, _ *model.User) error { return nil }

func (r *stubUserRepo) Delete(_ context.Context, _ int64) (int64, error) { return 0, nil }

func (r *stubUserRepo) CountAdmins(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func newAuthFixture(t *testing.T) (AuthService, *session.MemoryStore) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &stubUserRepo{users: map[string]*model.User{
		"clerk": {ID: 2, Username: "clerk", PasswordHash: string(hash), Role: model.RoleWriter},
	}}
	store := session.NewMemoryStore()
	t.Cleanup(store.Close)
	return NewAuthService(repo, store, time.Hour), store
}

func TestLoginIssuesTokenAndSession(t *testing.T) {
	svc, store := newAuthFixture(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, dto.LoginRequest{Username: "clerk", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "Logged in.", result.Response.Message)
	assert.Equal(t, "clerk", result.Response.User.Username)
	assert.Equal(t, "w", result.Response.User.Role)
	assert.NotEmpty(t, result.Response.Token)
	assert.NotEmpty(t, result.SessionID)
	assert.NotEqual(t, result.Response.Token, result.SessionID)

	// Both credentials resolve to the same identity.
	for _, tok := range []string{result.Response.Token, result.SessionID} {
		id, err := store.Get(ctx, tok)
		require.NoError(t, err)
		assert.Equal(t, int64(2), id.UserID)
		assert.Equal(t, model.RoleWriter, id.Role)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	for _, req := range []dto.LoginRequest{
		{Username: "clerk", Password: "wrong"},
		{Username: "ghost", Password: "secret"},
	} {
		_, err := svc.Login(ctx, req)
		var apiErr *apierror.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.Status)
		// Same message regardless of which check failed.
		assert.Equal(t, "Invalid credentials!", apiErr.Message)
	}
}

func TestLogoutRevokesSessionNotToken(t *testing.T) {
	svc, store := newAuthFixture(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, dto.LoginRequest{Username: "clerk", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.SessionID))

	_, err = store.Get(ctx, result.SessionID)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// The bearer token survives logout until its TTL runs out.
	_, err = store.Get(ctx, result.Response.Token)
	assert.NoError(t, err)
}
