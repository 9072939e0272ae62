package infra

import (
	"context"
	"testing"

	"tallypos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUserRepo struct {
	admins  int64
	created []*model.User
}

func (r *seedUserRepo) Create(_ context.Context, u *model.User) error {
	r.created = append(r.created, u)
	return nil
}

func (r *seedUserRepo) FindByUsername(_ context.Context, _ string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *seedUserRepo) FindByID(_ context.Context, _ int64) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *seedUserRepo) List(_ context.Context) ([]model.User, error) { return nil, nil }

func (r *seedUserRepo) Update(_ context.Context, _ *model.User) error { return nil }

func (r *seedUserRepo) Delete(_ context.Context, _ int64) (int64, error) { return 0, nil }

func (r *seedUserRepo) CountAdmins(_ context.Context) (int64, error) { return r.admins, nil }

func TestEnsureAdminSeedsFreshInstall(t *testing.T) {
	repo := &seedUserRepo{admins: 0}

	require.NoError(t, EnsureAdmin(context.Background(), repo))

	require.Len(t, repo.created, 1)
	u := repo.created[0]
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, model.RoleAdmin, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("admin")))
}

func TestEnsureAdminNoOpWhenAdminExists(t *testing.T) {
	repo := &seedUserRepo{admins: 1}

	require.NoError(t, EnsureAdmin(context.Background(), repo))
	assert.Empty(t, repo.created)
}
