package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/weighlanka/backend/internal/db"
	"github.com/weighlanka/backend/internal/models"
)

type fakeAdminCollection struct {
	admins map[string]models.Admin
}

func newFakeAdminCollection() *fakeAdminCollection {
	return &fakeAdminCollection{admins: map[string]models.Admin{}}
}

func (f *fakeAdminCollection) FindAdminByUsername(_ context.Context, username string) (*models.Admin, error) {
	a, ok := f.admins[username]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &a, nil
}

func (f *fakeAdminCollection) UpsertAdmin(_ context.Context, admin models.Admin) error {
	existing, ok := f.admins[admin.Username]
	if ok {
		existing.PasswordHash = admin.PasswordHash
		f.admins[admin.Username] = existing
		return nil
	}
	admin.ID = primitive.NewObjectID()
	f.admins[admin.Username] = admin
	return nil
}

func TestNewService(t *testing.T) {
	service, err := NewService()
	assert.NoError(t, err)
	assert.NotNil(t, service)
	assert.NotEmpty(t, service.jwtSecret)
	assert.Equal(t, 24*time.Hour, service.tokenExp)
}

func TestService_HashAndCheckPassword(t *testing.T) {
	service, _ := NewService()

	password := "testpassword123"
	hash, err := service.HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, service.CheckPassword(password, hash))
	assert.False(t, service.CheckPassword("wrongpassword", hash))
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	service, _ := NewService()

	admin := &models.Admin{
		ID:       primitive.NewObjectID(),
		Username: "admin",
	}

	token, err := service.GenerateToken(admin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, admin.ID.Hex(), claims.AdminID)
	assert.Equal(t, admin.Username, claims.Username)

	// "Bearer " prefix is tolerated.
	claims, err = service.ValidateToken("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, admin.Username, claims.Username)

	_, err = service.ValidateToken("invalid-token")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_EnsureDefaultAdminAndAuthenticate(t *testing.T) {
	service, _ := NewService()
	admins := newFakeAdminCollection()

	err := service.EnsureDefaultAdmin(context.Background(), admins)
	assert.NoError(t, err)

	token, err := service.Authenticate(context.Background(), admins, "admin", "1234")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = service.Authenticate(context.Background(), admins, "admin", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)

	_, err = service.Authenticate(context.Background(), admins, "nobody", "1234")
	assert.Equal(t, ErrInvalidCredentials, err)

	// Seeding again does not overwrite the account.
	existing := admins.admins["admin"]
	err = service.EnsureDefaultAdmin(context.Background(), admins)
	assert.NoError(t, err)
	assert.Equal(t, existing.PasswordHash, admins.admins["admin"].PasswordHash)
}

func TestService_ResetPassword(t *testing.T) {
	service, _ := NewService()
	admins := newFakeAdminCollection()

	err := service.ResetPassword(context.Background(), admins, "new-secret")
	assert.NoError(t, err)

	token, err := service.Authenticate(context.Background(), admins, "admin", "new-secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}
