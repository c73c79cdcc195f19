package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weighlanka/backend/internal/auth"
	"github.com/weighlanka/backend/internal/models"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *auth.Service, *fakeAdminCollection) {
	t.Helper()
	authService, err := auth.NewService()
	require.NoError(t, err)
	admins := &fakeAdminCollection{}
	require.NoError(t, authService.EnsureDefaultAdmin(context.Background(), admins))
	return NewAdminHandler(authService, admins, logrus.New()), authService, admins
}

func TestAdminHandler_Login(t *testing.T) {
	h, authService, _ := newAdminHandler(t)

	t.Run("valid credentials", func(t *testing.T) {
		body, _ := json.Marshal(models.LoginRequest{Username: "admin", Password: "1234"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.Login(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Login successful", resp.Message)

		claims, err := authService.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		body, _ := json.Marshal(models.LoginRequest{Username: "admin", Password: "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()

		h.Login(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader([]byte("{bad")))
		w := httptest.NewRecorder()

		h.Login(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_ResetPassword(t *testing.T) {
	h, authService, admins := newAdminHandler(t)

	body, _ := json.Marshal(models.ResetPasswordRequest{Password: "new-secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/reset-password", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.ResetPassword(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	_, err := authService.Authenticate(context.Background(), admins, "admin", "new-secret")
	assert.NoError(t, err)
	_, err = authService.Authenticate(context.Background(), admins, "admin", "1234")
	assert.Error(t, err)
}

func TestAdminHandler_ResetPassword_TooShort(t *testing.T) {
	h, _, _ := newAdminHandler(t)

	body, _ := json.Marshal(models.ResetPasswordRequest{Password: "ab"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/reset-password", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.ResetPassword(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
