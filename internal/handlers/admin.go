package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/weighlanka/backend/internal/auth"
	"github.com/weighlanka/backend/internal/db"
	"github.com/weighlanka/backend/internal/models"
)

// AdminHandler handles admin login and password reset.
type AdminHandler struct {
	authService *auth.Service
	admins      db.AdminCollection
	log         *logrus.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(authService *auth.Service, admins db.AdminCollection, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		authService: authService,
		admins:      admins,
		log:         log,
	}
}

// Login handles admin login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var loginReq models.LoginRequest
	if err := json.Unmarshal(body, &loginReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if loginReq.Username == "" || loginReq.Password == "" {
		respondError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, err := h.authService.Authenticate(r.Context(), h.admins, loginReq.Username, loginReq.Password)
	if err != nil {
		h.log.WithField("username", loginReq.Username).Warn("failed login attempt")
		respondError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	respondJSON(w, http.StatusOK, models.LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

// ResetPassword replaces the admin account password.
func (h *AdminHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var req models.ResetPasswordRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Password) < 4 {
		respondError(w, http.StatusBadRequest, "Password must be at least 4 characters long")
		return
	}

	if err := h.authService.ResetPassword(r.Context(), h.admins, req.Password); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update password")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}
