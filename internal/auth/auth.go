package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/weighlanka/backend/internal/db"
	"github.com/weighlanka/backend/internal/models"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Default first-run admin account.
const (
	DefaultAdminUsername = "admin"
	defaultAdminPassword = "1234"
)

// Service handles authentication operations.
type Service struct {
	jwtSecret []byte
	tokenExp  time.Duration
}

// NewService creates a new authentication service. The signing secret comes
// from JWT_SECRET and the token lifetime from JWT_EXPIRY (default 24h).
func NewService() (*Service, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-key-change-in-production"
	}

	expStr := os.Getenv("JWT_EXPIRY")
	exp := 24 * time.Hour
	if expStr != "" {
		if parsed, err := time.ParseDuration(expStr); err == nil {
			exp = parsed
		}
	}

	return &Service{
		jwtSecret: []byte(secret),
		tokenExp:  exp,
	}, nil
}

// HashPassword hashes a password using bcrypt.
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword checks if a password matches a hash.
func (s *Service) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken generates a JWT token for an admin account.
func (s *Service) GenerateToken(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.ID.Hex(),
		"username": admin.Username,
		"exp":      time.Now().Add(s.tokenExp).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a JWT token and returns the claims.
func (s *Service) ValidateToken(tokenString string) (*models.Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	adminID, ok := claims["admin_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &models.Claims{
		AdminID:  adminID,
		Username: username,
		Exp:      int64(exp),
	}, nil
}

// Authenticate checks the given credentials against the stored admin
// account and returns a signed token on success.
func (s *Service) Authenticate(ctx context.Context, admins db.AdminCollection, username, password string) (string, error) {
	admin, err := admins.FindAdminByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !s.CheckPassword(password, admin.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.GenerateToken(admin)
}

// ResetPassword re-hashes and stores a new password for the admin account,
// creating the account when it does not exist yet.
func (s *Service) ResetPassword(ctx context.Context, admins db.AdminCollection, newPassword string) error {
	hash, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return admins.UpsertAdmin(ctx, models.Admin{
		Username:     DefaultAdminUsername,
		PasswordHash: hash,
	})
}

// EnsureDefaultAdmin seeds the default admin account on first run. Existing
// accounts are left untouched.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, admins db.AdminCollection) error {
	_, err := admins.FindAdminByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return err
	}
	return s.ResetPassword(ctx, admins, defaultAdminPassword)
}
