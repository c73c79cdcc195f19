package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is the single back-office login account.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password_hash" json:"-"`
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ResetPasswordRequest carries a new password for the admin account.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// Claims represents the validated JWT claims attached to a request.
type Claims struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	Exp      int64  `json:"exp"`
}
