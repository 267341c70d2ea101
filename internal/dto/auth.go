package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// RegisterRequest creates a local account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest accepts either the username or the email as Username.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleSignInRequest carries an ID token obtained by the frontend.
type GoogleSignInRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// AuthResponse represents the response for a successful login or registration.
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      domain.User `json:"user"`
}
