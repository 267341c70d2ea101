package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// UserSvcFacade manages user records.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	// Authenticate checks a username-or-email and password pair.
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// FindOrCreateGoogleUser returns the user with email, creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, email, displayName string) (*domain.User, error)
}
