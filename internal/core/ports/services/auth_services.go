package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/dto"
	"google.golang.org/api/idtoken"
)

// AuthSvc issues access tokens.
type AuthSvc interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	SignInWithGoogle(ctx context.Context, req dto.GoogleSignInRequest) (*dto.AuthResponse, error)
}

// GoogleIDTokenValidator verifies Google ID tokens. idtoken.Validate satisfies it
// through GoogleIDTokenValidatorFunc.
type GoogleIDTokenValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// GoogleIDTokenValidatorFunc adapts a function to GoogleIDTokenValidator.
type GoogleIDTokenValidatorFunc func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

func (f GoogleIDTokenValidatorFunc) Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error) {
	return f(ctx, idToken, audience)
}
