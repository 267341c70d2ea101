package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"google.golang.org/api/idtoken"
)

// authService issues JWT access tokens for local and Google users.
type authService struct {
	BaseService
	cfg         *config.Config
	userService portssvc.UserSvcFacade
	google      portssvc.GoogleIDTokenValidator
}

// AuthOption is a functional option for the auth service
type AuthOption func(*authService)

// WithGoogleIDTokenValidator replaces idtoken.Validate, for tests.
func WithGoogleIDTokenValidator(v portssvc.GoogleIDTokenValidator) AuthOption {
	return func(s *authService) {
		s.google = v
	}
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userService portssvc.UserSvcFacade, options ...AuthOption) portssvc.AuthSvc {
	svc := &authService{
		cfg:         cfg,
		userService: userService,
		google:      portssvc.GoogleIDTokenValidatorFunc(idtoken.Validate),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	user, err := s.userService.RegisterUser(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User logged in", slog.Int64("user_id", user.UserID))
	return s.issue(ctx, user)
}

func (s *authService) SignInWithGoogle(ctx context.Context, req dto.GoogleSignInRequest) (*dto.AuthResponse, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, apperrors.NewAppError(http.StatusServiceUnavailable, "Google sign-in is not configured", nil)
	}

	payload, err := s.google.Validate(ctx, req.IDToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogDebug(ctx, "Google ID token rejected", slog.String("reason", err.Error()))
		return nil, apperrors.NewUnauthorizedError("invalid Google ID token")
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return nil, apperrors.NewUnauthorizedError("Google account has no verified email")
	}
	name, _ := payload.Claims["name"].(string)

	user, err := s.userService.FindOrCreateGoogleUser(ctx, email, name)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User signed in with Google", slog.Int64("user_id", user.UserID))
	return s.issue(ctx, user)
}

func (s *authService) issue(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.Int64("user_id", user.UserID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &dto.AuthResponse{Token: token, ExpiresAt: expiresAt, User: *user}, nil
}
