package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils"
)

const maxUsernameLength = 50

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user by ID", slog.Int64("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, login)
	if errors.Is(err, apperrors.ErrNotFound) && strings.Contains(login, "@") {
		user, err = s.userRepo.FindUserByEmail(ctx, login)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.Int64("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}
	return user, nil
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if len(req.Password) < utils.MinPasswordLength {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("password must be at least %d characters", utils.MinPasswordLength))
	}

	if err := s.ensureFree(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	saved, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("username or email already registered")
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.Int64("user_id", saved.UserID))
	return saved, nil
}

func (s *userService) FindOrCreateGoogleUser(ctx context.Context, email, displayName string) (*domain.User, error) {
	email = strings.ToLower(email)
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up Google user")
		return nil, err
	}

	username := usernameFromEmail(email, displayName)
	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		username, err = utils.WithRandomSuffix(username, maxUsernameLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate username suffix: %w", err)
		}
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check username availability")
		return nil, err
	}

	now := time.Now().UTC()
	saved, err := s.userRepo.SaveUser(ctx, domain.User{
		Username:     username,
		Email:        email,
		AuthProvider: domain.ProviderGoogle,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create Google user", slog.String("username", username))
		return nil, err
	}

	s.LogInfo(ctx, "User created through Google sign-in", slog.Int64("user_id", saved.UserID))
	return saved, nil
}

func (s *userService) ensureFree(ctx context.Context, username, email string) error {
	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return apperrors.NewConflictError("username already taken")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check username availability")
		return err
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return apperrors.NewConflictError("email already registered")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email availability")
		return err
	}
	return nil
}

// usernameFromEmail prefers the local part of the address.
func usernameFromEmail(email, displayName string) string {
	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}
	if len(name) < 3 {
		name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(displayName)), " ", "_")
	}
	for len(name) < 3 {
		name += "_"
	}
	return truncate(name, maxUsernameLength)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
