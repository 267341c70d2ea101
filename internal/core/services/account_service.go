package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	now         func() time.Time
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo, now: time.Now}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, userID int64, req dto.CreateAccountRequest) (*domain.Account, error) {
	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	now := s.now().UTC()
	account := domain.Account{
		UserID:      userID,
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     req.Balance,
		Currency:    currency,
		CreditLimit: req.CreditLimit,
		IsActive:    true,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	saved, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.Int64("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.Int64("account_id", saved.AccountID),
		slog.String("account_type", string(saved.AccountType)))
	return saved, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	if err := s.authorizeOwner(ctx, "account", accountID, account.UserID, userID); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int64("user_id", userID))
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, userID, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if req.Balance != nil {
		return nil, apperrors.NewValidationFailedError("balance cannot be updated directly; record a transaction instead")
	}
	if req.IsEmpty() {
		return nil, apperrors.NewValidationFailedError("no fields to update")
	}

	account, err := s.GetAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
	}
	if req.Currency != nil {
		account.Currency = strings.ToUpper(*req.Currency)
	}
	if req.CreditLimit != nil {
		account.CreditLimit = *req.CreditLimit
	}
	account.UpdatedAt = s.now().UTC()

	updated, err := s.accountRepo.UpdateAccount(ctx, *account)
	if err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.Int64("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.Int64("account_id", accountID))
	return updated, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, userID, accountID int64) error {
	if _, err := s.GetAccountByID(ctx, userID, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, s.now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.Int64("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deactivated", slog.Int64("account_id", accountID))
	return nil
}

// requireActiveAccount is shared by the services that book money against accounts.
func requireActiveAccount(account domain.Account) error {
	if !account.IsActive {
		return apperrors.NewValidationFailedError("account is inactive")
	}
	return nil
}

