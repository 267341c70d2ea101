package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
	"github.com/SscSPs/finance_tracker/internal/utils/amortization"
	"github.com/SscSPs/finance_tracker/internal/utils/calendar"
	"github.com/shopspring/decimal"
)

type creditService struct {
	BaseService
	creditRepo portsrepo.CreditRepositoryWithTx
	hooks      ledgerHooks
}

// NewCreditService creates a new credit service
func NewCreditService(repo portsrepo.CreditRepositoryWithTx, options ...LedgerOption) portssvc.CreditSvcFacade {
	return &creditService{creditRepo: repo, hooks: newLedgerHooks(options...)}
}

var _ portssvc.CreditSvcFacade = (*creditService)(nil)

func (s *creditService) CreateCredit(ctx context.Context, userID int64, req dto.CreateCreditRequest) (*domain.Credit, error) {
	start, err := dto.ParseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := dto.ParseOptionalDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	next, err := dto.ParseOptionalDate("next_payment_date", req.NextPaymentDate)
	if err != nil {
		return nil, err
	}

	credit := domain.Credit{
		UserID:          userID,
		Name:            req.Name,
		CreditType:      req.CreditType,
		TotalAmount:     accounting.RoundMoney(req.TotalAmount),
		RemainingAmount: accounting.RoundMoney(req.TotalAmount),
		MonthlyPayment:  accounting.RoundMoney(req.MonthlyPayment),
		InterestRate:    req.InterestRate,
		StartDate:       start,
		EndDate:         end,
		IsActive:        true,
	}
	if req.RemainingAmount != nil {
		credit.RemainingAmount = accounting.RoundMoney(*req.RemainingAmount)
	}
	if next != nil {
		credit.NextPaymentDate = *next
		credit.PaymentDay = next.Day()
	} else {
		credit.NextPaymentDate = calendar.AddMonths(start, 1, start.Day())
		credit.PaymentDay = start.Day()
	}

	if err := validateCredit(credit, true); err != nil {
		return nil, err
	}

	now := s.hooks.now().UTC()
	credit.AuditFields = domain.AuditFields{CreatedAt: now, UpdatedAt: now}

	saved, err := s.creditRepo.SaveCredit(ctx, credit)
	if err != nil {
		s.LogError(ctx, err, "Failed to save credit", slog.Int64("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Credit created",
		slog.Int64("credit_id", saved.CreditID),
		slog.String("total_amount", saved.TotalAmount.String()))
	return saved, nil
}

func (s *creditService) GetCreditByID(ctx context.Context, userID, creditID int64) (*domain.Credit, error) {
	credit, err := s.creditRepo.FindCreditByID(ctx, creditID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find credit", slog.Int64("credit_id", creditID))
		}
		return nil, err
	}
	if err := s.authorizeOwner(ctx, "credit", creditID, credit.UserID, userID); err != nil {
		return nil, err
	}
	return credit, nil
}

func (s *creditService) ListCredits(ctx context.Context, userID int64) ([]dto.CreditWithStats, error) {
	credits, err := s.creditRepo.ListActiveCredits(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list credits", slog.Int64("user_id", userID))
		return nil, err
	}

	result := make([]dto.CreditWithStats, 0, len(credits))
	for _, credit := range credits {
		result = append(result, dto.NewCreditWithStats(credit))
	}
	return result, nil
}

func (s *creditService) GetCreditStats(ctx context.Context, userID, creditID int64) (*domain.CreditStats, error) {
	credit, err := s.GetCreditByID(ctx, userID, creditID)
	if err != nil {
		return nil, err
	}

	stats, err := amortization.CalculateStats(*credit)
	if err != nil {
		s.LogDebug(ctx, "Credit stats undefined", slog.Int64("credit_id", creditID), slog.String("reason", err.Error()))
		return nil, err
	}
	return &stats, nil
}

func (s *creditService) ListPayments(ctx context.Context, userID, creditID int64) ([]domain.CreditPayment, error) {
	if _, err := s.GetCreditByID(ctx, userID, creditID); err != nil {
		return nil, err
	}

	payments, err := s.creditRepo.ListCreditPayments(ctx, creditID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list credit payments", slog.Int64("credit_id", creditID))
		return nil, err
	}
	if payments == nil {
		payments = []domain.CreditPayment{}
	}
	return payments, nil
}

func (s *creditService) UpdateCredit(ctx context.Context, userID, creditID int64, req dto.UpdateCreditRequest) (*domain.Credit, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewValidationFailedError("no fields to update")
	}

	credit, err := s.GetCreditByID(ctx, userID, creditID)
	if err != nil {
		return nil, err
	}
	if !credit.IsActive {
		return nil, apperrors.NewValidationFailedError("credit is inactive")
	}

	if err := applyCreditUpdate(credit, req); err != nil {
		return nil, err
	}
	// Underpayments may have grown remaining past total; only edits of either figure re-check the cap.
	capChanged := req.TotalAmount != nil || req.RemainingAmount != nil
	if err := validateCredit(*credit, capChanged); err != nil {
		return nil, err
	}
	credit.UpdatedAt = s.hooks.now().UTC()

	updated, err := s.creditRepo.UpdateCredit(ctx, *credit)
	if err != nil {
		s.LogError(ctx, err, "Failed to update credit", slog.Int64("credit_id", creditID))
		return nil, err
	}

	s.LogInfo(ctx, "Credit updated", slog.Int64("credit_id", creditID))
	return updated, nil
}

func (s *creditService) DeactivateCredit(ctx context.Context, userID, creditID int64) error {
	if _, err := s.GetCreditByID(ctx, userID, creditID); err != nil {
		return err
	}

	if err := s.creditRepo.DeactivateCredit(ctx, creditID, s.hooks.now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate credit", slog.Int64("credit_id", creditID))
		return err
	}

	s.LogInfo(ctx, "Credit deactivated", slog.Int64("credit_id", creditID))
	return nil
}

func (s *creditService) MakePayment(ctx context.Context, userID, creditID int64, req dto.MakePaymentRequest) (*domain.Credit, *domain.CreditPayment, error) {
	amount := accounting.RoundMoney(req.Amount)
	if !amount.IsPositive() {
		return nil, nil, apperrors.NewValidationFailedError("payment amount must be greater than zero")
	}

	tx, err := s.creditRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return nil, nil, err
	}
	defer s.creditRepo.Rollback(ctx, tx) // no-op once committed

	credit, err := s.creditRepo.FindCreditByIDForUpdate(ctx, tx, creditID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to lock credit", slog.Int64("credit_id", creditID))
		}
		return nil, nil, err
	}
	if err := s.authorizeOwner(ctx, "credit", creditID, credit.UserID, userID); err != nil {
		return nil, nil, err
	}
	if !credit.IsActive {
		return nil, nil, apperrors.NewValidationFailedError("credit is inactive")
	}

	now := s.hooks.now().UTC()
	next, payment, err := amortization.ApplyPayment(*credit, amount, now)
	if err != nil {
		return nil, nil, err
	}
	payment.CreatedAt = now
	next.UpdatedAt = now

	savedPayment, err := s.creditRepo.SaveCreditPaymentInTx(ctx, tx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to save credit payment", slog.Int64("credit_id", creditID))
		return nil, nil, err
	}

	updated, err := s.creditRepo.UpdateCreditScheduleInTx(ctx, tx, next)
	if err != nil {
		s.LogError(ctx, err, "Failed to advance credit schedule", slog.Int64("credit_id", creditID))
		return nil, nil, err
	}

	if err := s.creditRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit credit payment", slog.Int64("credit_id", creditID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Credit payment recorded",
		slog.Int64("credit_id", creditID),
		slog.String("amount", amount.String()),
		slog.String("interest", savedPayment.InterestAmount.String()),
		slog.String("remaining", updated.RemainingAmount.String()))

	s.hooks.afterCommit(ctx, &s.BaseService, "credit_payment", "create", domain.LedgerEvent{
		Type:     domain.EventCreditPaymentMade,
		UserID:   userID,
		EntityID: savedPayment.PaymentID,
		Payload:  dto.PaymentResponse{Credit: dto.NewCreditWithStats(*updated), Payment: *savedPayment},
	})
	return updated, savedPayment, nil
}

func applyCreditUpdate(credit *domain.Credit, req dto.UpdateCreditRequest) error {
	if req.Name != nil {
		credit.Name = *req.Name
	}
	if req.CreditType != nil {
		credit.CreditType = *req.CreditType
	}
	if req.TotalAmount != nil {
		credit.TotalAmount = accounting.RoundMoney(*req.TotalAmount)
	}
	if req.RemainingAmount != nil {
		credit.RemainingAmount = accounting.RoundMoney(*req.RemainingAmount)
	}
	if req.MonthlyPayment != nil {
		credit.MonthlyPayment = accounting.RoundMoney(*req.MonthlyPayment)
	}
	if req.InterestRate != nil {
		credit.InterestRate = *req.InterestRate
	}
	if req.StartDate != nil {
		start, err := dto.ParseDate("start_date", *req.StartDate)
		if err != nil {
			return err
		}
		credit.StartDate = start
	}
	if req.EndDate != nil {
		end, err := dto.ParseOptionalDate("end_date", *req.EndDate)
		if err != nil {
			return err
		}
		credit.EndDate = end
	}
	if req.NextPaymentDate != nil {
		next, err := dto.ParseDate("next_payment_date", *req.NextPaymentDate)
		if err != nil {
			return err
		}
		credit.NextPaymentDate = next
		credit.PaymentDay = next.Day()
	}
	return nil
}

func validateCredit(credit domain.Credit, checkRemainingCap bool) error {
	switch {
	case !credit.TotalAmount.IsPositive():
		return apperrors.NewValidationFailedError("total_amount must be greater than zero")
	case credit.RemainingAmount.IsNegative():
		return apperrors.NewValidationFailedError("remaining_amount must not be negative")
	case checkRemainingCap && credit.RemainingAmount.GreaterThan(credit.TotalAmount):
		return apperrors.NewValidationFailedError("remaining_amount must not exceed total_amount")
	case credit.MonthlyPayment.IsNegative():
		return apperrors.NewValidationFailedError("monthly_payment must not be negative")
	case credit.InterestRate.IsNegative() || credit.InterestRate.GreaterThan(decimal.NewFromInt(100)):
		return apperrors.NewValidationFailedError("interest_rate must be between 0 and 100")
	case credit.EndDate != nil && credit.EndDate.Before(credit.StartDate):
		return apperrors.NewValidationFailedError("end_date must not be before start_date")
	}
	return nil
}


