package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// CreditReaderSvc defines read operations for credits
type CreditReaderSvc interface {
	GetCreditByID(ctx context.Context, userID, creditID int64) (*domain.Credit, error)
	// ListCredits returns active credits, each with its stats or the reason they are missing.
	ListCredits(ctx context.Context, userID int64) ([]dto.CreditWithStats, error)
	GetCreditStats(ctx context.Context, userID, creditID int64) (*domain.CreditStats, error)
	ListPayments(ctx context.Context, userID, creditID int64) ([]domain.CreditPayment, error)
}

// CreditWriterSvc defines write operations for credits
type CreditWriterSvc interface {
	CreateCredit(ctx context.Context, userID int64, req dto.CreateCreditRequest) (*domain.Credit, error)
	UpdateCredit(ctx context.Context, userID, creditID int64, req dto.UpdateCreditRequest) (*domain.Credit, error)
	DeactivateCredit(ctx context.Context, userID, creditID int64) error
	// MakePayment splits amount into interest and principal and advances the schedule.
	MakePayment(ctx context.Context, userID, creditID int64, req dto.MakePaymentRequest) (*domain.Credit, *domain.CreditPayment, error)
}

// CreditSvcFacade combines all credit-related service interfaces
type CreditSvcFacade interface {
	CreditReaderSvc
	CreditWriterSvc
}
