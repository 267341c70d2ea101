package handlers_test

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, userID, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, userID int64, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, userID, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeactivateAccount(ctx context.Context, userID, accountID int64) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context, userID int64, params dto.ListCategoriesParams) ([]domain.Category, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) CreateCategory(ctx context.Context, userID int64, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, userID, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, userID int64, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID int64, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, userID, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID, transactionID int64) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock StatsService ---
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetTransactionStats(ctx context.Context, userID int64, params dto.DateRangeParams) (*domain.TransactionStats, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionStats), args.Error(1)
}
func (m *MockStatsService) GetCategoryStats(ctx context.Context, userID int64, params dto.CategoryStatsParams) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}
func (m *MockStatsService) GetSummary(ctx context.Context, userID int64, params dto.CategoryStatsParams) (*dto.TransactionSummaryResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionSummaryResponse), args.Error(1)
}

var _ portssvc.StatsSvc = (*MockStatsService)(nil)

// --- Mock CreditService ---
type MockCreditService struct {
	mock.Mock
}

func (m *MockCreditService) GetCreditByID(ctx context.Context, userID, creditID int64) (*domain.Credit, error) {
	args := m.Called(ctx, userID, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}
func (m *MockCreditService) ListCredits(ctx context.Context, userID int64) ([]dto.CreditWithStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CreditWithStats), args.Error(1)
}
func (m *MockCreditService) GetCreditStats(ctx context.Context, userID, creditID int64) (*domain.CreditStats, error) {
	args := m.Called(ctx, userID, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditStats), args.Error(1)
}
func (m *MockCreditService) ListPayments(ctx context.Context, userID, creditID int64) ([]domain.CreditPayment, error) {
	args := m.Called(ctx, userID, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditPayment), args.Error(1)
}
func (m *MockCreditService) CreateCredit(ctx context.Context, userID int64, req dto.CreateCreditRequest) (*domain.Credit, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}
func (m *MockCreditService) UpdateCredit(ctx context.Context, userID, creditID int64, req dto.UpdateCreditRequest) (*domain.Credit, error) {
	args := m.Called(ctx, userID, creditID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}
func (m *MockCreditService) DeactivateCredit(ctx context.Context, userID, creditID int64) error {
	args := m.Called(ctx, userID, creditID)
	return args.Error(0)
}
func (m *MockCreditService) MakePayment(ctx context.Context, userID, creditID int64, req dto.MakePaymentRequest) (*domain.Credit, *domain.CreditPayment, error) {
	args := m.Called(ctx, userID, creditID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Credit), args.Get(1).(*domain.CreditPayment), args.Error(2)
}

var _ portssvc.CreditSvcFacade = (*MockCreditService)(nil)

// --- Mock WorkShiftService ---
type MockWorkShiftService struct {
	mock.Mock
}

func (m *MockWorkShiftService) GetShiftByID(ctx context.Context, userID, shiftID int64) (*domain.WorkShift, error) {
	args := m.Called(ctx, userID, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkShift), args.Error(1)
}
func (m *MockWorkShiftService) ListShifts(ctx context.Context, userID int64, params dto.ListWorkShiftsParams) ([]domain.WorkShift, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkShift), args.Error(1)
}
func (m *MockWorkShiftService) GetShiftStats(ctx context.Context, userID int64, params dto.ShiftStatsParams) (*domain.ShiftStats, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftStats), args.Error(1)
}
func (m *MockWorkShiftService) GetCalendar(ctx context.Context, userID int64, year, month int) (*dto.CalendarResponse, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CalendarResponse), args.Error(1)
}
func (m *MockWorkShiftService) CreateShift(ctx context.Context, userID int64, req dto.CreateWorkShiftRequest) (*domain.WorkShift, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkShift), args.Error(1)
}
func (m *MockWorkShiftService) UpdateShift(ctx context.Context, userID, shiftID int64, req dto.UpdateWorkShiftRequest) (*domain.WorkShift, error) {
	args := m.Called(ctx, userID, shiftID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkShift), args.Error(1)
}
func (m *MockWorkShiftService) DeleteShift(ctx context.Context, userID, shiftID int64) error {
	args := m.Called(ctx, userID, shiftID)
	return args.Error(0)
}

var _ portssvc.WorkShiftSvcFacade = (*MockWorkShiftService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, email, displayName string) (*domain.User, error) {
	args := m.Called(ctx, email, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}
func (m *MockAuthService) SignInWithGoogle(ctx context.Context, req dto.GoogleSignInRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)
