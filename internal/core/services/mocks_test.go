package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- transaction manager ---

type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *mockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *mockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- accounts ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListActiveAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID int64, now time.Time) error {
	return m.Called(ctx, accountID, now).Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[int64]decimal.Decimal, now time.Time) (map[int64]domain.Account, error) {
	args := m.Called(ctx, tx, deltas, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

// --- transactions ---

type MockTransactionRepository struct {
	mockTxManager
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID int64, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, tx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, tx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	return m.Called(ctx, tx, txn).Error(0)
}

func (m *MockTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID int64) error {
	return m.Called(ctx, tx, transactionID).Error(0)
}

// --- categories ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID int64, categoryType *domain.TransactionType) ([]domain.Category, error) {
	args := m.Called(ctx, userID, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// --- credits ---

type MockCreditRepository struct {
	mockTxManager
}

func (m *MockCreditRepository) FindCreditByID(ctx context.Context, creditID int64) (*domain.Credit, error) {
	args := m.Called(ctx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) ListActiveCredits(ctx context.Context, userID int64) ([]domain.Credit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) ListCreditPayments(ctx context.Context, creditID int64) ([]domain.CreditPayment, error) {
	args := m.Called(ctx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditPayment), args.Error(1)
}

func (m *MockCreditRepository) SaveCredit(ctx context.Context, credit domain.Credit) (*domain.Credit, error) {
	args := m.Called(ctx, credit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) UpdateCredit(ctx context.Context, credit domain.Credit) (*domain.Credit, error) {
	args := m.Called(ctx, credit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) DeactivateCredit(ctx context.Context, creditID int64, now time.Time) error {
	return m.Called(ctx, creditID, now).Error(0)
}

func (m *MockCreditRepository) FindCreditByIDForUpdate(ctx context.Context, tx pgx.Tx, creditID int64) (*domain.Credit, error) {
	args := m.Called(ctx, tx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) SaveCreditPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.CreditPayment) (*domain.CreditPayment, error) {
	args := m.Called(ctx, tx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditPayment), args.Error(1)
}

func (m *MockCreditRepository) UpdateCreditScheduleInTx(ctx context.Context, tx pgx.Tx, credit domain.Credit) (*domain.Credit, error) {
	args := m.Called(ctx, tx, credit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

// --- work shifts ---

type MockWorkShiftRepository struct {
	mock.Mock
}

func (m *MockWorkShiftRepository) FindShiftByID(ctx context.Context, shiftID int64) (*domain.WorkShift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkShift), args.Error(1)
}

func (m *MockWorkShiftRepository) ListShifts(ctx context.Context, userID int64, filter domain.ShiftFilter) ([]domain.WorkShift, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkShift), args.Error(1)
}

func (m *MockWorkShiftRepository) ListShiftsBetween(ctx context.Context, userID int64, from, to time.Time) ([]domain.WorkShift, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkShift), args.Error(1)
}

func (m *MockWorkShiftRepository) GetShiftStatusGroups(ctx context.Context, userID int64, filter domain.ShiftFilter) ([]domain.ShiftStatusGroup, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftStatusGroup), args.Error(1)
}

func (m *MockWorkShiftRepository) SaveShift(ctx context.Context, shift domain.WorkShift) (*domain.WorkShift, error) {
	args := m.Called(ctx, shift)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkShift), args.Error(1)
}

func (m *MockWorkShiftRepository) UpdateShift(ctx context.Context, shift domain.WorkShift) (*domain.WorkShift, error) {
	args := m.Called(ctx, shift)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkShift), args.Error(1)
}

func (m *MockWorkShiftRepository) DeleteShift(ctx context.Context, shiftID int64) error {
	return m.Called(ctx, shiftID).Error(0)
}

// --- stats ---

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetTypeTotals(ctx context.Context, userID int64, dateRange domain.DateRange) ([]domain.TypeTotal, error) {
	args := m.Called(ctx, userID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TypeTotal), args.Error(1)
}

func (m *MockStatsRepository) GetCategoryTotals(ctx context.Context, userID int64, filter domain.CategoryStatsFilter) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

// --- users ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- outbound ports ---

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, userID int64, key string, dest any) (int64, bool, error) {
	args := m.Called(ctx, userID, key, dest)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockStatsCache) Set(ctx context.Context, userID int64, generation int64, key string, value any) error {
	return m.Called(ctx, userID, generation, key, value).Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.LedgerEvent) error {
	return m.Called(ctx, event).Error(0)
}

// --- helpers ---

var (
	fixedNow   = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	fixedToday = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
)

func clock() time.Time { return fixedNow }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T { return &v }
