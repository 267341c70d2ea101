package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// CategoryReader defines read operations for categories
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	// ListCategories returns built-in categories plus the user's own.
	ListCategories(ctx context.Context, userID int64, categoryType *domain.TransactionType) ([]domain.Category, error)
}

// CategoryWriter defines write operations for categories
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
