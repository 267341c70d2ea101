package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// CategorySvcFacade lists built-in categories and manages the user's own.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context, userID int64, params dto.ListCategoriesParams) ([]domain.Category, error)
	CreateCategory(ctx context.Context, userID int64, req dto.CreateCategoryRequest) (*domain.Category, error)
}
