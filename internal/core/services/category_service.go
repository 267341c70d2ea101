package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

const (
	defaultCategoryColor = domain.UncategorizedColor
	defaultCategoryIcon  = domain.UncategorizedIcon
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, userID int64, params dto.ListCategoriesParams) ([]domain.Category, error) {
	var categoryType *domain.TransactionType
	if params.Type != "" {
		t := domain.TransactionType(params.Type)
		categoryType = &t
	}

	categories, err := s.categoryRepo.ListCategories(ctx, userID, categoryType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.Int64("user_id", userID))
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, userID int64, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		UserID:       &userID,
		Name:         req.Name,
		CategoryType: req.CategoryType,
		Color:        req.Color,
		Icon:         req.Icon,
		CreatedAt:    time.Now().UTC(),
	}
	if category.Color == "" {
		category.Color = defaultCategoryColor
	}
	if category.Icon == "" {
		category.Icon = defaultCategoryIcon
	}

	saved, err := s.categoryRepo.SaveCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.Int64("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.Int64("category_id", saved.CategoryID))
	return saved, nil
}
