package dto

import "github.com/SscSPs/finance_tracker/internal/core/domain"

// CreateCategoryRequest defines a user-owned category.
type CreateCategoryRequest struct {
	Name         string                 `json:"name" binding:"required,max=100"`
	CategoryType domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Color        string                 `json:"color" binding:"omitempty,hexcolor"`
	Icon         string                 `json:"icon" binding:"omitempty,max=50"`
}

// ListCategoriesParams filters categories by transaction type.
type ListCategoriesParams struct {
	Type string `form:"type" binding:"omitempty,oneof=income expense"`
}
