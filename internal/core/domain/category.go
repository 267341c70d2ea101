package domain

import "time"

// Category groups transactions for reporting. Categories without an owner are
// built in and visible to every user.
type Category struct {
	CategoryID   int64           `json:"id"`
	UserID       *int64          `json:"user_id"`
	Name         string          `json:"name"`
	CategoryType TransactionType `json:"type"`
	Color        string          `json:"color"`
	Icon         string          `json:"icon"`
	CreatedAt    time.Time       `json:"created_at"`
}

// VisibleTo reports whether the user may book transactions against the category.
func (c Category) VisibleTo(userID int64) bool {
	return c.UserID == nil || *c.UserID == userID
}
