package models

import "time"

// Category mirrors a row of the categories table.
type Category struct {
	CategoryID   int64     `db:"id"`
	UserID       *int64    `db:"user_id"`
	Name         string    `db:"name"`
	CategoryType string    `db:"type"`
	Color        string    `db:"color"`
	Icon         string    `db:"icon"`
	CreatedAt    time.Time `db:"created_at"`
}
