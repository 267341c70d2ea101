package domain

import "time"

// AuditFields holds the timestamps every persisted entity carries.
type AuditFields struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DateRange is an optional inclusive date window used by listings and stats.
type DateRange struct {
	StartDate *time.Time
	EndDate   *time.Time
}
