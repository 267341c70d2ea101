package models

// User mirrors a row of the users table.
type User struct {
	UserID       int64  `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	AuthProvider string `db:"auth_provider"`
	AuditFields
}
