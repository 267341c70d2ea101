package domain

// AuthProvider records how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User is the owner of every other entity.
type User struct {
	UserID       int64        `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	AuthProvider AuthProvider `json:"auth_provider"`
	AuditFields
}
