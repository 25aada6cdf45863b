package domain

import "time"

// AccountKind discriminates which factory and which kind-specific profile
// schema apply to a user. New kinds may be registered at runtime.
type AccountKind string

// Built-in account kinds.
const (
	KindBuyer  AccountKind = "buyer"
	KindSeller AccountKind = "seller"
	KindAdmin  AccountKind = "admin"
)

// User is the identity record. Username and email are unique across the
// store; uniqueness is enforced by database constraints, never pre-checks.
type User struct {
	ID            string      `json:"id"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	PasswordHash  string      `json:"-"`
	Kind          AccountKind `json:"kind"`
	IsStaff       bool        `json:"is_staff"`
	IsSuperuser   bool        `json:"is_superuser"`
	EmailVerified bool        `json:"is_email_verified"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
