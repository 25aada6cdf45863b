package accounts

import (
	"errors"
	"fmt"
)

// Registry errors.
var (
	ErrUnsupportedKind = errors.New("unsupported account kind")
)

// Store errors. The postgres repository maps constraint violations and
// infrastructure failures to these sentinels so factories can turn them
// into display-ready result errors.
var (
	ErrEmailTaken          = errors.New("email is already registered")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStoreUnavailable    = errors.New("account store unavailable")
)

// MissingFieldError reports a required field that is absent or empty in
// the input bag. It surfaces as a result error, never as a fault.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
