package testutil

import (
	"strings"

	"github.com/google/uuid"
)

// RandomUsername returns a unique username safe for parallel tests.
func RandomUsername(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return prefix + "_" + suffix
}

// RandomEmail returns a unique email address safe for parallel tests.
func RandomEmail(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return prefix + "+" + suffix + "@example.com"
}
