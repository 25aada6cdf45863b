package httputil

import (
	"context"
	"errors"
	"net/http"

	"github.com/mavrin/market-accounts/internal/pkg/ctxlog"
)

// ErrorMapping binds a sentinel error to the HTTP status it should
// produce. Matching uses errors.Is, so wrapped sentinels match too.
type ErrorMapping struct {
	Error   error
	Status  int
	Message string // response message; err.Error() when empty
}

// HandleError writes the mapped response for err. An error no mapping
// covers is treated as internal: logged and answered with 500 without
// leaking its text to the client.
func HandleError(ctx context.Context, w http.ResponseWriter, err error, mappings []ErrorMapping) {
	for _, m := range mappings {
		if !errors.Is(err, m.Error) {
			continue
		}
		msg := m.Message
		if msg == "" {
			msg = err.Error()
		}
		Error(w, m.Status, msg)
		return
	}

	ctxlog.FromContext(ctx).Error("internal error", "error", err)
	Error(w, http.StatusInternalServerError, "internal error")
}
