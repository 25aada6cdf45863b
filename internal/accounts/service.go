package accounts

import (
	"context"

	"github.com/mavrin/market-accounts/internal/domain"
	"github.com/mavrin/market-accounts/internal/pkg/ctxlog"
	"github.com/mavrin/market-accounts/internal/pkg/metrics"
)

// Service is the caller-facing entry point for account creation. It
// hides the registry lookup and factory invocation behind a single
// operation.
type Service struct {
	registry *Registry
}

// NewService creates a new accounts service.
func NewService(registry *Registry) *Service {
	return &Service{registry: registry}
}

// CreateAccount creates an account of the given kind from the field
// bag. The only error it returns is ErrUnsupportedKind, which signals a
// configuration fault; every user-input-shaped failure comes back
// inside the result.
func (s *Service) CreateAccount(ctx context.Context, kind domain.AccountKind, fields Fields) (*Result, error) {
	factory, err := s.registry.Get(kind)
	if err != nil {
		return nil, err
	}

	result := factory.CreateAccount(ctx, fields)

	outcome := "success"
	if !result.Successful() {
		outcome = "failure"
		ctxlog.FromContext(ctx).Warn("account creation failed",
			"kind", kind,
			"errors", result.Errors(),
		)
	}
	metrics.AccountCreations.WithLabelValues(string(kind), outcome).Inc()

	return result, nil
}

// SupportedKinds returns the kinds accounts can currently be created
// with.
func (s *Service) SupportedKinds() []domain.AccountKind {
	return s.registry.SupportedKinds()
}
