package accounts

import (
	"context"
	"testing"

	"github.com/mavrin/market-accounts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFactory is a minimal Factory for registry tests.
type stubFactory struct {
	kind domain.AccountKind
}

func (s *stubFactory) Kind() domain.AccountKind { return s.kind }

func (s *stubFactory) CreateAccount(_ context.Context, _ Fields) *Result {
	return NewResult(&domain.User{ID: "stub", Kind: s.kind})
}

func TestRegistry_Get_UnsupportedKind(t *testing.T) {
	registry := NewRegistry()

	factory, err := registry.Get("vendor")

	assert.Nil(t, factory)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
	assert.Contains(t, err.Error(), "vendor")
}

func TestRegistry_Get_ExactMatchOnly(t *testing.T) {
	registry := NewRegistry()
	registry.Register(domain.KindBuyer, &stubFactory{kind: domain.KindBuyer})

	_, err := registry.Get("Buyer")
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = registry.Get(domain.KindBuyer)
	assert.NoError(t, err)
}

func TestRegistry_Register_LastWins(t *testing.T) {
	registry := NewRegistry()
	first := &stubFactory{kind: domain.KindBuyer}
	second := &stubFactory{kind: domain.KindBuyer}

	registry.Register(domain.KindBuyer, first)
	registry.Register(domain.KindBuyer, second)

	factory, err := registry.Get(domain.KindBuyer)
	require.NoError(t, err)
	assert.Same(t, second, factory)
}

// Adding a kind never touches existing registrations.
func TestRegistry_RuntimeExtension(t *testing.T) {
	repo := newMockRepository()
	registry := NewDefaultRegistry(repo)

	registry.Register("moderator", &stubFactory{kind: "moderator"})

	factory, err := registry.Get("moderator")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountKind("moderator"), factory.Kind())

	for _, kind := range []domain.AccountKind{domain.KindBuyer, domain.KindSeller, domain.KindAdmin} {
		_, err := registry.Get(kind)
		assert.NoError(t, err, kind)
	}
}

func TestRegistry_SupportedKinds_Sorted(t *testing.T) {
	repo := newMockRepository()
	registry := NewDefaultRegistry(repo)

	kinds := registry.SupportedKinds()

	assert.Equal(t, []domain.AccountKind{
		domain.KindAdmin, domain.KindBuyer, domain.KindSeller,
	}, kinds)
}
