package accounts

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mavrin/market-accounts/internal/domain"
)

// Registry maps account kinds to their factories. Register the built-in
// kinds at startup before serving requests; registering after lookups
// have begun is not a design guarantee even though the registry is
// internally locked. Last registration for a kind wins.
type Registry struct {
	mu        sync.RWMutex
	factories map[domain.AccountKind]Factory
}

// NewRegistry creates an empty factory registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[domain.AccountKind]Factory)}
}

// NewDefaultRegistry creates a registry with the built-in buyer, seller
// and admin factories bound to the given store.
func NewDefaultRegistry(repo Repository) *Registry {
	r := NewRegistry()
	r.Register(domain.KindBuyer, NewBuyerFactory(repo))
	r.Register(domain.KindSeller, NewSellerFactory(repo))
	r.Register(domain.KindAdmin, NewAdminFactory(repo))
	return r
}

// Register binds a factory to a kind, replacing any existing binding.
// This is the extension point: new kinds are added here without
// touching existing factories.
func (r *Registry) Register(kind domain.AccountKind, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = factory
}

// Get returns the factory for the kind. Lookup is exact; an
// unregistered kind is a configuration fault reported as
// ErrUnsupportedKind, never a silent default.
func (r *Registry) Get(kind domain.AccountKind) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	return factory, nil
}

// SupportedKinds returns the registered kinds in sorted order.
func (r *Registry) SupportedKinds() []domain.AccountKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]domain.AccountKind, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
