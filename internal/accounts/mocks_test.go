package accounts

import (
	"context"
	"fmt"

	"github.com/mavrin/market-accounts/internal/domain"
)

// mockRepository implements Repository and simulates transactional
// semantics: writes go to a staged copy and are discarded when the
// transaction function returns an error.
type mockRepository struct {
	users     map[string]*domain.User // by user ID
	contacts  map[string]*domain.ContactProfile
	prefs     map[string]*domain.Preferences
	analytics map[string]*domain.Analytics
	business  map[string]*domain.BusinessStatus
	buyers    map[string]*domain.BuyerProfile
	sellers   map[string]*domain.SellerProfile
	admins    map[string]*domain.AdminProfile

	createUserErr      error
	updateUserFlagsErr error
	createBuyerErr     error
	createSellerErr    error
	createAdminErr     error
	getOrCreateErr     error
	updatePrefsErr     error
	updateBusinessErr  error
	nextID             int
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:     make(map[string]*domain.User),
		contacts:  make(map[string]*domain.ContactProfile),
		prefs:     make(map[string]*domain.Preferences),
		analytics: make(map[string]*domain.Analytics),
		business:  make(map[string]*domain.BusinessStatus),
		buyers:    make(map[string]*domain.BuyerProfile),
		sellers:   make(map[string]*domain.SellerProfile),
		admins:    make(map[string]*domain.AdminProfile),
	}
}

func (m *mockRepository) newRowID() string {
	m.nextID++
	return fmt.Sprintf("row-%d", m.nextID)
}

func (m *mockRepository) InTx(ctx context.Context, fn func(ctx context.Context, tx TxRepository) error) error {
	tx := &mockTx{
		repo:      m,
		users:     copyMap(m.users),
		contacts:  copyMap(m.contacts),
		prefs:     copyMap(m.prefs),
		analytics: copyMap(m.analytics),
		business:  copyMap(m.business),
		buyers:    copyMap(m.buyers),
		sellers:   copyMap(m.sellers),
		admins:    copyMap(m.admins),
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	m.users = tx.users
	m.contacts = tx.contacts
	m.prefs = tx.prefs
	m.analytics = tx.analytics
	m.business = tx.business
	m.buyers = tx.buyers
	m.sellers = tx.sellers
	m.admins = tx.admins
	return nil
}

func copyMap[V any](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// mockTx is the staged view of the store inside one transaction.
type mockTx struct {
	repo      *mockRepository
	users     map[string]*domain.User
	contacts  map[string]*domain.ContactProfile
	prefs     map[string]*domain.Preferences
	analytics map[string]*domain.Analytics
	business  map[string]*domain.BusinessStatus
	buyers    map[string]*domain.BuyerProfile
	sellers   map[string]*domain.SellerProfile
	admins    map[string]*domain.AdminProfile
}

func (t *mockTx) CreateUser(_ context.Context, user *domain.User) error {
	if t.repo.createUserErr != nil {
		return fmt.Errorf("create user: %w", t.repo.createUserErr)
	}
	for _, existing := range t.users {
		if existing.Email == user.Email {
			return fmt.Errorf("create user: %w", ErrEmailTaken)
		}
		if existing.Username == user.Username {
			return fmt.Errorf("create user: %w", ErrUsernameTaken)
		}
	}
	t.users[user.ID] = user
	return nil
}

func (t *mockTx) UpdateUserFlags(_ context.Context, user *domain.User) error {
	if t.repo.updateUserFlagsErr != nil {
		return t.repo.updateUserFlagsErr
	}
	t.users[user.ID] = user
	return nil
}

func (t *mockTx) GetOrCreateContactProfile(_ context.Context, profile *domain.ContactProfile) error {
	if t.repo.getOrCreateErr != nil {
		return t.repo.getOrCreateErr
	}
	if existing, ok := t.contacts[profile.UserID]; ok {
		*profile = *existing
		return nil
	}
	profile.ID = t.repo.newRowID()
	t.contacts[profile.UserID] = profile
	return nil
}

func (t *mockTx) GetOrCreatePreferences(_ context.Context, prefs *domain.Preferences) error {
	if t.repo.getOrCreateErr != nil {
		return t.repo.getOrCreateErr
	}
	if existing, ok := t.prefs[prefs.UserID]; ok {
		*prefs = *existing
		return nil
	}
	prefs.ID = t.repo.newRowID()
	t.prefs[prefs.UserID] = prefs
	return nil
}

func (t *mockTx) GetOrCreateAnalytics(_ context.Context, analytics *domain.Analytics) error {
	if t.repo.getOrCreateErr != nil {
		return t.repo.getOrCreateErr
	}
	if existing, ok := t.analytics[analytics.UserID]; ok {
		*analytics = *existing
		return nil
	}
	analytics.ID = t.repo.newRowID()
	t.analytics[analytics.UserID] = analytics
	return nil
}

func (t *mockTx) GetOrCreateBusinessStatus(_ context.Context, status *domain.BusinessStatus) error {
	if t.repo.getOrCreateErr != nil {
		return t.repo.getOrCreateErr
	}
	if existing, ok := t.business[status.UserID]; ok {
		*status = *existing
		return nil
	}
	status.ID = t.repo.newRowID()
	t.business[status.UserID] = status
	return nil
}

func (t *mockTx) UpdatePreferences(_ context.Context, prefs *domain.Preferences) error {
	if t.repo.updatePrefsErr != nil {
		return t.repo.updatePrefsErr
	}
	t.prefs[prefs.UserID] = prefs
	return nil
}

func (t *mockTx) UpdateBusinessStatus(_ context.Context, status *domain.BusinessStatus) error {
	if t.repo.updateBusinessErr != nil {
		return t.repo.updateBusinessErr
	}
	t.business[status.UserID] = status
	return nil
}

func (t *mockTx) CreateBuyerProfile(_ context.Context, profile *domain.BuyerProfile) error {
	if t.repo.createBuyerErr != nil {
		return t.repo.createBuyerErr
	}
	profile.ID = t.repo.newRowID()
	t.buyers[profile.UserID] = profile
	return nil
}

func (t *mockTx) CreateSellerProfile(_ context.Context, profile *domain.SellerProfile) error {
	if t.repo.createSellerErr != nil {
		return t.repo.createSellerErr
	}
	profile.ID = t.repo.newRowID()
	t.sellers[profile.UserID] = profile
	return nil
}

func (t *mockTx) CreateAdminProfile(_ context.Context, profile *domain.AdminProfile) error {
	if t.repo.createAdminErr != nil {
		return t.repo.createAdminErr
	}
	profile.ID = t.repo.newRowID()
	t.admins[profile.UserID] = profile
	return nil
}
