package accounts

import (
	"context"

	"github.com/mavrin/market-accounts/internal/domain"
)

// Repository is the profile store the factories create against. The
// whole of one account creation runs inside a single InTx call: either
// every record commits or none do.
type Repository interface {
	// InTx runs fn inside one store transaction. A nil return from fn
	// commits; any error rolls the transaction back and is returned
	// unchanged.
	InTx(ctx context.Context, fn func(ctx context.Context, tx TxRepository) error) error
}

// TxRepository is the transactional surface of the profile store.
//
// The GetOrCreate methods take a prototype record: when no row exists
// for the record's UserID the prototype is inserted as-is; when one
// does, the existing row is loaded into the prototype. Either way the
// record reflects the stored state afterwards, which is what makes
// bundling idempotent.
type TxRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	UpdateUserFlags(ctx context.Context, user *domain.User) error

	GetOrCreateContactProfile(ctx context.Context, profile *domain.ContactProfile) error
	GetOrCreatePreferences(ctx context.Context, prefs *domain.Preferences) error
	GetOrCreateAnalytics(ctx context.Context, analytics *domain.Analytics) error
	GetOrCreateBusinessStatus(ctx context.Context, status *domain.BusinessStatus) error

	UpdatePreferences(ctx context.Context, prefs *domain.Preferences) error
	UpdateBusinessStatus(ctx context.Context, status *domain.BusinessStatus) error

	CreateBuyerProfile(ctx context.Context, profile *domain.BuyerProfile) error
	CreateSellerProfile(ctx context.Context, profile *domain.SellerProfile) error
	CreateAdminProfile(ctx context.Context, profile *domain.AdminProfile) error
}
