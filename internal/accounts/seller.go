package accounts

import (
	"context"
	"fmt"

	"github.com/mavrin/market-accounts/internal/domain"
)

// Default commission rate applied when the caller does not negotiate one.
const defaultCommissionRate = 5.0

// SellerFactory creates seller accounts. New sellers land in pending
// status until verification completes, and the result carries a
// verification_required marker so callers can kick off that flow.
type SellerFactory struct {
	base
}

// NewSellerFactory creates a factory for seller accounts.
func NewSellerFactory(repo Repository) *SellerFactory {
	return &SellerFactory{base: newBase(repo)}
}

// Kind returns the account kind this factory creates.
func (f *SellerFactory) Kind() domain.AccountKind {
	return domain.KindSeller
}

// CreateAccount builds a complete seller account in one transaction.
func (f *SellerFactory) CreateAccount(ctx context.Context, fields Fields) *Result {
	return f.create(ctx, f, fields)
}

func (f *SellerFactory) createKindProfile(ctx context.Context, tx TxRepository, user *domain.User, fields Fields) (string, any, error) {
	profile := &domain.SellerProfile{
		UserID:           user.ID,
		BusinessName:     fields.String("business_name", ""),
		BusinessType:     fields.String("business_type", "individual"),
		TaxID:            fields.String("tax_id", ""),
		BusinessAddress:  fields.String("business_address", ""),
		StoreName:        fields.String("store_name", ""),
		StoreDescription: fields.String("store_description", ""),
		CommissionRate:   fields.Float("commission_rate", defaultCommissionRate),
		CanSell:          false,
	}
	if err := tx.CreateSellerProfile(ctx, profile); err != nil {
		return "", nil, fmt.Errorf("create seller profile: %w", err)
	}
	return AttachmentSellerProfile, profile, nil
}

func (f *SellerFactory) configureKindSettings(ctx context.Context, tx TxRepository, user *domain.User, bundle *ProfileBundle, fields Fields) (map[string]bool, error) {
	// Sellers get less marketing by default.
	prefs := bundle.Preferences
	prefs.MarketingEmails = fields.Bool("marketing_emails", false)
	prefs.NewsletterSubscription = fields.Bool("newsletter_subscription", false)
	prefs.PushNotifications = fields.Bool("push_notifications", true)
	if err := tx.UpdatePreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("configure seller preferences: %w", err)
	}

	// Sellers need verification before trading.
	business := bundle.Business
	business.Status = domain.AccountStatusPending
	if err := tx.UpdateBusinessStatus(ctx, business); err != nil {
		return nil, fmt.Errorf("configure seller business status: %w", err)
	}

	return map[string]bool{
		"preferences_configured":     true,
		"business_status_configured": true,
		MarkerVerificationRequired:   true,
	}, nil
}
