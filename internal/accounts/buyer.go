package accounts

import (
	"context"
	"fmt"

	"github.com/mavrin/market-accounts/internal/domain"
)

// BuyerFactory creates buyer accounts: a shopping-oriented profile plus
// consumer-friendly notification defaults.
type BuyerFactory struct {
	base
}

// NewBuyerFactory creates a factory for buyer accounts.
func NewBuyerFactory(repo Repository) *BuyerFactory {
	return &BuyerFactory{base: newBase(repo)}
}

// Kind returns the account kind this factory creates.
func (f *BuyerFactory) Kind() domain.AccountKind {
	return domain.KindBuyer
}

// CreateAccount builds a complete buyer account in one transaction.
func (f *BuyerFactory) CreateAccount(ctx context.Context, fields Fields) *Result {
	return f.create(ctx, f, fields)
}

func (f *BuyerFactory) createKindProfile(ctx context.Context, tx TxRepository, user *domain.User, fields Fields) (string, any, error) {
	profile := &domain.BuyerProfile{
		UserID:                  user.ID,
		PreferredShippingMethod: fields.String("preferred_shipping_method", domain.ShippingStandard),
		NewsletterSubscription:  fields.Bool("newsletter_subscription", true),
		DealNotifications:       fields.Bool("deal_notifications", true),
		ProductRecommendations:  fields.Bool("product_recommendations", true),
	}
	if err := tx.CreateBuyerProfile(ctx, profile); err != nil {
		return "", nil, fmt.Errorf("create buyer profile: %w", err)
	}
	return AttachmentBuyerProfile, profile, nil
}

func (f *BuyerFactory) configureKindSettings(ctx context.Context, tx TxRepository, user *domain.User, bundle *ProfileBundle, fields Fields) (map[string]bool, error) {
	prefs := bundle.Preferences
	prefs.MarketingEmails = fields.Bool("marketing_emails", true)
	prefs.NewsletterSubscription = fields.Bool("newsletter_subscription", true)
	prefs.PushNotifications = fields.Bool("push_notifications", true)
	if err := tx.UpdatePreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("configure buyer preferences: %w", err)
	}

	business := bundle.Business
	business.Status = domain.AccountStatusActive
	if err := tx.UpdateBusinessStatus(ctx, business); err != nil {
		return nil, fmt.Errorf("configure buyer business status: %w", err)
	}

	return map[string]bool{
		"preferences_configured":     true,
		"business_status_configured": true,
	}, nil
}
