package accounts

import (
	"context"
	"fmt"

	"github.com/mavrin/market-accounts/internal/domain"
)

// Admin account defaults.
const (
	defaultAdminLevel            = "junior"
	defaultSessionTimeoutMinutes = 30
)

// AdminFactory creates admin accounts: staff flags on the identity
// record, a permissions profile, and hardened security defaults.
type AdminFactory struct {
	base
}

// NewAdminFactory creates a factory for admin accounts.
func NewAdminFactory(repo Repository) *AdminFactory {
	return &AdminFactory{base: newBase(repo)}
}

// Kind returns the account kind this factory creates.
func (f *AdminFactory) Kind() domain.AccountKind {
	return domain.KindAdmin
}

// CreateAccount builds a complete admin account in one transaction.
func (f *AdminFactory) CreateAccount(ctx context.Context, fields Fields) *Result {
	return f.create(ctx, f, fields)
}

func (f *AdminFactory) createKindProfile(ctx context.Context, tx TxRepository, user *domain.User, fields Fields) (string, any, error) {
	profile := &domain.AdminProfile{
		UserID:                user.ID,
		AdminLevel:            fields.String("admin_level", defaultAdminLevel),
		CanManageUsers:        fields.Bool("can_manage_users", false),
		CanManageProducts:     fields.Bool("can_manage_products", false),
		CanManageOrders:       fields.Bool("can_manage_orders", false),
		CanManagePayments:     fields.Bool("can_manage_payments", false),
		CanViewAnalytics:      fields.Bool("can_view_analytics", false),
		CanManageSystem:       fields.Bool("can_manage_system", false),
		Department:            fields.String("department", ""),
		RoleDescription:       fields.String("role_description", ""),
		Require2FA:            fields.Bool("require_2fa", true),
		SessionTimeoutMinutes: fields.Int("session_timeout_minutes", defaultSessionTimeoutMinutes),
	}
	if err := tx.CreateAdminProfile(ctx, profile); err != nil {
		return "", nil, fmt.Errorf("create admin profile: %w", err)
	}
	return AttachmentAdminProfile, profile, nil
}

func (f *AdminFactory) configureKindSettings(ctx context.Context, tx TxRepository, user *domain.User, bundle *ProfileBundle, fields Fields) (map[string]bool, error) {
	// Staff flag is always set; superuser only on explicit request.
	user.IsStaff = true
	user.IsSuperuser = fields.Bool("is_superuser", false)
	if err := tx.UpdateUserFlags(ctx, user); err != nil {
		return nil, fmt.Errorf("configure admin flags: %w", err)
	}

	prefs := bundle.Preferences
	prefs.MarketingEmails = false
	prefs.NewsletterSubscription = false
	prefs.PushNotifications = fields.Bool("push_notifications", true)
	prefs.Theme = fields.String("theme", "dark")
	if err := tx.UpdatePreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("configure admin preferences: %w", err)
	}

	business := bundle.Business
	business.Status = domain.AccountStatusActive
	business.IsPremium = true
	if err := tx.UpdateBusinessStatus(ctx, business); err != nil {
		return nil, fmt.Errorf("configure admin business status: %w", err)
	}

	return map[string]bool{
		"preferences_configured":     true,
		"business_status_configured": true,
		MarkerPermissionsSet:         true,
	}, nil
}
