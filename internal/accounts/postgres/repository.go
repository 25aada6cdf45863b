// Package postgres provides the PostgreSQL implementation of the
// accounts repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mavrin/market-accounts/internal/accounts"
	"github.com/mavrin/market-accounts/internal/domain"
)

const uniqueViolationCode = "23505"

// Repository implements accounts.Repository using PostgreSQL. The
// database is the sole arbiter of uniqueness: duplicate emails or
// usernames surface as constraint violations from CreateUser, never as
// pre-checks.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// InTx runs fn inside one transaction. Errors from fn roll everything
// back and pass through unchanged so sentinel checks keep working.
func (r *Repository) InTx(ctx context.Context, fn func(ctx context.Context, tx accounts.TxRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", accounts.ErrStoreUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, &txRepository{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", accounts.ErrStoreUnavailable, err)
	}
	return nil
}

type txRepository struct {
	tx pgx.Tx
}

// wrapErr maps database failures onto the accounts error taxonomy.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return fmt.Errorf("%s: %w", op, accounts.ErrEmailTaken)
		case "users_username_key":
			return fmt.Errorf("%s: %w", op, accounts.ErrUsernameTaken)
		}
		return fmt.Errorf("%s: %w", op, accounts.ErrConstraintViolation)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// CreateUser inserts the identity record.
func (t *txRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, kind, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	err := t.tx.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Kind,
		user.IsStaff,
		user.IsSuperuser,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return wrapErr("create user", err)
	}
	return nil
}

// UpdateUserFlags persists the staff and superuser flags.
func (t *txRepository) UpdateUserFlags(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET is_staff = $2, is_superuser = $3, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	err := t.tx.QueryRow(ctx, query, user.ID, user.IsStaff, user.IsSuperuser).Scan(&user.UpdatedAt)
	if err != nil {
		return wrapErr("update user flags", err)
	}
	return nil
}

// GetOrCreateContactProfile inserts the prototype when no row exists
// for its user, otherwise loads the existing row into it. The no-op
// DO UPDATE makes RETURNING yield the surviving row either way.
func (t *txRepository) GetOrCreateContactProfile(ctx context.Context, profile *domain.ContactProfile) error {
	query := `
		INSERT INTO contact_profiles (user_id, first_name, last_name, bio, phone_number, address, city, country, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, first_name, last_name, bio, phone_number, address, city, country, postal_code, created_at, updated_at
	`
	err := t.tx.QueryRow(ctx, query,
		profile.UserID,
		profile.FirstName,
		profile.LastName,
		profile.Bio,
		profile.PhoneNumber,
		profile.Address,
		profile.City,
		profile.Country,
		profile.PostalCode,
	).Scan(
		&profile.ID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Bio,
		&profile.PhoneNumber,
		&profile.Address,
		&profile.City,
		&profile.Country,
		&profile.PostalCode,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return wrapErr("get or create contact profile", err)
	}
	return nil
}

// GetOrCreatePreferences inserts default preferences or loads the
// existing row into the prototype.
func (t *txRepository) GetOrCreatePreferences(ctx context.Context, prefs *domain.Preferences) error {
	query := `
		INSERT INTO user_preferences (
			user_id, email_notifications, sms_notifications, marketing_emails,
			newsletter_subscription, push_notifications, language, timezone,
			currency, theme, items_per_page, profile_visibility, show_online_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, email_notifications, sms_notifications, marketing_emails,
			newsletter_subscription, push_notifications, language, timezone,
			currency, theme, items_per_page, profile_visibility, show_online_status,
			created_at, updated_at
	`
	err := t.tx.QueryRow(ctx, query,
		prefs.UserID,
		prefs.EmailNotifications,
		prefs.SMSNotifications,
		prefs.MarketingEmails,
		prefs.NewsletterSubscription,
		prefs.PushNotifications,
		prefs.Language,
		prefs.Timezone,
		prefs.Currency,
		prefs.Theme,
		prefs.ItemsPerPage,
		prefs.ProfileVisibility,
		prefs.ShowOnlineStatus,
	).Scan(
		&prefs.ID,
		&prefs.EmailNotifications,
		&prefs.SMSNotifications,
		&prefs.MarketingEmails,
		&prefs.NewsletterSubscription,
		&prefs.PushNotifications,
		&prefs.Language,
		&prefs.Timezone,
		&prefs.Currency,
		&prefs.Theme,
		&prefs.ItemsPerPage,
		&prefs.ProfileVisibility,
		&prefs.ShowOnlineStatus,
		&prefs.CreatedAt,
		&prefs.UpdatedAt,
	)
	if err != nil {
		return wrapErr("get or create preferences", err)
	}
	return nil
}

// GetOrCreateAnalytics inserts a zeroed analytics row or loads the
// existing one.
func (t *txRepository) GetOrCreateAnalytics(ctx context.Context, analytics *domain.Analytics) error {
	query := `
		INSERT INTO user_analytics (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, login_count, profile_views, total_sessions, last_activity_at, created_at, updated_at
	`
	err := t.tx.QueryRow(ctx, query, analytics.UserID).Scan(
		&analytics.ID,
		&analytics.LoginCount,
		&analytics.ProfileViews,
		&analytics.TotalSessions,
		&analytics.LastActivityAt,
		&analytics.CreatedAt,
		&analytics.UpdatedAt,
	)
	if err != nil {
		return wrapErr("get or create analytics", err)
	}
	return nil
}

// GetOrCreateBusinessStatus inserts the prototype or loads the existing
// row. On the existing path the prototype's freshly generated referral
// code is discarded in favor of the stored one.
func (t *txRepository) GetOrCreateBusinessStatus(ctx context.Context, status *domain.BusinessStatus) error {
	query := `
		INSERT INTO business_statuses (user_id, referral_code, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, is_premium, premium_expires_at, account_balance::text,
			total_spent::text, referral_code, referred_by, referral_earnings::text,
			status, created_at, updated_at
	`
	err := t.tx.QueryRow(ctx, query,
		status.UserID,
		status.ReferralCode,
		status.Status,
	).Scan(
		&status.ID,
		&status.IsPremium,
		&status.PremiumExpiresAt,
		&status.AccountBalance,
		&status.TotalSpent,
		&status.ReferralCode,
		&status.ReferredBy,
		&status.ReferralEarnings,
		&status.Status,
		&status.CreatedAt,
		&status.UpdatedAt,
	)
	if err != nil {
		return wrapErr("get or create business status", err)
	}
	return nil
}

// UpdatePreferences persists the settable preference columns.
func (t *txRepository) UpdatePreferences(ctx context.Context, prefs *domain.Preferences) error {
	query := `
		UPDATE user_preferences
		SET marketing_emails = $2, newsletter_subscription = $3,
			push_notifications = $4, language = $5, theme = $6,
			updated_at = now()
		WHERE user_id = $1
		RETURNING updated_at
	`
	err := t.tx.QueryRow(ctx, query,
		prefs.UserID,
		prefs.MarketingEmails,
		prefs.NewsletterSubscription,
		prefs.PushNotifications,
		prefs.Language,
		prefs.Theme,
	).Scan(&prefs.UpdatedAt)
	if err != nil {
		return wrapErr("update preferences", err)
	}
	return nil
}

// UpdateBusinessStatus persists the premium flag and lifecycle status.
func (t *txRepository) UpdateBusinessStatus(ctx context.Context, status *domain.BusinessStatus) error {
	query := `
		UPDATE business_statuses
		SET is_premium = $2, status = $3, updated_at = now()
		WHERE user_id = $1
		RETURNING updated_at
	`
	err := t.tx.QueryRow(ctx, query, status.UserID, status.IsPremium, status.Status).Scan(&status.UpdatedAt)
	if err != nil {
		return wrapErr("update business status", err)
	}
	return nil
}

// CreateBuyerProfile inserts the buyer-specific record.
func (t *txRepository) CreateBuyerProfile(ctx context.Context, profile *domain.BuyerProfile) error {
	query := `
		INSERT INTO buyer_profiles (user_id, preferred_shipping_method, newsletter_subscription, deal_notifications, product_recommendations)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := t.tx.QueryRow(ctx, query,
		profile.UserID,
		profile.PreferredShippingMethod,
		profile.NewsletterSubscription,
		profile.DealNotifications,
		profile.ProductRecommendations,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return wrapErr("create buyer profile", err)
	}
	return nil
}

// CreateSellerProfile inserts the seller-specific record.
func (t *txRepository) CreateSellerProfile(ctx context.Context, profile *domain.SellerProfile) error {
	query := `
		INSERT INTO seller_profiles (user_id, business_name, business_type, tax_id, business_address, store_name, store_description, commission_rate, can_sell)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := t.tx.QueryRow(ctx, query,
		profile.UserID,
		profile.BusinessName,
		profile.BusinessType,
		profile.TaxID,
		profile.BusinessAddress,
		profile.StoreName,
		profile.StoreDescription,
		profile.CommissionRate,
		profile.CanSell,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return wrapErr("create seller profile", err)
	}
	return nil
}

// CreateAdminProfile inserts the admin-specific record.
func (t *txRepository) CreateAdminProfile(ctx context.Context, profile *domain.AdminProfile) error {
	query := `
		INSERT INTO admin_profiles (
			user_id, admin_level, can_manage_users, can_manage_products,
			can_manage_orders, can_manage_payments, can_view_analytics,
			can_manage_system, department, role_description, require_2fa,
			session_timeout_minutes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	err := t.tx.QueryRow(ctx, query,
		profile.UserID,
		profile.AdminLevel,
		profile.CanManageUsers,
		profile.CanManageProducts,
		profile.CanManageOrders,
		profile.CanManagePayments,
		profile.CanViewAnalytics,
		profile.CanManageSystem,
		profile.Department,
		profile.RoleDescription,
		profile.Require2FA,
		profile.SessionTimeoutMinutes,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return wrapErr("create admin profile", err)
	}
	return nil
}
