package accounts

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mavrin/market-accounts/internal/domain"
)

// Preference defaults shared by every account kind. Kind-specific
// factories adjust individual settings after bundling.
const (
	defaultLanguage = "en"
	defaultTimezone = "UTC"
	defaultCurrency = "USD"
	defaultTheme    = "light"
)

// ProfileBundle groups the four companion records every account carries
// regardless of kind.
type ProfileBundle struct {
	Contact     *domain.ContactProfile
	Preferences *domain.Preferences
	Analytics   *domain.Analytics
	Business    *domain.BusinessStatus
}

// BundleSeed carries the caller-supplied values the bundler folds into
// freshly created companion records.
type BundleSeed struct {
	FirstName string
	LastName  string
	Locale    string
}

// Bundler creates the kind-independent companion records. Ensure is
// get-or-create per record, so calling it twice for the same user
// yields the same row identities both times.
type Bundler struct{}

// NewBundler creates a profile bundler.
func NewBundler() *Bundler {
	return &Bundler{}
}

// Ensure makes sure exactly one of each companion record exists for the
// user and returns handles to all four.
func (b *Bundler) Ensure(ctx context.Context, tx TxRepository, user *domain.User, seed BundleSeed) (*ProfileBundle, error) {
	locale := seed.Locale
	if locale == "" {
		locale = defaultLanguage
	}

	contact := &domain.ContactProfile{
		UserID:    user.ID,
		FirstName: seed.FirstName,
		LastName:  seed.LastName,
	}
	if err := tx.GetOrCreateContactProfile(ctx, contact); err != nil {
		return nil, fmt.Errorf("ensure contact profile: %w", err)
	}

	prefs := &domain.Preferences{
		UserID:             user.ID,
		EmailNotifications: true,
		MarketingEmails:    true,
		PushNotifications:  true,
		Language:           locale,
		Timezone:           defaultTimezone,
		Currency:           defaultCurrency,
		Theme:              defaultTheme,
		ItemsPerPage:       20,
		ProfileVisibility:  "public",
		ShowOnlineStatus:   true,
	}
	if err := tx.GetOrCreatePreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("ensure preferences: %w", err)
	}

	analytics := &domain.Analytics{UserID: user.ID}
	if err := tx.GetOrCreateAnalytics(ctx, analytics); err != nil {
		return nil, fmt.Errorf("ensure analytics: %w", err)
	}

	business := &domain.BusinessStatus{
		UserID:           user.ID,
		AccountBalance:   "0.00",
		TotalSpent:       "0.00",
		ReferralEarnings: "0.00",
		ReferralCode:     newReferralCode(),
		Status:           domain.AccountStatusActive,
	}
	if err := tx.GetOrCreateBusinessStatus(ctx, business); err != nil {
		return nil, fmt.Errorf("ensure business status: %w", err)
	}

	return &ProfileBundle{
		Contact:     contact,
		Preferences: prefs,
		Analytics:   analytics,
		Business:    business,
	}, nil
}

// newReferralCode generates a short unique referral code.
func newReferralCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "REF-" + strings.ToUpper(raw[:12])
}
