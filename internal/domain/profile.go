package domain

import "time"

// AccountStatus is the lifecycle state tracked on BusinessStatus.
type AccountStatus string

// Account statuses.
const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusPending   AccountStatus = "pending"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusClosed    AccountStatus = "closed"
)

// ContactProfile holds personal and contact information. One per user,
// created by the profile bundler regardless of account kind.
type ContactProfile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Bio         string    `json:"bio"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	PostalCode  string    `json:"postal_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FullName returns the display name composed from first and last name.
func (p *ContactProfile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Preferences holds notification, regional and display settings.
type Preferences struct {
	ID                     string    `json:"id"`
	UserID                 string    `json:"user_id"`
	EmailNotifications     bool      `json:"email_notifications"`
	SMSNotifications       bool      `json:"sms_notifications"`
	MarketingEmails        bool      `json:"marketing_emails"`
	NewsletterSubscription bool      `json:"newsletter_subscription"`
	PushNotifications      bool      `json:"push_notifications"`
	Language               string    `json:"language"`
	Timezone               string    `json:"timezone"`
	Currency               string    `json:"currency"`
	Theme                  string    `json:"theme"`
	ItemsPerPage           int       `json:"items_per_page"`
	ProfileVisibility      string    `json:"profile_visibility"`
	ShowOnlineStatus       bool      `json:"show_online_status"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Analytics holds usage counters. Created zeroed at registration and
// updated by tracking code elsewhere.
type Analytics struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	LoginCount     int        `json:"login_count"`
	ProfileViews   int        `json:"profile_views"`
	TotalSessions  int        `json:"total_sessions"`
	LastActivityAt *time.Time `json:"last_activity_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// BusinessStatus holds premium membership, balances, the referral chain
// and the account lifecycle status.
type BusinessStatus struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	IsPremium        bool          `json:"is_premium"`
	PremiumExpiresAt *time.Time    `json:"premium_expires_at"`
	AccountBalance   string        `json:"account_balance"`
	TotalSpent       string        `json:"total_spent"`
	ReferralCode     string        `json:"referral_code"`
	ReferredBy       *string       `json:"referred_by"`
	ReferralEarnings string        `json:"referral_earnings"`
	Status           AccountStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
