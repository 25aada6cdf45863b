package domain

import "time"

// Shipping methods accepted on a buyer profile.
const (
	ShippingStandard  = "standard"
	ShippingExpress   = "express"
	ShippingOvernight = "overnight"
)

// BuyerProfile is the kind-specific record for buyer accounts.
type BuyerProfile struct {
	ID                      string    `json:"id"`
	UserID                  string    `json:"user_id"`
	PreferredShippingMethod string    `json:"preferred_shipping_method"`
	NewsletterSubscription  bool      `json:"newsletter_subscription"`
	DealNotifications       bool      `json:"deal_notifications"`
	ProductRecommendations  bool      `json:"product_recommendations"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// SellerProfile is the kind-specific record for seller accounts.
// CanSell stays false until the account passes verification.
type SellerProfile struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	BusinessName     string    `json:"business_name"`
	BusinessType     string    `json:"business_type"`
	TaxID            string    `json:"tax_id"`
	BusinessAddress  string    `json:"business_address"`
	StoreName        string    `json:"store_name"`
	StoreDescription string    `json:"store_description"`
	CommissionRate   float64   `json:"commission_rate"`
	CanSell          bool      `json:"can_sell"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AdminProfile is the kind-specific record for admin accounts.
type AdminProfile struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	AdminLevel            string    `json:"admin_level"`
	CanManageUsers        bool      `json:"can_manage_users"`
	CanManageProducts     bool      `json:"can_manage_products"`
	CanManageOrders       bool      `json:"can_manage_orders"`
	CanManagePayments     bool      `json:"can_manage_payments"`
	CanViewAnalytics      bool      `json:"can_view_analytics"`
	CanManageSystem       bool      `json:"can_manage_system"`
	Department            string    `json:"department"`
	RoleDescription       string    `json:"role_description"`
	Require2FA            bool      `json:"require_2fa"`
	SessionTimeoutMinutes int       `json:"session_timeout_minutes"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
