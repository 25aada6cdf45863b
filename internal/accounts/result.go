package accounts

import "github.com/mavrin/market-accounts/internal/domain"

// Attachment keys used on a Result. The four companion profiles go
// under fixed keys; the kind-specific profile goes under a kind-named
// key so callers never probe for "whichever profile happens to exist".
const (
	AttachmentContactProfile = "contact_profile"
	AttachmentPreferences    = "preferences"
	AttachmentAnalytics      = "analytics"
	AttachmentBusinessStatus = "business_status"
	AttachmentBuyerProfile   = "buyer_profile"
	AttachmentSellerProfile  = "seller_profile"
	AttachmentAdminProfile   = "admin_profile"
)

// Result markers reported by kind-specific post-processing.
const (
	MarkerVerificationRequired = "verification_required"
	MarkerPermissionsSet       = "permissions_set"
)

// Result is the success/failure envelope every creation call returns.
// It accumulates errors during construction and is treated as immutable
// once handed to the caller. User-input-shaped failures are always
// carried here, never raised.
type Result struct {
	user        *domain.User
	attachments map[string]any
	markers     map[string]bool
	errors      []string
	success     bool
}

// NewResult creates a result wrapping the given identity record.
// A nil user produces a result that can never report success.
func NewResult(user *domain.User) *Result {
	return &Result{
		user:        user,
		attachments: make(map[string]any),
		markers:     make(map[string]bool),
		success:     true,
	}
}

// AddError appends a display-ready message and clears the success flag
// in the same step, so the two can never disagree.
func (r *Result) AddError(msg string) {
	r.errors = append(r.errors, msg)
	r.success = false
}

// Successful reports whether account creation fully succeeded: the
// success flag is intact, no errors were collected, and an identity
// record was produced.
func (r *Result) Successful() bool {
	return r.success && len(r.errors) == 0 && r.user != nil
}

// User returns the created identity record, or nil on failure.
func (r *Result) User() *domain.User {
	return r.user
}

// Errors returns the collected error messages in the order they were
// added.
func (r *Result) Errors() []string {
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}

// SetAttachment records a created sub-object under its logical name.
func (r *Result) SetAttachment(key string, v any) {
	r.attachments[key] = v
}

// Attachment returns the sub-object stored under key.
func (r *Result) Attachment(key string) (any, bool) {
	v, ok := r.attachments[key]
	return v, ok
}

// Attachments returns a copy of the attachment map.
func (r *Result) Attachments() map[string]any {
	out := make(map[string]any, len(r.attachments))
	for k, v := range r.attachments {
		out[k] = v
	}
	return out
}

// SetMarker records a boolean configuration-completion marker.
func (r *Result) SetMarker(key string, v bool) {
	r.markers[key] = v
}

// Marker returns the marker stored under key, false when unset.
func (r *Result) Marker(key string) bool {
	return r.markers[key]
}

// Markers returns a copy of the marker map.
func (r *Result) Markers() map[string]bool {
	out := make(map[string]bool, len(r.markers))
	for k, v := range r.markers {
		out[k] = v
	}
	return out
}
