package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mavrin/market-accounts/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Factory builds a complete account of one kind: the identity record,
// the four companion profiles, and the kind-specific profile, inside a
// single store transaction. CreateAccount never returns a Go error for
// user-input-shaped failures; they arrive as result errors instead.
type Factory interface {
	Kind() domain.AccountKind
	CreateAccount(ctx context.Context, fields Fields) *Result
}

// kindHooks is what a concrete factory contributes to the shared
// creation flow: the kind-specific profile and the settings it applies
// to the companion records afterwards.
type kindHooks interface {
	Kind() domain.AccountKind

	// createKindProfile builds the kind-specific record from the field
	// bag and returns the attachment key it should live under.
	createKindProfile(ctx context.Context, tx TxRepository, user *domain.User, fields Fields) (key string, profile any, err error)

	// configureKindSettings applies kind-specific side effects to the
	// companion records and reports completion markers for the result.
	configureKindSettings(ctx context.Context, tx TxRepository, user *domain.User, bundle *ProfileBundle, fields Fields) (map[string]bool, error)
}

// base carries the creation flow shared by all factories: required
// field validation, password hashing, and the transactional
// create-user / bundle / kind-profile / kind-settings sequence.
type base struct {
	repo    Repository
	bundler *Bundler
}

func newBase(repo Repository) base {
	return base{repo: repo, bundler: NewBundler()}
}

func (b *base) create(ctx context.Context, hooks kindHooks, fields Fields) *Result {
	kind := hooks.Kind()

	if err := requireFields(fields); err != nil {
		return failedResult(kind, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fields.String("password", "")), bcrypt.DefaultCost)
	if err != nil {
		return failedResult(kind, fmt.Errorf("hash password: %w", err))
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     fields.String("username", ""),
		Email:        fields.String("email", ""),
		PasswordHash: string(hash),
		Kind:         kind,
	}

	result := NewResult(user)

	err = b.repo.InTx(ctx, func(ctx context.Context, tx TxRepository) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return err
		}

		bundle, err := b.bundler.Ensure(ctx, tx, user, BundleSeed{
			FirstName: fields.String("first_name", ""),
			LastName:  fields.String("last_name", ""),
			Locale:    fields.Locale("language", defaultLanguage),
		})
		if err != nil {
			return err
		}
		result.SetAttachment(AttachmentContactProfile, bundle.Contact)
		result.SetAttachment(AttachmentPreferences, bundle.Preferences)
		result.SetAttachment(AttachmentAnalytics, bundle.Analytics)
		result.SetAttachment(AttachmentBusinessStatus, bundle.Business)

		key, profile, err := hooks.createKindProfile(ctx, tx, user, fields)
		if err != nil {
			return err
		}
		result.SetAttachment(key, profile)

		markers, err := hooks.configureKindSettings(ctx, tx, user, bundle, fields)
		if err != nil {
			return err
		}
		for k, v := range markers {
			result.SetMarker(k, v)
		}

		return nil
	})
	if err != nil {
		// The transaction rolled back: nothing was persisted, so the
		// result must not expose the identity record either.
		return failedResult(kind, err)
	}

	return result
}

// failedResult builds a result with no identity record and one
// display-ready error message.
func failedResult(kind domain.AccountKind, err error) *Result {
	result := NewResult(nil)
	result.AddError(fmt.Sprintf("failed to create %s account: %s", kind, failureReason(err)))
	return result
}

// failureReason maps store sentinels to their display text and falls
// back to the raw error for anything opaque.
func failureReason(err error) string {
	for _, sentinel := range []error{ErrEmailTaken, ErrUsernameTaken, ErrStoreUnavailable} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
