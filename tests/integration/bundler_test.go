//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mavrin/market-accounts/internal/accounts"
	accountspostgres "github.com/mavrin/market-accounts/internal/accounts/postgres"
	"github.com/mavrin/market-accounts/internal/domain"
	"github.com/mavrin/market-accounts/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bundling the same user twice must return the surviving rows, not
// create duplicates and not overwrite what the first pass stored.
func TestBundler_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := accountspostgres.NewRepository(testDB)
	bundler := accounts.NewBundler()

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     testutil.RandomUsername("bundle"),
		Email:        testutil.RandomEmail("bundle"),
		PasswordHash: "irrelevant",
		Kind:         domain.KindBuyer,
	}

	var first *accounts.ProfileBundle
	err := repo.InTx(ctx, func(ctx context.Context, tx accounts.TxRepository) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return err
		}
		bundle, err := bundler.Ensure(ctx, tx, user, accounts.BundleSeed{
			FirstName: "First",
			LastName:  "Pass",
			Locale:    "en",
		})
		first = bundle
		return err
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	// Second pass with a different seed: existing rows win.
	var second *accounts.ProfileBundle
	err = repo.InTx(ctx, func(ctx context.Context, tx accounts.TxRepository) error {
		bundle, err := bundler.Ensure(ctx, tx, user, accounts.BundleSeed{
			FirstName: "Second",
			LastName:  "Pass",
			Locale:    "de",
		})
		second = bundle
		return err
	})
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first.Contact.ID, second.Contact.ID)
	assert.Equal(t, first.Preferences.ID, second.Preferences.ID)
	assert.Equal(t, first.Analytics.ID, second.Analytics.ID)
	assert.Equal(t, first.Business.ID, second.Business.ID)

	assert.Equal(t, "First", second.Contact.FirstName)
	assert.Equal(t, "en", second.Preferences.Language)
	assert.Equal(t, first.Business.ReferralCode, second.Business.ReferralCode)

	// Exactly one row per companion table
	for _, table := range []string{"contact_profiles", "user_preferences", "user_analytics", "business_statuses"} {
		var n int
		err := testDB.QueryRow(ctx, "SELECT COUNT(*) FROM "+table+" WHERE user_id = $1", user.ID).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, table)
	}
}
