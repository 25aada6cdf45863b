package accounts

import (
	"context"
	"testing"

	"github.com/mavrin/market-accounts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateAccount(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	service := NewService(NewDefaultRegistry(repo))

	// Act
	result, err := service.CreateAccount(context.Background(), domain.KindBuyer, buyerFields())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Successful())
	assert.Equal(t, domain.KindBuyer, result.User().Kind)
}

func TestService_CreateAccount_UnsupportedKind(t *testing.T) {
	// An unregistered kind is a configuration fault, not a result error
	repo := newMockRepository()
	service := NewService(NewDefaultRegistry(repo))

	result, err := service.CreateAccount(context.Background(), "vendor", buyerFields())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestService_CreateAccount_FailureIsNotAnError(t *testing.T) {
	repo := newMockRepository()
	service := NewService(NewDefaultRegistry(repo))

	fields := buyerFields()
	delete(fields, "password")
	result, err := service.CreateAccount(context.Background(), domain.KindBuyer, fields)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Successful())
	assert.NotEmpty(t, result.Errors())
}

// A kind registered at runtime is immediately creatable and leaves the
// built-in factories untouched.
func TestService_RuntimeRegisteredKind(t *testing.T) {
	repo := newMockRepository()
	registry := NewDefaultRegistry(repo)
	registry.Register("moderator", &stubFactory{kind: "moderator"})
	service := NewService(registry)

	result, err := service.CreateAccount(context.Background(), "moderator", buyerFields())
	require.NoError(t, err)
	assert.True(t, result.Successful())
	assert.Equal(t, domain.AccountKind("moderator"), result.User().Kind)

	buyer, err := service.CreateAccount(context.Background(), domain.KindBuyer, buyerFields())
	require.NoError(t, err)
	assert.True(t, buyer.Successful())
}

func TestService_SupportedKinds(t *testing.T) {
	repo := newMockRepository()
	service := NewService(NewDefaultRegistry(repo))

	kinds := service.SupportedKinds()

	assert.Equal(t, []domain.AccountKind{
		domain.KindAdmin, domain.KindBuyer, domain.KindSeller,
	}, kinds)
}
