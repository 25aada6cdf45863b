package accounts

import (
	"testing"

	"github.com/mavrin/market-accounts/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResult_SuccessfulRequiresAllThree(t *testing.T) {
	user := &domain.User{ID: "u1"}

	fresh := NewResult(user)
	assert.True(t, fresh.Successful())

	// Any recorded error clears success permanently
	withError := NewResult(user)
	withError.AddError("boom")
	assert.False(t, withError.Successful())
	assert.Equal(t, []string{"boom"}, withError.Errors())

	// No identity record means no success either
	noUser := NewResult(nil)
	assert.False(t, noUser.Successful())
	assert.Empty(t, noUser.Errors())
}

func TestResult_ErrorsAccumulateInOrder(t *testing.T) {
	result := NewResult(&domain.User{ID: "u1"})

	result.AddError("first")
	result.AddError("second")

	assert.Equal(t, []string{"first", "second"}, result.Errors())
	assert.False(t, result.Successful())
}

func TestResult_AttachmentsAndMarkers(t *testing.T) {
	result := NewResult(&domain.User{ID: "u1"})
	profile := &domain.BuyerProfile{UserID: "u1"}

	result.SetAttachment(AttachmentBuyerProfile, profile)
	result.SetMarker(MarkerVerificationRequired, true)

	got, ok := result.Attachment(AttachmentBuyerProfile)
	assert.True(t, ok)
	assert.Same(t, profile, got)

	_, ok = result.Attachment(AttachmentSellerProfile)
	assert.False(t, ok)

	assert.True(t, result.Marker(MarkerVerificationRequired))
	assert.False(t, result.Marker(MarkerPermissionsSet))
}

func TestResult_CopiesAreDetached(t *testing.T) {
	result := NewResult(&domain.User{ID: "u1"})
	result.SetAttachment("a", 1)
	result.SetMarker("m", true)
	result.AddError("boom")

	// Mutating the returned maps and slice must not leak back
	attachments := result.Attachments()
	attachments["b"] = 2
	markers := result.Markers()
	markers["n"] = true
	errs := result.Errors()
	errs[0] = "changed"

	_, ok := result.Attachment("b")
	assert.False(t, ok)
	assert.False(t, result.Marker("n"))
	assert.Equal(t, []string{"boom"}, result.Errors())
}
