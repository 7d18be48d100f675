package google

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimBoolAcceptsGoogleStringForm(t *testing.T) {
	// The tokeninfo endpoint reports email_verified as the string "true".
	assert.True(t, claimBool(map[string]interface{}{"email_verified": "true"}, "email_verified"))
	assert.False(t, claimBool(map[string]interface{}{"email_verified": "false"}, "email_verified"))
	assert.True(t, claimBool(map[string]interface{}{"email_verified": true}, "email_verified"))
	assert.False(t, claimBool(map[string]interface{}{}, "email_verified"))
}

func TestClaimString(t *testing.T) {
	claims := map[string]interface{}{"email": "test@email.com", "aud": 42}
	assert.Equal(t, "test@email.com", claimString(claims, "email"))
	assert.Empty(t, claimString(claims, "aud"), "non-string claims read as empty")
	assert.Empty(t, claimString(claims, "missing"))
}

func TestGetUserProfileRejectsMalformedToken(t *testing.T) {
	svc := NewService("client-id", "client-secret")

	_, err := svc.GetUserProfile(context.Background(), "not-a-jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenValidation)
}
