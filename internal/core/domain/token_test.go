package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAndSplitRawToken(t *testing.T) {
	raw := FormatRawToken("a1b2c3d4", "deadbeefdeadbeefdeadbeefdeadbeef")
	assert.Equal(t, "pt_a1b2c3d4_deadbeefdeadbeefdeadbeefdeadbeef", raw)

	prefix, secret, err := SplitRawToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4", prefix)
	assert.Equal(t, "deadbeefdeadbeefdeadbeefdeadbeef", secret)
}

func TestSplitRawToken_Malformed(t *testing.T) {
	cases := []string{
		"",
		"pt_onlyprefix",
		"pt__secret",
		"pt_prefix_",
		"xx_prefix_secret",
		"pt_prefix_secret_extra",
		"not a token",
	}
	for _, raw := range cases {
		_, _, err := SplitRawToken(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestPartnerToken_IsActive(t *testing.T) {
	now := time.Now()

	active := &PartnerToken{Active: true}
	assert.True(t, active.IsActive())

	revoked := &PartnerToken{Active: false, RevokedAt: &now}
	assert.False(t, revoked.IsActive())

	// Inconsistent row: revoked_at set wins over the flag.
	halfRevoked := &PartnerToken{Active: true, RevokedAt: &now}
	assert.False(t, halfRevoked.IsActive())
}
