package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PartnerToken is an opaque credential bound to exactly one merchant.
// Only the public prefix and the argon2id hash of the secret are persisted;
// the raw token is returned exactly once at issuance.
type PartnerToken struct {
	ID         uuid.UUID  `json:"id"`
	MerchantID int64      `json:"merchant_id"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	SecretHash string     `json:"-"` // Never expose
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
}

// IsActive reports whether the token may authenticate requests.
func (t *PartnerToken) IsActive() bool {
	return t.Active && t.RevokedAt == nil
}

// Raw token wire format: pt_{prefix}_{secret}.
const tokenScheme = "pt"

// FormatRawToken assembles the one-time raw token value.
func FormatRawToken(prefix, secret string) string {
	return fmt.Sprintf("%s_%s_%s", tokenScheme, prefix, secret)
}

// SplitRawToken parses a raw token into prefix and secret. It returns an
// error for anything that does not match the pt_{prefix}_{secret} shape.
func SplitRawToken(raw string) (prefix, secret string, err error) {
	parts := strings.Split(raw, "_")
	if len(parts) != 3 || parts[0] != tokenScheme || parts[1] == "" || parts[2] == "" {
		return "", "", fmt.Errorf("malformed partner token")
	}
	return parts[1], parts[2], nil
}
