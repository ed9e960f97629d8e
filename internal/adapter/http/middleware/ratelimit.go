package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "fleet-edi-gateway/internal/adapter/storage/redis"
	"fleet-edi-gateway/internal/core/domain"
	"fleet-edi-gateway/pkg/apperror"
	"fleet-edi-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the rate limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"edi_orders": {Limit: 60, Window: time.Minute},
		"edi_status": {Limit: 120, Window: time.Minute},
		"admin":      {Limit: 60, Window: time.Minute},
		"wallets":    {Limit: 60, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := extractIdentifier(c)
		key := fmt.Sprintf("%s:%s", identifier, group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier determines the rate limit key source: the partner
// token's public prefix for EDI routes, the client IP otherwise. The raw
// token carries the secret and must never become redis key material.
func extractIdentifier(c *gin.Context) string {
	if raw := c.GetHeader(HeaderPartnerToken); raw != "" {
		if prefix, _, err := domain.SplitRawToken(raw); err == nil {
			return "pt:" + prefix
		}
	}
	return c.ClientIP()
}
