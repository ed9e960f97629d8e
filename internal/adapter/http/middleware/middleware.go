package middleware

import (
	"net/http"
	"strconv"
	"time"

	"fleet-edi-gateway/internal/core/ports"
	"fleet-edi-gateway/internal/metrics"
	"fleet-edi-gateway/pkg/apperror"
	"fleet-edi-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderPartnerToken carries the raw partner token on EDI requests.
	HeaderPartnerToken = "X-Partner-Token"

	// Context keys
	CtxMerchantID     = "merchant_id"
	CtxPartnerTokenID = "partner_token_id"
	CtxAdminSubject   = "admin_subject"
)

// AdminAuth validates the admin JWT on Authorization: Bearer and requires
// the admin role. All failures return the same 403; the response must not
// reveal whether a resource exists.
func AdminAuth(verifier ports.AdminTokenVerifier, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrAdminRequired())
			c.Abort()
			return
		}

		claims, err := verifier.Verify(authHeader[7:])
		if err != nil {
			log.Debug().Err(err).Msg("admin token rejected")
			response.Error(c, apperror.ErrAdminRequired())
			c.Abort()
			return
		}
		if claims.Role != "admin" {
			response.Error(c, apperror.ErrAdminRequired())
			c.Abort()
			return
		}

		c.Set(CtxAdminSubject, claims.Subject)
		c.Next()
	}
}

// PartnerAuth validates the partner token on EDI routes and attaches the
// bound merchant id to the request context. Flows downstream must take the
// merchant from here, never from a request body.
func PartnerAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderPartnerToken)
		if raw == "" {
			response.Error(c, apperror.ErrInvalidPartnerToken())
			c.Abort()
			return
		}

		token, err := tokenSvc.Authenticate(c.Request.Context(), raw)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(CtxMerchantID, token.MerchantID)
		c.Set(CtxPartnerTokenID, token.ID)
		c.Next()
	}
}

// RequestLogger logs every HTTP request and feeds the request counter.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"status":  "error",
					"message": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits the request body size.
func MaxBodySize(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
