package service

import (
	"fmt"

	"fleet-edi-gateway/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAdminVerifier implements ports.AdminTokenVerifier for HS256 admin
// tokens issued by the internal identity system.
type JWTAdminVerifier struct {
	secret []byte
	issuer string
}

// NewJWTAdminVerifier creates an admin token verifier.
func NewJWTAdminVerifier(secret, issuer string) *JWTAdminVerifier {
	return &JWTAdminVerifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses and validates an admin JWT, returning its claims.
func (v *JWTAdminVerifier) Verify(tokenString string) (*ports.AdminClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if v.issuer != "" {
		iss, _ := claims["iss"].(string)
		if iss != v.issuer {
			return nil, fmt.Errorf("unexpected issuer")
		}
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)

	return &ports.AdminClaims{Subject: sub, Role: role}, nil
}
