// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidToken = errors.New("invalid token format")
	ErrNoExpiry     = errors.New("token has no expiry")
)

const bearerPrefix = "Bearer "

// BearerHeader builds the Authorization header value for a token.
// An empty token still yields "Bearer " so the API decides how to reject it.
func BearerHeader(token string) string {
	return bearerPrefix + token
}

// ParseBearer extracts the token from an Authorization header value
func ParseBearer(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrInvalidToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The signing key belongs to the external API; this is only used to tell the
// user when their session runs out.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// Expired reports whether the token's exp claim is before now.
// Tokens without a readable expiry are treated as live.
func Expired(token string, now time.Time) bool {
	exp, err := TokenExpiry(token)
	if err != nil {
		return false
	}
	return now.After(exp)
}
