// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func signedToken(t *testing.T, exp *time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:  "runner@example.com",
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	if exp != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*exp)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("api-secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

func TestBearerHeader(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"token", "abc.def.ghi", "Bearer abc.def.ghi"},
		{"logged out", "", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BearerHeader(tt.token); got != tt.expected {
				t.Errorf("BearerHeader() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseBearer(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc", "abc", false},
		{"round trip", BearerHeader("xyz"), "xyz", false},
		{"missing prefix", "abc", "", true},
		{"empty token", "Bearer ", "", true},
		{"basic auth", "Basic dXNlcjpwYXNz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearer(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBearer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidToken {
				t.Errorf("ParseBearer() error = %v, want %v", err, ErrInvalidToken)
			}
			if got != tt.want {
				t.Errorf("ParseBearer() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := signedToken(t, &exp)

	got, err := TokenExpiry(token)
	if err != nil {
		t.Fatalf("TokenExpiry() error = %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("TokenExpiry() = %v, want %v", got, exp)
	}
}

func TestTokenExpiry_Errors(t *testing.T) {
	if _, err := TokenExpiry("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}

	noExp := signedToken(t, nil)
	if _, err := TokenExpiry(noExp); err != ErrNoExpiry {
		t.Errorf("Expected ErrNoExpiry, got %v", err)
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"expired", signedToken(t, &past), true},
		{"live", signedToken(t, &future), false},
		{"no expiry", signedToken(t, nil), false},
		{"opaque token", "opaque-session-id", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expired(tt.token, now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}
