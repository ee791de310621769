// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestNewID(t *testing.T) {
	id := NewID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("NewID() = %q is not a UUID: %v", id, err)
	}

	// Test randomness - two IDs should be different
	if NewID() == NewID() {
		t.Error("NewID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateAPIKey(t *testing.T) {
	keys := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := GenerateAPIKey()
		if key == "" {
			t.Fatal("GenerateAPIKey() returned empty string")
		}
		if keys[key] {
			t.Errorf("GenerateAPIKey() produced duplicate key: %s", key)
		}
		keys[key] = true
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "password123" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"correct password", "password123", false},
		{"wrong password", "password124", true},
		{"empty password", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(hash, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidPassword {
				t.Errorf("CheckPassword() error = %v, want %v", err, ErrInvalidPassword)
			}
		})
	}
}

func TestParseToken(t *testing.T) {
	secret := []byte("test-secret")

	valid, err := IssueToken("user-1", "Employee", secret, "", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	withIssuer, _ := IssueToken("user-1", "Admin", secret, "lunch-decider", time.Hour)
	expired, _ := IssueToken("user-1", "Employee", secret, "", -time.Hour)
	noSubject, _ := IssueToken("", "Employee", secret, "", time.Hour)
	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "user-1"}).SignedString(secret)

	tests := []struct {
		name    string
		token   string
		secret  []byte
		issuer  string
		wantSub string
		wantErr bool
	}{
		{"valid token", valid, secret, "", "user-1", false},
		{"matching issuer", withIssuer, secret, "lunch-decider", "user-1", false},
		{"issuer required but missing", valid, secret, "lunch-decider", "", true},
		{"wrong secret", valid, []byte("other"), "", "", true},
		{"no secret configured", valid, nil, "", "", true},
		{"expired", expired, secret, "", "", true},
		{"missing subject", noSubject, secret, "", "", true},
		{"wrong algorithm", hs512, secret, "", "", true},
		{"garbage", "not.a.token", secret, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseToken(tt.token, tt.secret, tt.issuer)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidToken) {
					t.Errorf("ParseToken() error = %v, want ErrInvalidToken", err)
				}
				return
			}
			if claims.Subject != tt.wantSub {
				t.Errorf("Subject = %q, want %q", claims.Subject, tt.wantSub)
			}
		})
	}
}

func TestIssueToken_CarriesRole(t *testing.T) {
	secret := []byte("test-secret")
	token, err := IssueToken("admin-1", "Admin", secret, "", time.Minute)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	claims, err := ParseToken(token, secret, "")
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.Role != "Admin" {
		t.Errorf("Role = %q, want Admin", claims.Role)
	}
}
