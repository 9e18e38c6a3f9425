package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() *JWTAuthService {
	return NewService(Config{
		SecretKey:  "test-secret",
		TokenTTL:   15 * time.Minute,
		BcryptCost: bcrypt.MinCost,
		Issuer:     "task-manager-test",
	})
}

func TestHashAndVerifyPassword(t *testing.T) {
	svc := newTestService()

	hash, err := svc.HashPassword("Sup3r$ecret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "Sup3r$ecret" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !svc.VerifyPassword("Sup3r$ecret", hash) {
		t.Error("expected matching password to verify")
	}
	if svc.VerifyPassword("wrong", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, err := svc.CreateAccessToken(userID, "alice@example.com")
	if err != nil {
		t.Fatalf("CreateAccessToken() error = %v", err)
	}

	claims, err := svc.DecodeToken(token)
	if err != nil {
		t.Fatalf("DecodeToken() error = %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("expected email in claims, got %s", claims.Email)
	}
}

func TestDecodeToken_Invalid(t *testing.T) {
	svc := newTestService()

	if _, err := svc.DecodeToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}

	other := NewService(Config{SecretKey: "different-secret", TokenTTL: time.Minute, BcryptCost: bcrypt.MinCost})
	token, err := other.CreateAccessToken(uuid.New(), "bob@example.com")
	if err != nil {
		t.Fatalf("CreateAccessToken() error = %v", err)
	}
	if _, err := svc.DecodeToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token signed with another key expected ErrInvalidToken, got %v", err)
	}
}

func TestDecodeToken_Expired(t *testing.T) {
	svc := NewService(Config{
		SecretKey:  "test-secret",
		TokenTTL:   -time.Minute,
		BcryptCost: bcrypt.MinCost,
	})

	token, err := svc.CreateAccessToken(uuid.New(), "alice@example.com")
	if err != nil {
		t.Fatalf("CreateAccessToken() error = %v", err)
	}
	if _, err := svc.DecodeToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "strong", password: "Str0ng!pass", want: true},
		{name: "too short", password: "S1!a", want: false},
		{name: "no uppercase", password: "weak1pass!", want: false},
		{name: "no lowercase", password: "WEAK1PASS!", want: false},
		{name: "no digit", password: "Weakpass!", want: false},
		{name: "no special character", password: "Weak1pass", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := svc.ValidatePasswordStrength(tt.password)
			if ok != tt.want {
				t.Errorf("ValidatePasswordStrength(%q) = %v (%s), want %v", tt.password, ok, msg, tt.want)
			}
			if !ok && msg == "" {
				t.Error("rejection must carry a message")
			}
		})
	}
}
