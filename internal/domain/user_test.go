package domain

import (
	"errors"
	"strings"
	"testing"

	apperrors "task-manager.com/task-manager/internal/errors"
)

func newTestUser(t *testing.T) *User {
	t.Helper()

	user, err := NewUser("alice@example.com", "alice", "$2a$12$fakehash")
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	return user
}

func TestNewUser_Defaults(t *testing.T) {
	user := newTestUser(t)

	if !user.IsActive() {
		t.Error("new user must be active")
	}
	if user.IsVerified() {
		t.Error("new user must not be verified")
	}
	if !user.NeedsVerification() {
		t.Error("unverified user needs verification")
	}
	if user.HasLoggedIn() {
		t.Error("new user has never logged in")
	}
}

func TestUser_SetEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		want    string
		wantErr bool
	}{
		{name: "valid", email: "bob@example.com", want: "bob@example.com"},
		{name: "normalized to lowercase", email: "  Bob@Example.COM ", want: "bob@example.com"},
		{name: "empty", email: "", wantErr: true},
		{name: "no at sign", email: "bobexample.com", wantErr: true},
		{name: "no dot in domain", email: "bob@example", wantErr: true},
		{name: "too long", email: strings.Repeat("a", 250) + "@example.com", wantErr: true},
		{name: "multibyte local part", email: "müller@example.com", want: "müller@example.com"},
		// 243 + len("@example.com") = 255 characters, the limit exactly
		{name: "multibyte at length limit", email: strings.Repeat("é", 243) + "@example.com", want: strings.Repeat("é", 243) + "@example.com"},
		{name: "multibyte over length limit", email: strings.Repeat("é", 244) + "@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := newTestUser(t)
			err := user.SetEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
			if !tt.wantErr && user.Email() != tt.want {
				t.Errorf("SetEmail(%q) stored %q, want %q", tt.email, user.Email(), tt.want)
			}
		})
	}
}

func TestUser_SetUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid", username: "alice_2-dev"},
		{name: "minimum length", username: "abc"},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: strings.Repeat("a", 51), wantErr: true},
		{name: "illegal characters", username: "alice!", wantErr: true},
		{name: "spaces", username: "alice smith", wantErr: true},
		{name: "empty", username: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := newTestUser(t)
			err := user.SetUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUser_ChangePassword(t *testing.T) {
	user := newTestUser(t)

	if err := user.ChangePassword(""); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("empty hash expected validation error, got %v", err)
	}
	if err := user.ChangePassword("$2a$12$otherhash"); err != nil {
		t.Errorf("ChangePassword() error = %v", err)
	}
	if user.HashedPassword() != "$2a$12$otherhash" {
		t.Error("expected new hash stored")
	}
}

func TestUser_ActivateDeactivateVerify(t *testing.T) {
	user := newTestUser(t)

	// no-op in the target state leaves the timestamp alone
	updatedAt := user.UpdatedAt()
	user.Activate()
	if !user.UpdatedAt().Equal(updatedAt) {
		t.Error("activating an active user must not advance updated_at")
	}

	user.Deactivate()
	if user.IsActive() {
		t.Error("expected user deactivated")
	}
	if user.CanLogin() {
		t.Error("deactivated user cannot login")
	}

	user.Verify()
	if !user.IsVerified() {
		t.Error("expected user verified")
	}
	updatedAt = user.UpdatedAt()
	user.Verify()
	if !user.UpdatedAt().Equal(updatedAt) {
		t.Error("verifying a verified user must not advance updated_at")
	}
}

func TestUser_RecordLogin(t *testing.T) {
	user := newTestUser(t)

	if err := user.RecordLogin(); err != nil {
		t.Fatalf("RecordLogin() error = %v", err)
	}
	if !user.HasLoggedIn() {
		t.Error("expected last_login set")
	}

	user.Deactivate()
	if err := user.RecordLogin(); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("RecordLogin() on inactive expected validation error, got %v", err)
	}
}
