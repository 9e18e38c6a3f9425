package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "task-manager.com/task-manager/internal/errors"
)

const (
	maxEmailLength    = 255
	minUsernameLength = 3
	maxUsernameLength = 50
)

// User is an account entity. Like Task, its state only changes through
// methods so the validation rules hold on every mutation.
type User struct {
	id             uuid.UUID
	email          string
	username       string
	hashedPassword string
	isActive       bool
	isVerified     bool
	createdAt      time.Time
	updatedAt      time.Time
	lastLogin      *time.Time
}

// NewUser builds an active, unverified user. Email and username are
// validated and normalized immediately.
func NewUser(email, username, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	u := &User{
		id:             uuid.New(),
		hashedPassword: hashedPassword,
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	if err := u.SetUsername(username); err != nil {
		return nil, err
	}
	return u, nil
}

// RehydrateUser reconstructs a user from persisted state without
// re-validating it.
func RehydrateUser(
	id uuid.UUID,
	email, username, hashedPassword string,
	isActive, isVerified bool,
	createdAt, updatedAt time.Time,
	lastLogin *time.Time,
) *User {
	return &User{
		id:             id,
		email:          email,
		username:       username,
		hashedPassword: hashedPassword,
		isActive:       isActive,
		isVerified:     isVerified,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		lastLogin:      lastLogin,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() string          { return u.email }
func (u *User) Username() string       { return u.username }
func (u *User) HashedPassword() string { return u.hashedPassword }
func (u *User) IsActive() bool         { return u.isActive }
func (u *User) IsVerified() bool       { return u.isVerified }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }
func (u *User) LastLogin() *time.Time  { return u.lastLogin }

// SetEmail validates, lowercases and sets the email.
func (u *User) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return apperrors.Validationf("email cannot be empty")
	}
	at := strings.Index(email, "@")
	if at < 0 || !strings.Contains(email[at+1:], ".") {
		return apperrors.Validationf("invalid email format")
	}
	if utf8.RuneCountInString(email) > maxEmailLength {
		return apperrors.Validationf("email cannot exceed %d characters", maxEmailLength)
	}
	u.email = email
	u.markUpdated()
	return nil
}

// SetUsername validates and sets the username.
func (u *User) SetUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return apperrors.Validationf("username cannot be empty")
	}
	if len(username) < minUsernameLength {
		return apperrors.Validationf("username must be at least %d characters", minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return apperrors.Validationf("username cannot exceed %d characters", maxUsernameLength)
	}
	for _, c := range username {
		if !isUsernameChar(c) {
			return apperrors.Validationf("username can only contain letters, numbers, hyphens and underscores")
		}
	}
	u.username = username
	u.markUpdated()
	return nil
}

// ChangePassword swaps in a new password hash. The hash is opaque here;
// hashing itself is the auth service's job.
func (u *User) ChangePassword(newHashedPassword string) error {
	if newHashedPassword == "" {
		return apperrors.Validationf("password hash cannot be empty")
	}
	u.hashedPassword = newHashedPassword
	u.markUpdated()
	return nil
}

// Activate enables the account. No-op (no timestamp bump) if already active.
func (u *User) Activate() {
	if u.isActive {
		return
	}
	u.isActive = true
	u.markUpdated()
}

// Deactivate disables the account. No-op if already inactive.
func (u *User) Deactivate() {
	if !u.isActive {
		return
	}
	u.isActive = false
	u.markUpdated()
}

// Verify marks the account as verified. No-op if already verified.
func (u *User) Verify() {
	if u.isVerified {
		return
	}
	u.isVerified = true
	u.markUpdated()
}

// RecordLogin stores the login time. Inactive users cannot log in.
func (u *User) RecordLogin() error {
	if !u.isActive {
		return apperrors.Validationf("cannot login as inactive user")
	}
	now := time.Now().UTC()
	u.lastLogin = &now
	u.markUpdated()
	return nil
}

func (u *User) CanLogin() bool {
	return u.isActive
}

func (u *User) NeedsVerification() bool {
	return !u.isVerified
}

func (u *User) HasLoggedIn() bool {
	return u.lastLogin != nil
}

func (u *User) markUpdated() {
	u.updatedAt = time.Now().UTC()
}

func isUsernameChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
