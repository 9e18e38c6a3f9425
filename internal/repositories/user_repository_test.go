package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"task-manager.com/task-manager/internal/domain"
)

func mustNewUser(t *testing.T, email, username string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(email, username, "$2a$04$fakehashforrepositorytests")
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	return user
}

func TestUserRepository_SaveAndFindByID(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := mustNewUser(t, "alice@example.com", "alice")
	if _, err := repo.Save(ctx, user); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	found, err := repo.FindByID(ctx, user.ID())
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found == nil {
		t.Fatal("expected user, got nil")
	}
	if found.Email() != "alice@example.com" || found.Username() != "alice" {
		t.Errorf("loaded user does not match: %q %q", found.Email(), found.Username())
	}
	if !found.IsActive() || found.IsVerified() {
		t.Error("expected active, unverified user")
	}
	if found.HashedPassword() != user.HashedPassword() {
		t.Error("password hash changed across save")
	}
}

func TestUserRepository_SaveUpdatesExisting(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := mustNewUser(t, "bob@example.com", "bob")
	if _, err := repo.Save(ctx, user); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	user.Verify()
	if err := user.RecordLogin(); err != nil {
		t.Fatalf("RecordLogin() error = %v", err)
	}
	if _, err := repo.Save(ctx, user); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	found, err := repo.FindByID(ctx, user.ID())
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !found.IsVerified() {
		t.Error("expected verified user after update")
	}
	if !found.HasLoggedIn() {
		t.Error("expected last_login to be persisted")
	}
}

func TestUserRepository_FindByEmailAndUsername(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := mustNewUser(t, "carol@example.com", "carol")
	if _, err := repo.Save(ctx, user); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	byEmail, err := repo.FindByEmail(ctx, "carol@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if byEmail == nil || byEmail.ID() != user.ID() {
		t.Error("FindByEmail did not return the saved user")
	}

	byUsername, err := repo.FindByUsername(ctx, "carol")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if byUsername == nil || byUsername.ID() != user.ID() {
		t.Error("FindByUsername did not return the saved user")
	}

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("FindByEmail(missing) error = %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown email")
	}
}

func TestUserRepository_Exists(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := mustNewUser(t, "dave@example.com", "dave")
	if _, err := repo.Save(ctx, user); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if ok, err := repo.ExistsByEmail(ctx, "dave@example.com"); err != nil || !ok {
		t.Errorf("ExistsByEmail() = %v, %v; want true", ok, err)
	}
	if ok, err := repo.ExistsByEmail(ctx, "other@example.com"); err != nil || ok {
		t.Errorf("ExistsByEmail(unknown) = %v, %v; want false", ok, err)
	}
	if ok, err := repo.ExistsByUsername(ctx, "dave"); err != nil || !ok {
		t.Errorf("ExistsByUsername() = %v, %v; want true", ok, err)
	}
	if ok, err := repo.ExistsByUsername(ctx, "other"); err != nil || ok {
		t.Errorf("ExistsByUsername(unknown) = %v, %v; want false", ok, err)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := mustNewUser(t, "erin@example.com", "erin")
	if _, err := repo.Save(ctx, user); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	deleted, err := repo.Delete(ctx, user.ID())
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !deleted {
		t.Error("expected delete to report a removed row")
	}

	deleted, err = repo.Delete(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Delete(missing) error = %v", err)
	}
	if deleted {
		t.Error("deleting a missing user must report false")
	}
}
