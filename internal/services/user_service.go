package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"task-manager.com/task-manager/internal/auth"
	dto "task-manager.com/task-manager/internal/data_models"
	"task-manager.com/task-manager/internal/domain"
	apperrors "task-manager.com/task-manager/internal/errors"
	repository "task-manager.com/task-manager/internal/repositories"
)

// UserService carries the account use cases: registration, login and
// current-user lookup.
type UserService struct {
	repo repository.UserRepository
	auth auth.Service
}

func NewUserService(repo repository.UserRepository, authService auth.Service) *UserService {
	return &UserService{repo: repo, auth: authService}
}

// Register creates an account. Both uniqueness checks run before any
// hashing, so a duplicate never costs a bcrypt round. Checks use the same
// normalization the entity applies, so case variants hit the taken path
// instead of the unique index.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrEmailTaken.Withf("email %s is already registered", email)
	}

	taken, err = s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrUsernameTaken.Withf("username %s is already taken", username)
	}

	if ok, msg := s.auth.ValidatePasswordStrength(req.Password); !ok {
		return nil, apperrors.Validationf("%s", msg)
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(email, username, hash)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(saved)
	return &resp, nil
}

// Login authenticates and issues an access token. Unknown email, inactive
// account and wrong password all return the same error.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.CanLogin() {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !s.auth.VerifyPassword(req.Password, user.HashedPassword()) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := user.RecordLogin(); err != nil {
		return nil, err
	}
	if _, err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.auth.CreateAccessToken(user.ID(), user.Email())
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.auth.AccessTokenTTL().Seconds()),
	}, nil
}

func (s *UserService) GetCurrentUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound.Withf("user with id %s not found", id)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}
