package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"task-manager.com/task-manager/internal/domain"
)

// UserRepository is the persistence port the user use cases depend on.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type UserRecord struct {
	ID             string    `gorm:"primaryKey;size:36"`
	Email          string    `gorm:"size:255;not null;uniqueIndex"`
	Username       string    `gorm:"size:50;not null;uniqueIndex"`
	HashedPassword string    `gorm:"not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	IsVerified     bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
	LastLogin      *time.Time
}

func (UserRecord) TableName() string {
	return "users"
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	rec := userToRecord(user)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id.String())
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&UserRecord{}, "id = ?", id.String())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormUserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var rec UserRecord
	err := r.db.WithContext(ctx).First(&rec, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return userFromRecord(&rec)
}

func (r *GormUserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&UserRecord{}).
		Where(query, arg).
		Count(&count).Error
	return count > 0, err
}

func userToRecord(user *domain.User) UserRecord {
	return UserRecord{
		ID:             user.ID().String(),
		Email:          user.Email(),
		Username:       user.Username(),
		HashedPassword: user.HashedPassword(),
		IsActive:       user.IsActive(),
		IsVerified:     user.IsVerified(),
		CreatedAt:      user.CreatedAt(),
		UpdatedAt:      user.UpdatedAt(),
		LastLogin:      user.LastLogin(),
	}
}

func userFromRecord(rec *UserRecord) (*domain.User, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, err
	}
	return domain.RehydrateUser(
		id,
		rec.Email,
		rec.Username,
		rec.HashedPassword,
		rec.IsActive,
		rec.IsVerified,
		rec.CreatedAt,
		rec.UpdatedAt,
		rec.LastLogin,
	), nil
}
