package repository

import (
	"context"
	"time"

	"github.com/eder5on/Estoque/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
	List(ctx context.Context, includeInactive bool) ([]model.User, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *userRepo) Update(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepo) List(ctx context.Context, includeInactive bool) ([]model.User, error) {
	q := r.db.WithContext(ctx).Model(&model.User{})
	if !includeInactive {
		q = q.Where("is_active = true")
	}
	var users []model.User
	err := q.Order("name ASC").Find(&users).Error
	return users, err
}

func (r *userRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *userRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Update("last_login", time.Now().UTC()).Error
}

// APIKeyRepository validates integration keys from the x-api-key header.
type APIKeyRepository interface {
	Create(ctx context.Context, k *model.APIKey) error
	FindActiveByKey(ctx context.Context, key string) (*model.APIKey, error)
	TouchLastUsed(ctx context.Context, id uuid.UUID) error
}

type apiKeyRepo struct{ db *gorm.DB }

func NewAPIKeyRepository(db *gorm.DB) APIKeyRepository { return &apiKeyRepo{db: db} }

func (r *apiKeyRepo) Create(ctx context.Context, k *model.APIKey) error {
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *apiKeyRepo) FindActiveByKey(ctx context.Context, key string) (*model.APIKey, error) {
	var k model.APIKey
	err := r.db.WithContext(ctx).Where("key = ? AND is_active = true", key).First(&k).Error
	return &k, err
}

func (r *apiKeyRepo) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.APIKey{}).Where("id = ?", id).
		Update("last_used_at", time.Now().UTC()).Error
}
