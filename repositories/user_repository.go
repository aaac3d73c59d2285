package repositories

import (
	"context"
	"strings"

	"travel-gateway/helper"
	"travel-gateway/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

type SubscriberRepository interface {
	Create(ctx context.Context, sub *models.EmailSubscriber) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, paging helper.Paging) ([]models.EmailSubscriber, int64, error)
	Search(ctx context.Context, term string, limit int) ([]models.EmailSubscriber, error)
}

type subscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(ctx context.Context, sub *models.EmailSubscriber) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EmailSubscriber{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *subscriberRepository) List(ctx context.Context, paging helper.Paging) ([]models.EmailSubscriber, int64, error) {
	return findPage[models.EmailSubscriber](r.db.WithContext(ctx), nil, paging, "created_at desc")
}

func (r *subscriberRepository) Search(ctx context.Context, term string, limit int) ([]models.EmailSubscriber, error) {
	subs := make([]models.EmailSubscriber, 0)
	err := r.db.WithContext(ctx).
		Scopes(ContainsFold(term, "email")).
		Order("created_at desc").
		Limit(limit).
		Find(&subs).Error
	return subs, err
}
