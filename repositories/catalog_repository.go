package repositories

import (
	"context"

	"travel-gateway/models"

	"gorm.io/gorm"
)

type BlogTagRepository interface {
	Create(ctx context.Context, tag *models.BlogTag) error
	GetByID(ctx context.Context, id string) (*models.BlogTag, error)
	GetByName(ctx context.Context, name string) (*models.BlogTag, error)
	GetAll(ctx context.Context) ([]models.BlogTag, error)
	Update(ctx context.Context, tag *models.BlogTag) error
	Delete(ctx context.Context, id string) error
}

type blogTagRepository struct {
	db *gorm.DB
}

func NewBlogTagRepository(db *gorm.DB) BlogTagRepository {
	return &blogTagRepository{db: db}
}

func (r *blogTagRepository) Create(ctx context.Context, tag *models.BlogTag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *blogTagRepository) GetByID(ctx context.Context, id string) (*models.BlogTag, error) {
	var tag models.BlogTag
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByName matches names case-insensitively.
func (r *blogTagRepository) GetByName(ctx context.Context, name string) (*models.BlogTag, error) {
	var tag models.BlogTag
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *blogTagRepository) GetAll(ctx context.Context) ([]models.BlogTag, error) {
	tags := make([]models.BlogTag, 0)
	err := r.db.WithContext(ctx).Order("name asc").Find(&tags).Error
	return tags, err
}

func (r *blogTagRepository) Update(ctx context.Context, tag *models.BlogTag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

func (r *blogTagRepository) Delete(ctx context.Context, id string) error {
	return deleteByID[models.BlogTag](r.db.WithContext(ctx), id)
}

type TourTypeRepository interface {
	Create(ctx context.Context, tourType *models.TourType) error
	GetByID(ctx context.Context, id string) (*models.TourType, error)
	GetByName(ctx context.Context, name string) (*models.TourType, error)
	GetAll(ctx context.Context) ([]models.TourType, error)
	Update(ctx context.Context, tourType *models.TourType) error
	Delete(ctx context.Context, id string) error
}

type tourTypeRepository struct {
	db *gorm.DB
}

func NewTourTypeRepository(db *gorm.DB) TourTypeRepository {
	return &tourTypeRepository{db: db}
}

func (r *tourTypeRepository) Create(ctx context.Context, tourType *models.TourType) error {
	return r.db.WithContext(ctx).Create(tourType).Error
}

func (r *tourTypeRepository) GetByID(ctx context.Context, id string) (*models.TourType, error) {
	var tourType models.TourType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tourType).Error; err != nil {
		return nil, err
	}
	return &tourType, nil
}

func (r *tourTypeRepository) GetByName(ctx context.Context, name string) (*models.TourType, error) {
	var tourType models.TourType
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&tourType).Error; err != nil {
		return nil, err
	}
	return &tourType, nil
}

func (r *tourTypeRepository) GetAll(ctx context.Context) ([]models.TourType, error) {
	types := make([]models.TourType, 0)
	err := r.db.WithContext(ctx).Order("name asc").Find(&types).Error
	return types, err
}

func (r *tourTypeRepository) Update(ctx context.Context, tourType *models.TourType) error {
	return r.db.WithContext(ctx).Save(tourType).Error
}

// Delete detaches the type from its tour packages before removing it.
func (r *tourTypeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.TourPackage{}).Where("tour_type_id = ?", id).Update("tour_type_id", nil).Error
		if err != nil {
			return err
		}
		return deleteByID[models.TourType](tx, id)
	})
}
