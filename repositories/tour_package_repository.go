package repositories

import (
	"context"

	"travel-gateway/helper"
	"travel-gateway/models"

	"gorm.io/gorm"
)

type TourPackageRepository interface {
	Create(ctx context.Context, tour *models.TourPackage) error
	GetByID(ctx context.Context, id string) (*models.TourPackage, error)
	SaveWithOptions(ctx context.Context, tour *models.TourPackage, changes OptionChanges[models.ClientPriceOption], clearHighlights bool) error
	UpdateStatus(ctx context.Context, tour *models.TourPackage, id string, clearHighlights bool) error
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context) ([]models.TourPackage, error)
	ListHighlighted(ctx context.Context) ([]models.TourPackage, error)
	SearchTitle(ctx context.Context, term string, limit int) ([]models.TourPackage, error)
	List(ctx context.Context, filter models.ContentFilter, paging helper.Paging) ([]models.TourPackage, int64, error)
	CountByTourType(ctx context.Context, tourTypeID string) (int64, error)
}

type tourPackageRepository struct {
	contentStore[models.TourPackage]
}

func NewTourPackageRepository(db *gorm.DB) TourPackageRepository {
	return &tourPackageRepository{contentStore[models.TourPackage]{
		db:           db,
		preloads:     []string{"TourType", "ClientPriceOptions"},
		titleColumns: []string{"tour_title"},
		children:     []childTable{{model: &models.ClientPriceOption{}, column: OwnerTourPackage}},
	}}
}

func (r *tourPackageRepository) SaveWithOptions(ctx context.Context, tour *models.TourPackage, changes OptionChanges[models.ClientPriceOption], clearHighlights bool) error {
	return saveWithOptions(r.db.WithContext(ctx), tour, OwnerTourPackage, tour.ID, changes, clearHighlights)
}

func (r *tourPackageRepository) List(ctx context.Context, f models.ContentFilter, paging helper.Paging) ([]models.TourPackage, int64, error) {
	return r.page(ctx, paging,
		WithContentStatus(f.Status),
		WhereIf("tour_type_id", f.TourTypeID),
		ContainsFold(f.Location, "location"),
		ContainsFold(f.Search, "tour_title"),
		PublishedDateRange(f.Status, f.StartDate, f.EndDate),
	)
}

func (r *tourPackageRepository) CountByTourType(ctx context.Context, tourTypeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TourPackage{}).Where("tour_type_id = ?", tourTypeID).Count(&count).Error
	return count, err
}
