package repositories

import (
	"context"

	"travel-gateway/helper"
	"travel-gateway/models"

	"gorm.io/gorm"
)

type DestinationRepository interface {
	Create(ctx context.Context, dest *models.DestinationTravel) error
	GetByID(ctx context.Context, id string) (*models.DestinationTravel, error)
	SaveWithOptions(ctx context.Context, dest *models.DestinationTravel, changes OptionChanges[models.ClientPriceOption], clearHighlights bool) error
	UpdateStatus(ctx context.Context, dest *models.DestinationTravel, id string, clearHighlights bool) error
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context) ([]models.DestinationTravel, error)
	ListHighlighted(ctx context.Context) ([]models.DestinationTravel, error)
	SearchTitle(ctx context.Context, term string, limit int) ([]models.DestinationTravel, error)
	List(ctx context.Context, filter models.ContentFilter, paging helper.Paging) ([]models.DestinationTravel, int64, error)
}

type destinationRepository struct {
	contentStore[models.DestinationTravel]
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{contentStore[models.DestinationTravel]{
		db:           db,
		preloads:     []string{"ClientPriceOptions"},
		titleColumns: []string{"tour_title"},
		children:     []childTable{{model: &models.ClientPriceOption{}, column: OwnerDestination}},
	}}
}

func (r *destinationRepository) SaveWithOptions(ctx context.Context, dest *models.DestinationTravel, changes OptionChanges[models.ClientPriceOption], clearHighlights bool) error {
	return saveWithOptions(r.db.WithContext(ctx), dest, OwnerDestination, dest.ID, changes, clearHighlights)
}

func (r *destinationRepository) List(ctx context.Context, f models.ContentFilter, paging helper.Paging) ([]models.DestinationTravel, int64, error) {
	return r.page(ctx, paging,
		WithContentStatus(f.Status),
		ContainsFold(f.Location, "location"),
		ContainsFold(f.Search, "tour_title"),
		PublishedDateRange(f.Status, f.StartDate, f.EndDate),
	)
}
