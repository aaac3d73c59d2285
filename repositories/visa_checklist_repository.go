package repositories

import (
	"context"

	"travel-gateway/helper"
	"travel-gateway/models"

	"gorm.io/gorm"
)

type VisaChecklistRepository interface {
	Create(ctx context.Context, checklist *models.VisaChecklist) error
	GetByID(ctx context.Context, id string) (*models.VisaChecklist, error)
	SaveWithOptions(ctx context.Context, checklist *models.VisaChecklist, changes OptionChanges[models.VisaPriceOption], clearHighlights bool) error
	UpdateStatus(ctx context.Context, checklist *models.VisaChecklist, id string, clearHighlights bool) error
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context) ([]models.VisaChecklist, error)
	FirstHighlighted(ctx context.Context) (*models.VisaChecklist, error)
	SearchTitle(ctx context.Context, term string, limit int) ([]models.VisaChecklist, error)
	List(ctx context.Context, filter models.ContentFilter, paging helper.Paging) ([]models.VisaChecklist, int64, error)
}

type visaChecklistRepository struct {
	contentStore[models.VisaChecklist]
}

func NewVisaChecklistRepository(db *gorm.DB) VisaChecklistRepository {
	return &visaChecklistRepository{contentStore[models.VisaChecklist]{
		db:           db,
		preloads:     []string{"VisaPriceOptions"},
		titleColumns: []string{"country", "location"},
		children:     []childTable{{model: &models.VisaPriceOption{}, column: OwnerVisaChecklist}},
	}}
}

func (r *visaChecklistRepository) SaveWithOptions(ctx context.Context, checklist *models.VisaChecklist, changes OptionChanges[models.VisaPriceOption], clearHighlights bool) error {
	return saveWithOptions(r.db.WithContext(ctx), checklist, OwnerVisaChecklist, checklist.ID, changes, clearHighlights)
}

func (r *visaChecklistRepository) List(ctx context.Context, f models.ContentFilter, paging helper.Paging) ([]models.VisaChecklist, int64, error) {
	return r.page(ctx, paging,
		WithContentStatus(f.Status),
		ContainsFold(f.Country, "country"),
		ContainsFold(f.Location, "location"),
		ContainsFold(f.Search, "country", "location"),
		PublishedDateRange(f.Status, f.StartDate, f.EndDate),
	)
}
