package repositories

import (
	"context"

	"travel-gateway/helper"
	"travel-gateway/models"

	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	Save(ctx context.Context, blog *models.Blog, id string, clearHighlights bool) error
	UpdateStatus(ctx context.Context, blog *models.Blog, id string, clearHighlights bool) error
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context) ([]models.Blog, error)
	ListByStatus(ctx context.Context, status models.ContentStatus) ([]models.Blog, error)
	FirstHighlighted(ctx context.Context) (*models.Blog, error)
	SearchTitle(ctx context.Context, term string, limit int) ([]models.Blog, error)
	List(ctx context.Context, filter models.ContentFilter, paging helper.Paging) ([]models.Blog, int64, error)
	CountByTag(ctx context.Context, tagID string) (int64, error)
}

type blogRepository struct {
	contentStore[models.Blog]
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{contentStore[models.Blog]{
		db:           db,
		preloads:     []string{"Tag"},
		titleColumns: []string{"title"},
	}}
}

func (r *blogRepository) List(ctx context.Context, f models.ContentFilter, paging helper.Paging) ([]models.Blog, int64, error) {
	return r.page(ctx, paging,
		WithContentStatus(f.Status),
		WhereIf("tag_id", f.TagID),
		ContainsFold(f.Search, "title"),
		PublishedDateRange(f.Status, f.StartDate, f.EndDate),
	)
}

func (r *blogRepository) CountByTag(ctx context.Context, tagID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Blog{}).Where("tag_id = ?", tagID).Count(&count).Error
	return count, err
}
