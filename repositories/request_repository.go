package repositories

import (
	"context"

	"travel-gateway/helper"
	"travel-gateway/models"

	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(ctx context.Context, req *models.Request) error
	GetByID(ctx context.Context, id string) (*models.Request, error)
	UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error
	List(ctx context.Context, filter models.RequestFilter, paging helper.Paging) ([]models.Request, int64, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *models.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*models.Request, error) {
	var req models.Request
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Request{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *requestRepository) List(ctx context.Context, f models.RequestFilter, paging helper.Paging) ([]models.Request, int64, error) {
	return findPage[models.Request](r.db.WithContext(ctx), nil, paging, "created_at desc",
		WhereIf("request_type", string(f.RequestType)),
		WhereIf("status", string(f.Status)),
		CreatedBetween(f.StartDate, f.EndDate),
	)
}
