package repositories

import (
	"context"

	"travel-gateway/helper"
	"travel-gateway/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type childTable struct {
	model  interface{}
	column string
}

// contentStore holds the queries every publishable entity shares.
type contentStore[T any] struct {
	db           *gorm.DB
	preloads     []string
	titleColumns []string
	children     []childTable
}

func (s *contentStore[T]) query(ctx context.Context) *gorm.DB {
	return s.withPreloads(s.db.WithContext(ctx))
}

func (s *contentStore[T]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, p := range s.preloads {
		db = db.Preload(p, orderedChildren(p))
	}
	return db
}

// page loads one page of the rows matched by scopes, newest first.
func (s *contentStore[T]) page(ctx context.Context, paging helper.Paging, scopes ...Scope) ([]T, int64, error) {
	return findPage[T](s.db.WithContext(ctx), s.withPreloads, paging, "created_at desc", scopes...)
}

// orderedChildren keeps owned price options in creation order. Other
// associations load unconditioned.
func orderedChildren(preload string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch preload {
		case "ClientPriceOptions", "VisaPriceOptions":
			return db.Order("created_at asc")
		}
		return db
	}
}

func (s *contentStore[T]) Create(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *contentStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var item T
	if err := s.query(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Save writes the scalar columns of item. Associations are managed
// separately. With clearHighlights every other highlighted row is demoted
// in the same transaction.
func (s *contentStore[T]) Save(ctx context.Context, item *T, id string, clearHighlights bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if clearHighlights {
			if err := unhighlightOthers(tx, new(T), id); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(item).Error
	})
}

// UpdateStatus writes the workflow columns of item. With clearHighlights
// every other highlighted row is demoted to PUBLISHED in the same
// transaction.
func (s *contentStore[T]) UpdateStatus(ctx context.Context, item *T, id string, clearHighlights bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if clearHighlights {
			if err := unhighlightOthers(tx, new(T), id); err != nil {
				return err
			}
		}
		return tx.Model(item).
			Omit(clause.Associations).
			Select("status", "highlighted", "archived", "date_published").
			Updates(item).Error
	})
}

// Delete removes the row and everything it owns.
func (s *contentStore[T]) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range s.children {
			if err := tx.Where(child.column+" = ?", id).Delete(child.model).Error; err != nil {
				return err
			}
		}
		return deleteByID[T](tx, id)
	})
}

// ListPublished returns PUBLISHED rows, newest first.
func (s *contentStore[T]) ListPublished(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	err := s.query(ctx).Scopes(LivePublished).Order("created_at desc").Find(&items).Error
	return items, err
}

func (s *contentStore[T]) ListByStatus(ctx context.Context, status models.ContentStatus) ([]T, error) {
	items := make([]T, 0)
	err := s.query(ctx).Where("status = ?", status).Order("created_at desc").Find(&items).Error
	return items, err
}

func (s *contentStore[T]) ListHighlighted(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	err := s.query(ctx).
		Where("highlighted = ? AND status = ?", true, models.StatusHighlighted).
		Order("date_published desc").
		Find(&items).Error
	return items, err
}

// FirstHighlighted returns nil without error when nothing is highlighted.
func (s *contentStore[T]) FirstHighlighted(ctx context.Context) (*T, error) {
	items := make([]T, 0, 1)
	err := s.query(ctx).
		Where("highlighted = ? AND status = ?", true, models.StatusHighlighted).
		Order("date_published desc").
		Limit(1).
		Find(&items).Error
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}

// SearchTitle returns at most limit rows whose title columns contain term,
// most recently published first.
func (s *contentStore[T]) SearchTitle(ctx context.Context, term string, limit int) ([]T, error) {
	items := make([]T, 0)
	err := s.query(ctx).
		Scopes(ContainsFold(term, s.titleColumns...)).
		Order("CASE WHEN date_published IS NULL THEN 1 ELSE 0 END").
		Order("date_published desc").
		Order("created_at desc").
		Limit(limit).
		Find(&items).Error
	return items, err
}
