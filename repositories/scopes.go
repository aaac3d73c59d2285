package repositories

import (
	"strings"
	"time"

	"travel-gateway/helper"
	"travel-gateway/models"

	"gorm.io/gorm"
)

// Scope is a reusable query fragment for gorm's Scopes.
type Scope = func(*gorm.DB) *gorm.DB

// Paginate applies the offset and limit of p.
func Paginate(p helper.Paging) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Limit())
	}
}

// ContainsFold matches rows where any of columns contains term, ignoring
// case. A blank term matches everything.
func ContainsFold(term string, columns ...string) Scope {
	term = strings.TrimSpace(term)
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + strings.ToLower(term) + "%"
		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

// WhereIf adds an equality condition when value is not empty.
func WhereIf(column, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

func WithContentStatus(status models.ContentStatus) Scope {
	return WhereIf("status", string(status))
}

// PublishedDateRange filters content by the date that matters for its status.
func PublishedDateRange(status models.ContentStatus, start, end *time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		where := helper.BuildDateWhere(status, start, end)
		if where.Empty() {
			return db
		}
		return db.Where(where.Query, where.Args...)
	}
}

// CreatedBetween filters on created_at when both bounds are set.
func CreatedBetween(start, end *time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if start == nil || end == nil {
			return db
		}
		return db.Where("created_at >= ? AND created_at <= ?", *start, *end)
	}
}

// LivePublished selects rows in the PUBLISHED state only.
func LivePublished(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND archived = ?", models.StatusPublished, false)
}

// findPage counts the rows matched by scopes and loads one page of them.
// preload, when set, only applies to the page query.
func findPage[T any](db *gorm.DB, preload Scope, paging helper.Paging, order string, scopes ...Scope) ([]T, int64, error) {
	var total int64
	if err := db.Model(new(T)).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]T, 0)
	q := db.Scopes(scopes...)
	if preload != nil {
		q = preload(q)
	}
	if err := q.Order(order).Scopes(Paginate(paging)).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// unhighlightOthers demotes every highlighted row of model except keepID.
func unhighlightOthers(tx *gorm.DB, model interface{}, keepID string) error {
	return tx.Model(model).
		Where("highlighted = ? AND id <> ?", true, keepID).
		Updates(map[string]interface{}{
			"highlighted": false,
			"status":      models.StatusPublished,
		}).Error
}
