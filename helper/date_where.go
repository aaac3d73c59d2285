package helper

import (
	"time"

	"travel-gateway/models"
)

// DateWhere is a SQL condition with its bind arguments, ready for gorm's
// Where.
type DateWhere struct {
	Query string
	Args  []interface{}
}

// Empty reports whether no date condition applies.
func (w DateWhere) Empty() bool {
	return w.Query == ""
}

// BuildDateWhere picks the timestamp a date range applies to. Drafts have no
// publish date, so they are matched on created_at; every other status is
// matched on date_published, which must be set. Without a status both rules
// are combined. Both bounds are required.
func BuildDateWhere(status models.ContentStatus, start, end *time.Time) DateWhere {
	if start == nil || end == nil {
		return DateWhere{}
	}

	switch status {
	case "":
		return DateWhere{
			Query: "((status <> ? AND date_published IS NOT NULL AND date_published >= ? AND date_published <= ?) OR (status = ? AND created_at >= ? AND created_at <= ?))",
			Args:  []interface{}{models.StatusDraft, *start, *end, models.StatusDraft, *start, *end},
		}
	case models.StatusDraft:
		return DateWhere{
			Query: "created_at >= ? AND created_at <= ?",
			Args:  []interface{}{*start, *end},
		}
	default:
		return DateWhere{
			Query: "date_published IS NOT NULL AND date_published >= ? AND date_published <= ?",
			Args:  []interface{}{*start, *end},
		}
	}
}
