package services

import (
	"errors"
	"strings"
	"time"

	"travel-gateway/helper"
	"travel-gateway/metrics"
	"travel-gateway/models"

	"gorm.io/gorm"
)

// SearchLimit caps title searches.
const SearchLimit = 10

// Outcome is the result of a mutation: a user facing message and the
// item as stored.
type Outcome[T any] struct {
	Message string
	Item    *T
}

// ContentDeps are shared by the publishable entity services.
type ContentDeps struct {
	Compressor *Compressor
	Sanitizer  *Sanitizer
	Metrics    metrics.MetricsCollector
}

func (d ContentDeps) withDefaults() ContentDeps {
	if d.Metrics == nil {
		d.Metrics = metrics.Nop{}
	}
	if d.Compressor == nil {
		d.Compressor = NewCompressor(d.Metrics)
	}
	if d.Sanitizer == nil {
		d.Sanitizer = NewSanitizer()
	}
	return d
}

// packText compresses a text field for storage. The stored text reads back
// exactly as written.
func (d ContentDeps) packText(text string) (string, error) {
	return d.Compressor.Compress(text)
}

// packRichText sanitises editor markup before compressing it.
func (d ContentDeps) packRichText(html string) (string, error) {
	return d.Compressor.Compress(d.Sanitizer.Sanitize(html))
}

func translateNotFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NotFound(message)
	}
	return err
}

// prepareContentFilter validates the filter, resolves its date preset in
// place and returns the normalised page.
func prepareContentFilter(f *models.ContentFilter, now time.Time) (helper.Paging, error) {
	if f.Status != "" && !f.Status.Valid() {
		return helper.Paging{}, models.BadRequestf("Invalid status filter %q", f.Status)
	}
	f.StartDate, f.EndDate = helper.ResolveDateRange(f.DateRangePreset, f.StartDate, f.EndDate, now)
	return helper.NormalizePage(f.Page, f.PageSize), nil
}

// tripDuration is the whole number of days between departure and return.
func tripDuration(departure, ret *time.Time) (int, error) {
	if departure == nil || ret == nil {
		return 0, nil
	}
	if ret.Before(*departure) {
		return 0, models.BadRequest("Return date must be after departure date")
	}
	return int(ret.Sub(*departure).Hours() / 24), nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
