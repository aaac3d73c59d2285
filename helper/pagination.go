package helper

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// MaxPageSize caps pageSize when positive. Zero leaves it unbounded.
var MaxPageSize = 0

// Paging is a normalised page request.
type Paging struct {
	Page     int
	PageSize int
}

// Offset is the number of rows skipped before this page.
func (p Paging) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit is the number of rows in this page.
func (p Paging) Limit() int {
	return p.PageSize
}

// maxOffset bounds Offset so a huge page number cannot overflow it.
const maxOffset = math.MaxInt32

// NormalizePage applies the list defaults to a raw page/pageSize pair. Pages
// past maxOffset rows are clamped to the last reachable page.
func NormalizePage(page, pageSize int) Paging {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if MaxPageSize > 0 && pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if pageSize > maxOffset {
		pageSize = maxOffset
	}
	if lastPage := maxOffset/pageSize + 1; page > lastPage {
		page = lastPage
	}
	return Paging{Page: page, PageSize: pageSize}
}
