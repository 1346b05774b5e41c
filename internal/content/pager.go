package content

import (
	"math"

	"clubhub/internal/dbmysql"
)

// PageResult is one page plus the collection totals as of the fetch.
type PageResult struct {
	Items      []dbmysql.ContentEntity `json:"items"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalCount int64                   `json:"total_count"`
	TotalPages int                     `json:"total_pages"`
}

// SlicePager is the client-side slicing strategy: the whole collection is
// fetched once and pages are cut from it. LoadMore accumulates pages into a
// running list instead of replacing them. Totals and the featured/active
// sub-counts are folded over the complete set, never a page.
type SlicePager struct {
	items    []dbmysql.ContentEntity
	pageSize int
	loaded   []dbmysql.ContentEntity
	nextPage int
}

func NewSlicePager(items []dbmysql.ContentEntity, pageSize int) *SlicePager {
	if pageSize < 1 {
		pageSize = 10
	}
	return &SlicePager{items: items, pageSize: pageSize, nextPage: 1}
}

func (p *SlicePager) TotalCount() int {
	return len(p.items)
}

func (p *SlicePager) TotalPages() int {
	return int(math.Ceil(float64(len(p.items)) / float64(p.pageSize)))
}

// Page returns the 1-based page n, empty past the end.
func (p *SlicePager) Page(n int) []dbmysql.ContentEntity {
	if n < 1 {
		return nil
	}
	start := (n - 1) * p.pageSize
	if start >= len(p.items) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// LoadMore appends the next page to the running list and reports whether
// more pages remain after it.
func (p *SlicePager) LoadMore() ([]dbmysql.ContentEntity, bool) {
	page := p.Page(p.nextPage)
	if len(page) == 0 {
		return p.loaded, false
	}
	p.nextPage++
	p.loaded = append(p.loaded, page...)
	return p.loaded, p.nextPage <= p.TotalPages()
}

// Loaded returns everything accumulated through LoadMore so far.
func (p *SlicePager) Loaded() []dbmysql.ContentEntity {
	return p.loaded
}

// Counts folds featured/active over the full fetched set.
func (p *SlicePager) Counts() dbmysql.CategoryCounts {
	counts := dbmysql.CategoryCounts{Total: int64(len(p.items))}
	for _, item := range p.items {
		if item.Featured {
			counts.Featured++
		}
		if item.Active {
			counts.Active++
		}
	}
	return counts
}
