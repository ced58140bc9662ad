package shared

import (
	"math"
	"time"
)

const DateLayout = "2006-01-02"

const MaxLimit = 500

// ListParams are the query options every table list accepts.
// A zero Limit returns the whole table, which is what the console expects.
type ListParams struct {
	Search string
	Page   int
	Limit  int
}

func (p *ListParams) Normalize() {
	if p.Limit < 0 {
		p.Limit = 0
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Page < 1 {
		p.Page = 1
	}
}

func (p ListParams) Paginated() bool {
	return p.Limit > 0
}

func (p ListParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// PageInfo describes one page of a list response.
type PageInfo struct {
	Page       int
	Limit      int
	TotalItems int64
	TotalPages int
}

func NewPageInfo(p ListParams, total int64) *PageInfo {
	if !p.Paginated() {
		return nil
	}
	return &PageInfo{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(p.Limit))),
	}
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseDate parses a YYYY-MM-DD value that has already passed validation.
func ParseDate(s string) time.Time {
	t, _ := time.Parse(DateLayout, s)
	return t
}

// ParseDatePtr parses an optional date; nil and "" both yield nil.
func ParseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := ParseDate(*s)
	return &t
}
