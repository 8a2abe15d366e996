package table

import (
	"sort"
	"strings"
	"time"

	"aquaview.xyz/water-quality-dashboard/pkg/models"
)

const (
	// PageSize is fixed; all slicing happens over the cached dataset.
	PageSize = 10
	// WindowSize is how many page links are shown around the current page.
	WindowSize = 5
)

// Filters are applied client-side over the cached dataset: an exact match
// on the formatted date AND a case-insensitive substring match on
// location.
type Filters struct {
	Date     string
	Location string
}

func (f Filters) Match(r models.Reading) bool {
	if f.Date != "" && r.Date != f.Date {
		return false
	}
	if f.Location != "" &&
		!strings.Contains(strings.ToLower(r.Location), strings.ToLower(f.Location)) {
		return false
	}
	return true
}

func ApplyFilters(rows []models.Reading, f Filters) []models.Reading {
	filtered := make([]models.Reading, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Page is one slice of the filtered dataset.
type Page struct {
	Rows      []models.Reading
	Number    int
	TotalRows int
	TotalPages int
}

// Paginate slices rows into the requested 1-based page. An out-of-range
// page number is clamped into the valid range.
func Paginate(rows []models.Reading, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = PageSize
	}

	totalPages := (len(rows) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	return Page{
		Rows:       rows[start:end],
		Number:     page,
		TotalRows:  len(rows),
		TotalPages: totalPages,
	}
}

// Window is the pagination control view: a run of page numbers centered
// on the current page, with first/last shortcuts and ellipses when the
// run does not touch the bounds.
type Window struct {
	Pages            []int
	ShowFirst        bool
	LeadingEllipsis  bool
	TrailingEllipsis bool
	ShowLast         bool
}

func PageWindow(current, total int) Window {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := current - WindowSize/2
	if start < 1 {
		start = 1
	}
	end := start + WindowSize - 1
	if end > total {
		end = total
	}

	var pages []int
	for n := start; n <= end; n++ {
		pages = append(pages, n)
	}

	return Window{
		Pages:            pages,
		ShowFirst:        start > 1,
		LeadingEllipsis:  start > 2,
		TrailingEllipsis: end < total-1,
		ShowLast:         end < total,
	}
}

// SortReadings orders rows by one column in place. Unknown fields leave
// the order untouched.
func SortReadings(rows []models.Reading, field string, ascending bool) {
	less := func(a, b models.Reading) bool { return false }

	switch field {
	case "location":
		less = func(a, b models.Reading) bool { return a.Location < b.Location }
	case "ph_value":
		less = func(a, b models.Reading) bool { return a.PhValue < b.PhValue }
	case "temperature":
		less = func(a, b models.Reading) bool { return a.Temperature < b.Temperature }
	case "turbidity":
		less = func(a, b models.Reading) bool { return a.Turbidity < b.Turbidity }
	case "date":
		less = func(a, b models.Reading) bool {
			if a.Date != b.Date {
				return a.Date < b.Date
			}
			return a.Time < b.Time
		}
	case "time":
		less = func(a, b models.Reading) bool { return a.Time < b.Time }
	default:
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return less(rows[i], rows[j])
		}
		return less(rows[j], rows[i])
	})
}

// Notice is an auto-dismissing success banner.
type Notice struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NoticeTTL matches the 3-second auto-dismiss of the admin screen.
const NoticeTTL = 3 * time.Second

func NewNotice(message string) Notice {
	return Notice{Message: message, ExpiresAt: time.Now().Add(NoticeTTL)}
}

func (n Notice) ActiveAt(now time.Time) bool {
	return n.Message != "" && now.Before(n.ExpiresAt)
}
