// Package pipeline derives the catalog table from the loaded course list and
// the user-controlled view state. Each stage is a pure function re-run on
// every relevant input change; nothing is cached or diffed incrementally.
package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mira-academy/catalog/internal/models"
)

// PageSize is the fixed number of rows shown per catalog page.
const PageSize = 5

// Normalize projects each course plus its original index into a display row.
// Absent fields become empty strings; the key falls back to a synthetic
// number-trimester-index value when the source supplies no id.
func Normalize(courses []models.Course) []models.Row {
	rows := make([]models.Row, len(courses))
	for i, c := range courses {
		key := c.ID.String()
		if key == "" {
			key = fmt.Sprintf("%s-%s-%d", c.CourseNumber, c.Trimester, i)
		}
		rows[i] = models.Row{
			Key:       key,
			Trimester: c.Trimester.String(),
			Number:    c.CourseNumber.String(),
			Name:      c.CourseName.String(),
			Credits:   c.SemesterCredits.String(),
			Hours:     c.TotalClockHours.String(),
			Index:     i,
		}
	}
	return rows
}

// Filter keeps rows whose course number or course name contains the trimmed
// query, case-insensitively. Other columns never match. An empty or
// whitespace-only query passes the input through untouched.
func Filter(rows []models.Row, query string) []models.Row {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}
	out := make([]models.Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Number), q) || strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders rows by the given column and direction. Comparator ties break
// on the original index scaled by the same direction multiplier, so flipping
// direction exactly reverses the order instead of reshuffling ties. With no
// sort column the input passes through unchanged.
func Sort(rows []models.Row, col models.Column, dir models.Direction) []models.Row {
	if col == models.ColumnNone {
		return rows
	}
	out := make([]models.Row, len(rows))
	copy(out, rows)
	numeric := col.Numeric()
	mul := int(dir)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := Compare(a.Value(col), b.Value(col), numeric); c != 0 {
			return c*mul < 0
		}
		return (a.Index-b.Index)*mul < 0
	})
	return out
}

// Page is one window of the sorted row set. Index is the clamped zero-based
// page index, Total the page count.
type Page struct {
	Rows  []models.Row
	Index int
	Total int
}

// Paginate slices rows into the fixed-size window at page. The page index is
// clamped into [0, total-1], or 0 when there are no rows.
func Paginate(rows []models.Row, page int) Page {
	total := (len(rows) + PageSize - 1) / PageSize
	last := total - 1
	if last < 0 {
		last = 0
	}
	if page < 0 {
		page = 0
	}
	if page > last {
		page = last
	}
	start := page * PageSize
	end := start + PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return Page{Rows: rows[start:end], Index: page, Total: total}
}
