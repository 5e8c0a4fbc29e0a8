// Package view renders the session's three surfaces — catalog table, class
// schedule and header — to plain writers. All three share one enrollment
// store, so a change made through any of them is visible in the others on
// their next render.
package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/mira-academy/catalog/internal/catalog"
	"github.com/mira-academy/catalog/internal/enrollment"
	"github.com/mira-academy/catalog/internal/models"
	"github.com/mira-academy/catalog/internal/pipeline"
)

// Catalog is the interactive course table for one loader activation. It owns
// the view state driving the derivation chain.
type Catalog struct {
	loader *catalog.Loader
	store  *enrollment.Store
	state  *pipeline.State
	logger *zap.Logger
}

// NewCatalog builds the catalog view over an activated loader.
func NewCatalog(loader *catalog.Loader, store *enrollment.Store, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{loader: loader, store: store, state: pipeline.NewState(), logger: logger}
}

// Search updates the live filter query.
func (v *Catalog) Search(query string) {
	v.state.SetQuery(query)
}

// Sort toggles sorting on col: repeated selection flips direction, a new
// column starts ascending.
func (v *Catalog) Sort(col models.Column) {
	v.state.ToggleSort(col)
}

// NextPage advances one page; the derivation clamps it back if out of range.
func (v *Catalog) NextPage() {
	v.state.Page++
}

// PrevPage steps back one page, stopping at the first.
func (v *Catalog) PrevPage() {
	if v.state.Page > 0 {
		v.state.Page--
	}
}

// Enroll adds the loaded course with the given number to the enrollment
// store. Unknown numbers are ignored; it reports whether a course was found.
func (v *Catalog) Enroll(number string) bool {
	if number == "" {
		return false
	}
	courses, _, _ := v.loader.Snapshot()
	for _, c := range courses {
		if c.CourseNumber.String() == number {
			v.store.Enroll(c)
			return true
		}
	}
	v.logger.Debug("enroll target not in catalog", zap.String("course_number", number))
	return false
}

// Render writes the catalog table: search line, sortable headers with their
// direction indicators, the current page of rows, and the pager line.
func (v *Catalog) Render(w io.Writer) error {
	fmt.Fprintln(w, "School Catalog")
	if v.state.Query != "" {
		fmt.Fprintf(w, "Search: %s\n", v.state.Query)
	}

	courses, loading, err := v.loader.Snapshot()
	if loading {
		fmt.Fprintln(w, "Loading…")
		return nil
	}
	if err != nil {
		fmt.Fprintf(w, "Failed to load courses: %v\n", err)
		return nil
	}

	page := v.state.Derive(pipeline.Normalize(courses))

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, col := range models.Columns {
		fmt.Fprintf(tw, "%s %s\t", col.Title(), v.arrow(col))
	}
	fmt.Fprintln(tw, "Enroll")

	if page.Total == 0 {
		fmt.Fprintln(tw, "No courses found.")
	}
	for _, r := range page.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Trimester, r.Number, r.Name, r.Credits, r.Hours, v.enrollCell(r.Number))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	current := 0
	if page.Total > 0 {
		current = page.Index + 1
	}
	fmt.Fprintf(w, "Page %d of %d\n", current, page.Total)
	return nil
}

func (v *Catalog) arrow(col models.Column) string {
	if v.state.SortKey != col {
		return "↕"
	}
	if v.state.SortDir == models.Ascending {
		return "↑"
	}
	return "↓"
}

func (v *Catalog) enrollCell(number string) string {
	if v.store.IsEnrolled(number) {
		return "enrolled"
	}
	return "enroll"
}
