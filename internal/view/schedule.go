package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/mira-academy/catalog/internal/enrollment"
	"github.com/mira-academy/catalog/pkg/export"
)

// Schedule lists the enrolled courses with per-row drop, reading everything
// from the shared enrollment store.
type Schedule struct {
	store  *enrollment.Store
	logger *zap.Logger
}

// NewSchedule builds the schedule view.
func NewSchedule(store *enrollment.Store, logger *zap.Logger) *Schedule {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Schedule{store: store, logger: logger}
}

// Drop removes the course from the enrollment store. Unknown numbers are
// absorbed by the store as no-ops.
func (v *Schedule) Drop(number string) {
	v.store.Drop(number)
}

// Render writes the enrolled-course table.
func (v *Schedule) Render(w io.Writer) error {
	fmt.Fprintln(w, "Class Schedule")

	enrolled := v.store.Enrolled()
	if len(enrolled) == 0 {
		fmt.Fprintln(w, "No classes enrolled yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Course Number\tCourse Name\tDrop")
	for _, c := range enrolled {
		fmt.Fprintf(tw, "%s\t%s\tdrop\n", c.CourseNumber, c.CourseName)
	}
	return tw.Flush()
}

// Dataset projects the current schedule for export.
func (v *Schedule) Dataset() export.Dataset {
	enrolled := v.store.Enrolled()
	rows := make([]map[string]string, 0, len(enrolled))
	for _, c := range enrolled {
		rows = append(rows, map[string]string{
			"Course Number": c.CourseNumber.String(),
			"Course Name":   c.CourseName.String(),
			"Trimester":     c.Trimester.String(),
			"Credits":       c.SemesterCredits.String(),
		})
	}
	return export.Dataset{
		Title:   "Class Schedule",
		Headers: []string{"Course Number", "Course Name", "Trimester", "Credits"},
		Rows:    rows,
	}
}

// ExportCSV writes the schedule as CSV.
func (v *Schedule) ExportCSV(w io.Writer) error {
	return export.CSV(w, v.Dataset())
}

// ExportPDF writes the schedule as a PDF document.
func (v *Schedule) ExportPDF(w io.Writer) error {
	return export.PDF(w, v.Dataset())
}
