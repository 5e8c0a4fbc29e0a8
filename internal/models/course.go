package models

// Course is a single catalog entry as served by the course source. Any field
// may be absent; unrecognized fields are ignored. Courses are immutable once
// loaded — the catalog list is replaced wholesale, never edited in place.
type Course struct {
	ID              Field `json:"id"`
	Trimester       Field `json:"trimester"`
	CourseNumber    Field `json:"courseNumber"`
	CourseName      Field `json:"courseName"`
	SemesterCredits Field `json:"semesterCredits"`
	TotalClockHours Field `json:"totalClockHours"`
}

// Row is a display-ready projection of a Course tagged with its position in
// the source list. Index is the stable tie-breaker for sorting.
type Row struct {
	Key       string
	Trimester string
	Number    string
	Name      string
	Credits   string
	Hours     string
	Index     int
}

// Value returns the row's cell for the given column.
func (r Row) Value(col Column) string {
	switch col {
	case ColumnTrimester:
		return r.Trimester
	case ColumnNumber:
		return r.Number
	case ColumnName:
		return r.Name
	case ColumnCredits:
		return r.Credits
	case ColumnHours:
		return r.Hours
	default:
		return ""
	}
}
