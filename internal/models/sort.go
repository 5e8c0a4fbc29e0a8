package models

// Column identifies a sortable catalog column.
type Column string

const (
	ColumnNone      Column = ""
	ColumnTrimester Column = "trimester"
	ColumnNumber    Column = "number"
	ColumnName      Column = "name"
	ColumnCredits   Column = "credits"
	ColumnHours     Column = "hours"
)

// Columns lists the sortable columns in display order.
var Columns = []Column{ColumnTrimester, ColumnNumber, ColumnName, ColumnCredits, ColumnHours}

// ParseColumn maps user input to a Column.
func ParseColumn(s string) (Column, bool) {
	switch Column(s) {
	case ColumnTrimester, ColumnNumber, ColumnName, ColumnCredits, ColumnHours:
		return Column(s), true
	}
	return ColumnNone, false
}

// Numeric reports whether the column holds numeric values. Credits and clock
// hours sort numerically, everything else as text.
func (c Column) Numeric() bool {
	return c == ColumnCredits || c == ColumnHours
}

// Title returns the column's table heading.
func (c Column) Title() string {
	switch c {
	case ColumnTrimester:
		return "Trimester"
	case ColumnNumber:
		return "Course Number"
	case ColumnName:
		return "Course Name"
	case ColumnCredits:
		return "Semester Credits"
	case ColumnHours:
		return "Total Clock Hours"
	default:
		return ""
	}
}

// Direction is the order applied to a sorted column. Its integer value is the
// multiplier applied to comparator results and tie-breaks.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// Flip reverses the direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}
