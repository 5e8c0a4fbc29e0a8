package pipeline

import "github.com/mira-academy/catalog/internal/models"

// State holds the user-controlled inputs of one catalog session: search
// query, sort column and direction, and the current page. It is owned by a
// single view and mutated only between derivations.
type State struct {
	Query   string
	SortKey models.Column
	SortDir models.Direction
	Page    int
}

// NewState returns the session defaults: no query, no sort, first page.
func NewState() *State {
	return &State{SortDir: models.Ascending}
}

// SetQuery updates the search query. A changed query resets the page to the
// first one; setting the same query again leaves the page alone.
func (s *State) SetQuery(q string) {
	if q == s.Query {
		return
	}
	s.Query = q
	s.Page = 0
}

// ToggleSort activates sorting on col. Selecting the active column flips the
// direction; selecting a new column starts ascending.
func (s *State) ToggleSort(col models.Column) {
	if col == models.ColumnNone {
		return
	}
	if s.SortKey == col {
		s.SortDir = s.SortDir.Flip()
		return
	}
	s.SortKey = col
	s.SortDir = models.Ascending
}

// Derive runs the filter → sort → paginate chain over normalized rows and
// returns the current page. The page index written back is the clamped one,
// so a shrinking result set moves the session downward, never upward.
func (s *State) Derive(rows []models.Row) Page {
	filtered := Filter(rows, s.Query)
	sorted := Sort(filtered, s.SortKey, s.SortDir)
	page := Paginate(sorted, s.Page)
	s.Page = page.Index
	return page
}
