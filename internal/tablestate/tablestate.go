// Package tablestate derives what a table shows from the authoritative row
// sequence: global text filter, single-column sort and pagination. It never
// modifies the rows it is given.
package tablestate

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
)

// Column describes one table column.
type Column[R any] struct {
	Key    string
	Header string
	// Value renders the cell; it is also what the global filter matches.
	Value func(R) string
	// Compare orders two rows by this column. Nil compares Value strings.
	Compare func(a, b R) int
}

func (c Column[R]) compare(a, b R) int {
	if c.Compare != nil {
		return c.Compare(a, b)
	}
	return cmp.Compare(c.Value(a), c.Value(b))
}

// State is the table-state a view keeps between renders.
type State struct {
	Filter   string
	SortKey  string
	SortDesc bool
	Page     int
	PageSize int
}

// ToggleSort cycles key through ascending, descending and unsorted.
// Choosing another column starts it ascending.
func (s *State) ToggleSort(key string) {
	switch {
	case s.SortKey != key:
		s.SortKey, s.SortDesc = key, false
	case !s.SortDesc:
		s.SortDesc = true
	default:
		s.SortKey, s.SortDesc = "", false
	}
}

// SetFilter changes the filter and returns to the first page.
func (s *State) SetFilter(q string) {
	if q != s.Filter {
		s.Page = 0
	}
	s.Filter = q
}

// Entry is a displayed row plus its position in the source sequence.
type Entry[R any] struct {
	Index int
	Row   R
}

// View is one computed page.
type View[R any] struct {
	Entries   []Entry[R]
	Page      int // clamped page index
	PageCount int
	Matched   int // rows passing the filter
	Total     int // rows in the source
}

// Compute applies st to rows.
func Compute[R any](rows []R, cols []Column[R], st State) View[R] {
	entries := make([]Entry[R], 0, len(rows))
	for i, r := range rows {
		if matches(r, cols, st.Filter) {
			entries = append(entries, Entry[R]{Index: i, Row: r})
		}
	}

	if col, ok := findColumn(cols, st.SortKey); ok {
		slices.SortStableFunc(entries, func(a, b Entry[R]) int {
			c := col.compare(a.Row, b.Row)
			if st.SortDesc {
				return -c
			}
			return c
		})
	}

	view := View[R]{Matched: len(entries), Total: len(rows)}

	perPage := st.PageSize
	if perPage <= 0 {
		perPage = max(1, len(entries))
	}
	p := paginator.New()
	p.PerPage = perPage
	p.SetTotalPages(len(entries))
	p.Page = min(max(0, st.Page), p.TotalPages-1)
	start, end := p.GetSliceBounds(len(entries))

	view.Entries = entries[start:end]
	view.Page = p.Page
	view.PageCount = p.TotalPages
	return view
}

func matches[R any](r R, cols []Column[R], filter string) bool {
	q := strings.ToLower(strings.TrimSpace(filter))
	if q == "" {
		return true
	}
	for _, c := range cols {
		if strings.Contains(strings.ToLower(c.Value(r)), q) {
			return true
		}
	}
	return false
}

func findColumn[R any](cols []Column[R], key string) (Column[R], bool) {
	if key == "" {
		return Column[R]{}, false
	}
	for _, c := range cols {
		if c.Key == key {
			return c, true
		}
	}
	return Column[R]{}, false
}

// HasColumn reports whether key names one of cols.
func HasColumn[R any](cols []Column[R], key string) bool {
	_, ok := findColumn(cols, key)
	return ok
}
