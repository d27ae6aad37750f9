package tablestate

import (
	"cmp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	name string
	qty  int
}

var cols = []Column[item]{
	{Key: "name", Header: "NAME", Value: func(i item) string { return i.name }},
	{
		Key: "qty", Header: "QUANTITY",
		Value:   func(i item) string { return strconv.Itoa(i.qty) },
		Compare: func(a, b item) int { return cmp.Compare(a.qty, b.qty) },
	},
}

var items = []item{
	{"Marketplace", 2458},
	{"Venus DB", 1485},
	{"Venus DS", 1024},
	{"Venus 3D Asset", 858},
	{"Marketplace", 258},
	{"Uranus Kit", 9},
}

func names(v View[item]) []string {
	out := make([]string, len(v.Entries))
	for i, e := range v.Entries {
		out[i] = e.Row.name
	}
	return out
}

func indexes(v View[item]) []int {
	out := make([]int, len(v.Entries))
	for i, e := range v.Entries {
		out[i] = e.Index
	}
	return out
}

func TestComputeNoState(t *testing.T) {
	v := Compute(items, cols, State{})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, indexes(v))
	assert.Equal(t, 1, v.PageCount)
	assert.Equal(t, 6, v.Matched)
	assert.Equal(t, 6, v.Total)
}

func TestComputeFilterIsCaseInsensitiveAcrossColumns(t *testing.T) {
	v := Compute(items, cols, State{Filter: "venus"})
	assert.Equal(t, []int{1, 2, 3}, indexes(v))

	v = Compute(items, cols, State{Filter: "58"})
	assert.Equal(t, []int{0, 3, 4}, indexes(v), "matches quantity column too")

	v = Compute(items, cols, State{Filter: "nothing"})
	assert.Empty(t, v.Entries)
	assert.Equal(t, 0, v.Matched)
	assert.Equal(t, 1, v.PageCount)
}

func TestComputeSortKeepsSourceIndex(t *testing.T) {
	v := Compute(items, cols, State{SortKey: "qty"})
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, indexes(v))

	v = Compute(items, cols, State{SortKey: "qty", SortDesc: true})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, indexes(v))

	v = Compute(items, cols, State{SortKey: "name"})
	assert.Equal(t, []string{"Marketplace", "Marketplace", "Uranus Kit", "Venus 3D Asset", "Venus DB", "Venus DS"}, names(v))
	assert.Equal(t, []int{0, 4, 5, 3, 1, 2}, indexes(v), "stable on ties")
}

func TestComputeUnknownSortKeyIgnored(t *testing.T) {
	v := Compute(items, cols, State{SortKey: "missing"})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, indexes(v))
}

func TestComputePagination(t *testing.T) {
	v := Compute(items, cols, State{PageSize: 4})
	assert.Equal(t, 2, v.PageCount)
	assert.Equal(t, []int{0, 1, 2, 3}, indexes(v))

	v = Compute(items, cols, State{PageSize: 4, Page: 1})
	assert.Equal(t, []int{4, 5}, indexes(v))

	v = Compute(items, cols, State{PageSize: 4, Page: 9})
	assert.Equal(t, 1, v.Page, "clamped to last page")
	assert.Equal(t, []int{4, 5}, indexes(v))

	v = Compute(items, cols, State{PageSize: 4, Page: -2})
	assert.Equal(t, 0, v.Page)
}

func TestComputeFilterThenSortThenPage(t *testing.T) {
	v := Compute(items, cols, State{Filter: "venus", SortKey: "qty", PageSize: 2, Page: 1})
	assert.Equal(t, 2, v.PageCount)
	assert.Equal(t, []int{1}, indexes(v))
}

func TestComputeDoesNotMutateRows(t *testing.T) {
	rows := append([]item(nil), items...)
	Compute(rows, cols, State{SortKey: "qty", SortDesc: true, PageSize: 2})
	assert.Equal(t, items, rows)
}

func TestToggleSort(t *testing.T) {
	var s State
	s.ToggleSort("name")
	assert.Equal(t, State{SortKey: "name"}, s)
	s.ToggleSort("name")
	assert.Equal(t, State{SortKey: "name", SortDesc: true}, s)
	s.ToggleSort("name")
	assert.Equal(t, State{}, s)

	s.ToggleSort("name")
	s.ToggleSort("name")
	s.ToggleSort("qty")
	assert.Equal(t, State{SortKey: "qty"}, s)
}

func TestSetFilterResetsPage(t *testing.T) {
	s := State{Page: 3}
	s.SetFilter("")
	assert.Equal(t, 3, s.Page)
	s.SetFilter("venus")
	assert.Equal(t, 0, s.Page)
	assert.Equal(t, "venus", s.Filter)
}
