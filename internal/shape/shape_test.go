package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tablekit/internal/model"
	"github.com/Makepad-fr/tablekit/internal/tablestate"
)

func TestLookup(t *testing.T) {
	for _, n := range Names() {
		got, err := Lookup(n)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	got, err := Lookup(" Check ")
	require.NoError(t, err)
	assert.Equal(t, Check, got)

	_, err = Lookup("complex")
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestDefaults(t *testing.T) {
	v := CheckTable().Defaults()
	assert.Equal(t, map[string]string{"name": "", "date": "", "quantity": "0", "progress": "0"}, v.Text)
	assert.False(t, v.Checked)
	assert.Empty(t, v.Tech)

	v = DevelopmentTable().Defaults()
	assert.Equal(t, map[string]string{"name": "", "date": "", "progress": "0"}, v.Text)
}

func TestBuildFromDefaultsProducesEmptyCandidates(t *testing.T) {
	assert.Equal(t, model.GenericRow{Tech: model.TechSet{}}, GenericTable().Build(GenericTable().Defaults()))
	assert.Equal(t, model.ColumnRow{}, ColumnsTable().Build(ColumnsTable().Defaults()))
}

func TestParseValuesAndBuild(t *testing.T) {
	d := ColumnsTable()
	v, err := d.ParseValues([]string{"name=Widget", "date=2024-03-01", "quantity=-10", "progress=200"})
	require.NoError(t, err)
	assert.Equal(t,
		model.ColumnRow{Name: "Widget", Date: "2024-03-01", Quantity: -10, Progress: 200},
		d.Build(v), "build does not clamp; the store does")

	dev := DevelopmentTable()
	v, err = dev.ParseValues([]string{"name=Proj", "tech=windows,apple", "date=2024-01-01", "progress=abc"})
	require.NoError(t, err)
	assert.Equal(t,
		model.DevelopmentRow{Name: "Proj", Tech: model.TechSet{model.TechApple, model.TechWindows}, Date: "2024-01-01"},
		dev.Build(v))

	chk := CheckTable()
	v, err = chk.ParseValues([]string{"name=Venus", "checked=true", "date=d"})
	require.NoError(t, err)
	assert.Equal(t, model.NameCell{Label: "Venus", Checked: true}, chk.Build(v).Name)
}

func TestParseValuesErrors(t *testing.T) {
	d := DevelopmentTable()
	_, err := d.ParseValues([]string{"name"})
	assert.ErrorIs(t, err, ErrBadValue)

	_, err = d.ParseValues([]string{"quantity=3"})
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = d.ParseValues([]string{"tech=linux"})
	assert.ErrorIs(t, err, ErrBadValue)
	assert.ErrorIs(t, err, model.ErrUnknownTech)

	_, err = CheckTable().ParseValues([]string{"checked=maybe"})
	assert.ErrorIs(t, err, ErrBadValue)
}

func TestColumnsRenderAndSort(t *testing.T) {
	d := CheckTable()
	rows := []model.CheckRow{
		{Name: model.NameCell{Label: "b"}, Progress: 9, Quantity: 30},
		{Name: model.NameCell{Label: "a"}, Progress: 80, Quantity: 4},
	}
	view := tablestate.Compute(rows, d.Columns, tablestate.State{SortKey: "progress", SortDesc: true})
	require.Len(t, view.Entries, 2)
	assert.Equal(t, 1, view.Entries[0].Index, "numeric, not lexical, order")
	assert.Equal(t, "80%", d.Columns[1].Value(view.Entries[0].Row))

	view = tablestate.Compute(rows, d.Columns, tablestate.State{SortKey: "quantity"})
	assert.Equal(t, 1, view.Entries[0].Index)

	assert.True(t, d.Checked(model.CheckRow{Name: model.NameCell{Checked: true}}))
	assert.Nil(t, ColumnsTable().Checked)
}
