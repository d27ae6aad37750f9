package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tablekit/internal/model"
	"github.com/Makepad-fr/tablekit/internal/validation"
)

func columnSeed() []model.ColumnRow {
	return []model.ColumnRow{
		{Name: "Marketplace", Date: "2024-01-12", Quantity: 2458, Progress: 75},
		{Name: "Venus DB", Date: "2024-02-21", Quantity: 1485, Progress: 35},
		{Name: "Venus DS", Date: "2024-03-13", Quantity: 1024, Progress: 90},
	}
}

func TestNewNormalizesSeed(t *testing.T) {
	s := New([]model.ColumnRow{{Name: "x", Date: "d", Quantity: -1, Progress: 300}})
	require.Equal(t, 1, s.Len())
	row, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, 0, row.Quantity)
	assert.Equal(t, 100, row.Progress)
	assert.NotEmpty(t, s.ID())
}

func TestAddRejectsMissingRequiredField(t *testing.T) {
	tests := []struct {
		name  string
		add   func() (Result, error, int, int)
		field string
	}{
		{
			name: "check without label",
			add: func() (Result, error, int, int) {
				s := New([]model.CheckRow{{Name: model.NameCell{Label: "a"}, Date: "d"}})
				res, err := s.Add(model.CheckRow{Date: "2024-01-01"})
				return res, err, 1, s.Len()
			},
			field: "name",
		},
		{
			name: "columns without date",
			add: func() (Result, error, int, int) {
				s := New(columnSeed())
				res, err := s.Add(model.ColumnRow{Name: "Widget"})
				return res, err, 3, s.Len()
			},
			field: "date",
		},
		{
			name: "development without tech",
			add: func() (Result, error, int, int) {
				s := New[model.DevelopmentRow](nil)
				res, err := s.Add(model.DevelopmentRow{Name: "Proj", Date: "2024-01-01"})
				return res, err, 0, s.Len()
			},
			field: "tech",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err, before, after := tt.add()
			assert.Equal(t, before, after)
			assert.False(t, res.OK())
			assert.Equal(t, StatusError, res.Status)
			assert.Equal(t, "Please fill in all required fields.", res.Description)
			assert.Contains(t, res.Errors, tt.field)

			var verr *validation.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestAddDevelopmentWithoutTechScenario(t *testing.T) {
	s := New[model.DevelopmentRow](nil)
	res, err := s.Add(model.DevelopmentRow{Name: "Proj", Tech: model.TechSet{}, Date: "2024-01-01", Progress: 50})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"tech": "At least one tech is required."}, res.Errors)
	assert.Equal(t, 0, s.Len())
}

func TestAddColumnsClampsScenario(t *testing.T) {
	s := New(columnSeed())
	res, err := s.Add(model.ColumnRow{Name: "Widget", Date: "2024-03-01", Quantity: -10, Progress: 200})
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, "Row added.", res.Title)

	require.Equal(t, 4, s.Len())
	last, err := s.At(3)
	require.NoError(t, err)
	assert.Equal(t, model.ColumnRow{Name: "Widget", Date: "2024-03-01", Quantity: 0, Progress: 100}, last)
}

func TestAddAppendsExactlyOneRowPerShape(t *testing.T) {
	t.Run("generic accepts empty name", func(t *testing.T) {
		s := New[model.GenericRow](nil)
		_, err := s.Add(model.GenericRow{Progress: -5})
		require.NoError(t, err)
		assert.Equal(t, []model.GenericRow{{Tech: model.TechSet{}, Progress: 0}}, s.Rows())
	})
	t.Run("check", func(t *testing.T) {
		s := New[model.CheckRow](nil)
		_, err := s.Add(model.CheckRow{Name: model.NameCell{Label: "a", Checked: true}, Date: "d", Quantity: 7, Progress: 42})
		require.NoError(t, err)
		assert.Equal(t, []model.CheckRow{{Name: model.NameCell{Label: "a", Checked: true}, Date: "d", Quantity: 7, Progress: 42}}, s.Rows())
	})
	t.Run("development", func(t *testing.T) {
		s := New[model.DevelopmentRow](nil)
		_, err := s.Add(model.DevelopmentRow{Name: "p", Tech: model.TechSet{model.TechWindows, model.TechApple}, Date: "d", Progress: 150})
		require.NoError(t, err)
		assert.Equal(t, []model.DevelopmentRow{{Name: "p", Tech: model.TechSet{model.TechApple, model.TechWindows}, Date: "d", Progress: 100}}, s.Rows())
	})
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := New[model.ColumnRow](nil)
	for _, name := range []string{"a", "b", "c"} {
		_, err := s.Add(model.ColumnRow{Name: name, Date: "d"})
		require.NoError(t, err)
	}
	var names []string
	for _, r := range s.Rows() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestRemove(t *testing.T) {
	for i := range columnSeed() {
		s := New(columnSeed())
		res, err := s.Remove(i)
		require.NoError(t, err)
		assert.Equal(t, StatusInfo, res.Status)
		assert.Equal(t, "Row removed.", res.Title)

		want := append(columnSeed()[:i:i], columnSeed()[i+1:]...)
		assert.Equal(t, want, s.Rows(), "remove %d", i)
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	s := New(columnSeed())
	for _, idx := range []int{-1, 3, 10} {
		_, err := s.Remove(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	assert.Equal(t, 3, s.Len())
}

func TestSetNameChecked(t *testing.T) {
	seed := []model.CheckRow{
		{Name: model.NameCell{Label: "Marketplace"}, Date: "2024-01-12", Quantity: 2458, Progress: 75},
		{Name: model.NameCell{Label: "Venus DB", Checked: true}, Date: "2024-02-21", Quantity: 1485, Progress: 35},
	}
	s := New(seed)

	require.NoError(t, SetNameChecked(s, 0, true))
	want := []model.CheckRow{
		{Name: model.NameCell{Label: "Marketplace", Checked: true}, Date: "2024-01-12", Quantity: 2458, Progress: 75},
		seed[1],
	}
	assert.Equal(t, want, s.Rows())

	require.NoError(t, SetNameChecked(s, 1, false))
	row, _ := s.At(1)
	assert.Equal(t, model.NameCell{Label: "Venus DB"}, row.Name)

	assert.ErrorIs(t, SetNameChecked(s, 2, true), ErrIndexOutOfRange)
}

func TestRowsReturnsCopy(t *testing.T) {
	s := New(columnSeed())
	rows := s.Rows()
	rows[0].Name = "changed"
	row, _ := s.At(0)
	assert.Equal(t, "Marketplace", row.Name)
}
