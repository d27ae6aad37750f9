package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tablekit/internal/model"
)

func TestValidateByShape(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		row  any
		want map[string]string
	}{
		{
			name: "generic accepts empty input",
			row:  model.GenericRow{},
			want: map[string]string{},
		},
		{
			name: "check requires label and date",
			row:  model.CheckRow{Name: model.NameCell{Checked: true}},
			want: map[string]string{
				"name": "Name is required.",
				"date": "Date is required.",
			},
		},
		{
			name: "check valid",
			row:  model.CheckRow{Name: model.NameCell{Label: "Marketplace"}, Date: "2024-01-01"},
			want: map[string]string{},
		},
		{
			name: "columns requires name and date",
			row:  model.ColumnRow{Quantity: 3},
			want: map[string]string{
				"name": "Name is required.",
				"date": "Date is required.",
			},
		},
		{
			name: "columns missing date only",
			row:  model.ColumnRow{Name: "Widget"},
			want: map[string]string{"date": "Date is required."},
		},
		{
			name: "development empty",
			row:  model.DevelopmentRow{},
			want: map[string]string{
				"name": "Name is required.",
				"tech": "At least one tech is required.",
				"date": "Date is required.",
			},
		},
		{
			name: "development missing tech only",
			row:  model.DevelopmentRow{Name: "Proj", Tech: model.TechSet{}, Date: "2024-01-01", Progress: 50},
			want: map[string]string{"tech": "At least one tech is required."},
		},
		{
			name: "development valid",
			row:  model.DevelopmentRow{Name: "Proj", Tech: model.TechSet{model.TechApple}, Date: "2024-01-01"},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(tt.row)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckReturnsValidationError(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Check(model.ColumnRow{Name: "a", Date: "b"}))

	err := v.Check(model.ColumnRow{Name: "a"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{"date": "Date is required."}, verr.Fields)
	assert.Equal(t, "validation failed: date: Date is required.", err.Error())
}
