package shape

import (
	"github.com/Makepad-fr/tablekit/internal/model"
	"github.com/Makepad-fr/tablekit/internal/tablestate"
)

// GenericTable is the basic table: any input is accepted.
func GenericTable() Descriptor[model.GenericRow] {
	return Descriptor[model.GenericRow]{
		Name:      Generic,
		Title:     "Data Table",
		PageSize:  5,
		EmptyText: "No rows",
		Progress:  func(r model.GenericRow) int { return r.Progress },
		Columns: []tablestate.Column[model.GenericRow]{
			textColumn("name", "NAME", func(r model.GenericRow) string { return r.Name }),
			textColumn("tech", "TECH", func(r model.GenericRow) string { return r.Tech.String() }),
			textColumn("date", "DATE", func(r model.GenericRow) string { return r.Date }),
			progressColumn(func(r model.GenericRow) int { return r.Progress }),
		},
		Fields: []Field{nameField, techField, dateField, progressField},
		Build: func(v Values) model.GenericRow {
			return model.GenericRow{
				Name:     v.Get("name"),
				Tech:     v.Tech.Normalize(),
				Date:     v.Get("date"),
				Progress: model.ParseNumber(v.Get("progress")),
			}
		},
	}
}

// CheckTable has a tickable name column.
func CheckTable() Descriptor[model.CheckRow] {
	return Descriptor[model.CheckRow]{
		Name:      Check,
		Title:     "Check Table",
		PageSize:  11,
		EmptyText: "Name not found",
		Progress:  func(r model.CheckRow) int { return r.Progress },
		Columns: []tablestate.Column[model.CheckRow]{
			textColumn("name", "NAME", func(r model.CheckRow) string { return r.Name.Label }),
			progressColumn(func(r model.CheckRow) int { return r.Progress }),
			quantityColumn(func(r model.CheckRow) int { return r.Quantity }),
			textColumn("date", "DATE", func(r model.CheckRow) string { return r.Date }),
		},
		Fields: []Field{nameField, checkedField, dateField, quantityField, progressField},
		Build: func(v Values) model.CheckRow {
			return model.CheckRow{
				Name:     model.NameCell{Label: v.Get("name"), Checked: v.Checked},
				Date:     v.Get("date"),
				Quantity: model.ParseNumber(v.Get("quantity")),
				Progress: model.ParseNumber(v.Get("progress")),
			}
		},
		Checked: func(r model.CheckRow) bool { return r.Name.Checked },
	}
}

// ColumnsTable is the plain four-column table.
func ColumnsTable() Descriptor[model.ColumnRow] {
	return Descriptor[model.ColumnRow]{
		Name:      Columns,
		Title:     "4-Column Table",
		PageSize:  5,
		EmptyText: "No rows",
		Progress:  func(r model.ColumnRow) int { return r.Progress },
		Columns: []tablestate.Column[model.ColumnRow]{
			textColumn("name", "NAME", func(r model.ColumnRow) string { return r.Name }),
			progressColumn(func(r model.ColumnRow) int { return r.Progress }),
			quantityColumn(func(r model.ColumnRow) int { return r.Quantity }),
			textColumn("date", "DATE", func(r model.ColumnRow) string { return r.Date }),
		},
		Fields: []Field{nameField, dateField, quantityField, progressField},
		Build: func(v Values) model.ColumnRow {
			return model.ColumnRow{
				Name:     v.Get("name"),
				Date:     v.Get("date"),
				Quantity: model.ParseNumber(v.Get("quantity")),
				Progress: model.ParseNumber(v.Get("progress")),
			}
		},
	}
}

// DevelopmentTable tracks projects per platform.
func DevelopmentTable() Descriptor[model.DevelopmentRow] {
	return Descriptor[model.DevelopmentRow]{
		Name:      Development,
		Title:     "Development Table",
		PageSize:  11,
		EmptyText: "No rows",
		Progress:  func(r model.DevelopmentRow) int { return r.Progress },
		Columns: []tablestate.Column[model.DevelopmentRow]{
			textColumn("name", "NAME", func(r model.DevelopmentRow) string { return r.Name }),
			textColumn("tech", "TECH", func(r model.DevelopmentRow) string { return r.Tech.String() }),
			textColumn("date", "DATE", func(r model.DevelopmentRow) string { return r.Date }),
			progressColumn(func(r model.DevelopmentRow) int { return r.Progress }),
		},
		Fields: []Field{nameField, techField, dateField, progressField},
		Build: func(v Values) model.DevelopmentRow {
			return model.DevelopmentRow{
				Name:     v.Get("name"),
				Tech:     v.Tech.Normalize(),
				Date:     v.Get("date"),
				Progress: model.ParseNumber(v.Get("progress")),
			}
		},
	}
}
