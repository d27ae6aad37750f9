package model

import (
	"encoding/json"
	"fmt"
)

// Row is implemented by every table row shape. Normalize returns a copy with
// the clamp policy applied; it runs on every write into a store.
type Row[R any] interface {
	Normalize() R
}

// NameCell is the checkable name: a label plus a checked flag.
// It travels as the tuple [label, checked].
type NameCell struct {
	Label   string `json:"label" validate:"required"`
	Checked bool   `json:"checked"`
}

func (n NameCell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{n.Label, n.Checked})
}

func (n *NameCell) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("name cell: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("name cell: want [label, checked], got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &n.Label); err != nil {
		return fmt.Errorf("name cell label: %w", err)
	}
	if err := json.Unmarshal(raw[1], &n.Checked); err != nil {
		return fmt.Errorf("name cell checked: %w", err)
	}
	return nil
}

// GenericRow backs the basic add-row form. It carries no required fields.
type GenericRow struct {
	Name     string  `json:"name"`
	Tech     TechSet `json:"tech"`
	Date     string  `json:"date"`
	Progress int     `json:"progress"`
}

func (r GenericRow) Normalize() GenericRow {
	r.Tech = r.Tech.Normalize()
	r.Progress = ClampProgress(r.Progress)
	return r
}

// CheckRow is a row whose name can be ticked in place.
type CheckRow struct {
	Name     NameCell `json:"name"`
	Date     string   `json:"date" validate:"required"`
	Quantity int      `json:"quantity"`
	Progress int      `json:"progress"`
}

func (r CheckRow) Normalize() CheckRow {
	r.Quantity = ClampQuantity(r.Quantity)
	r.Progress = ClampProgress(r.Progress)
	return r
}

// ColumnRow is the plain four-column row.
type ColumnRow struct {
	Name     string `json:"name" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Quantity int    `json:"quantity"`
	Progress int    `json:"progress"`
}

func (r ColumnRow) Normalize() ColumnRow {
	r.Quantity = ClampQuantity(r.Quantity)
	r.Progress = ClampProgress(r.Progress)
	return r
}

// DevelopmentRow tracks a project and the platforms it targets.
type DevelopmentRow struct {
	Name     string  `json:"name" validate:"required"`
	Tech     TechSet `json:"tech" validate:"min=1"`
	Date     string  `json:"date" validate:"required"`
	Progress int     `json:"progress"`
}

func (r DevelopmentRow) Normalize() DevelopmentRow {
	r.Tech = r.Tech.Normalize()
	r.Progress = ClampProgress(r.Progress)
	return r
}
