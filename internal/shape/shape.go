// Package shape binds each row type to its table presentation: columns,
// add-form fields and how raw form input becomes a candidate row.
package shape

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tablekit/internal/model"
	"github.com/Makepad-fr/tablekit/internal/tablestate"
)

// Shape names.
const (
	Generic     = "generic"
	Check       = "check"
	Columns     = "columns"
	Development = "development"
)

var (
	ErrUnknownShape = errors.New("unknown shape")
	ErrUnknownField = errors.New("unknown field")
	ErrBadValue     = errors.New("bad field value")
)

// Names lists the shapes in display order.
func Names() []string {
	return []string{Generic, Check, Columns, Development}
}

// Lookup checks that name is a known shape.
func Lookup(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if !slices.Contains(Names(), n) {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownShape, name, strings.Join(Names(), ", "))
	}
	return n, nil
}

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldDate
	FieldNumber
	FieldTech  // checkbox group over model.AllTech
	FieldCheck // single checkbox
)

// Field is one input of the add-row form.
type Field struct {
	Key         string
	Label       string
	Kind        FieldKind
	Placeholder string
}

// Values is the raw state of an add-row form.
type Values struct {
	Text    map[string]string
	Tech    model.TechSet
	Checked bool
}

func (v Values) Get(key string) string { return v.Text[key] }

func (v *Values) Set(key, s string) {
	if v.Text == nil {
		v.Text = map[string]string{}
	}
	v.Text[key] = s
}

// Descriptor describes one table shape.
type Descriptor[R model.Row[R]] struct {
	Name      string
	Title     string
	PageSize  int
	EmptyText string
	Columns   []tablestate.Column[R]
	Fields    []Field
	// Build turns form input into a candidate row. It does not validate.
	Build func(Values) R
	// Progress reads the percentage drawn as a bar outside the TUI.
	Progress func(R) int
	// Checked is set for shapes whose name carries a checkbox.
	Checked func(R) bool
}

// Defaults is the form state a fresh or reset add form starts from.
func (d Descriptor[R]) Defaults() Values {
	v := Values{Text: map[string]string{}, Tech: model.TechSet{}}
	for _, f := range d.Fields {
		switch f.Kind {
		case FieldText, FieldDate:
			v.Text[f.Key] = ""
		case FieldNumber:
			v.Text[f.Key] = "0"
		}
	}
	return v
}

func (d Descriptor[R]) Field(key string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// ParseValues builds form values from "field=value" assignments, starting
// from Defaults. Tech takes a comma separated list, checkboxes take a bool.
func (d Descriptor[R]) ParseValues(assignments []string) (Values, error) {
	v := d.Defaults()
	for _, a := range assignments {
		key, raw, ok := strings.Cut(a, "=")
		if !ok {
			return v, fmt.Errorf("%w: %q is not field=value", ErrBadValue, a)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		f, ok := d.Field(key)
		if !ok {
			return v, fmt.Errorf("%w: %q for %s table", ErrUnknownField, key, d.Name)
		}
		switch f.Kind {
		case FieldTech:
			tech, err := model.ParseTechList(raw)
			if err != nil {
				return v, fmt.Errorf("%w: %w", ErrBadValue, err)
			}
			v.Tech = tech
		case FieldCheck:
			b, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return v, fmt.Errorf("%w: %s=%q", ErrBadValue, key, raw)
			}
			v.Checked = b
		default:
			v.Set(key, raw)
		}
	}
	return v, nil
}

var (
	nameField     = Field{Key: "name", Label: "Name", Kind: FieldText, Placeholder: "Name"}
	techField     = Field{Key: "tech", Label: "Tech", Kind: FieldTech}
	dateField     = Field{Key: "date", Label: "Date", Kind: FieldDate, Placeholder: "YYYY-MM-DD"}
	quantityField = Field{Key: "quantity", Label: "Quantity", Kind: FieldNumber}
	progressField = Field{Key: "progress", Label: "Progress", Kind: FieldNumber}
	checkedField  = Field{Key: "checked", Label: "Checked", Kind: FieldCheck}
)

func progressColumn[R any](get func(R) int) tablestate.Column[R] {
	return tablestate.Column[R]{
		Key:     "progress",
		Header:  "PROGRESS",
		Value:   func(r R) string { return strconv.Itoa(get(r)) + "%" },
		Compare: func(a, b R) int { return cmp.Compare(get(a), get(b)) },
	}
}

func quantityColumn[R any](get func(R) int) tablestate.Column[R] {
	return tablestate.Column[R]{
		Key:     "quantity",
		Header:  "QUANTITY",
		Value:   func(r R) string { return strconv.Itoa(get(r)) },
		Compare: func(a, b R) int { return cmp.Compare(get(a), get(b)) },
	}
}

func textColumn[R any](key, header string, get func(R) string) tablestate.Column[R] {
	return tablestate.Column[R]{Key: key, Header: header, Value: get}
}
