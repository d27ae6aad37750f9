package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tablekit/internal/model"
	"github.com/Makepad-fr/tablekit/internal/shape"
	"github.com/Makepad-fr/tablekit/internal/ui"
)

// form is the add-row modal. Its input survives a cancel and is reset only
// after a successful add.
type form struct {
	fields   []shape.Field
	inputs   []textinput.Model // one per field; unused for checkbox kinds
	tech     model.TechSet
	checked  bool
	focus    int
	techPos  int
	errors   map[string]string
	defaults shape.Values
}

type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
)

func newForm(fields []shape.Field, defaults shape.Values) form {
	f := form{
		fields:   fields,
		inputs:   make([]textinput.Model, len(fields)),
		defaults: defaults,
	}
	for i, fd := range fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = fd.Placeholder
		ti.CharLimit = 200
		f.inputs[i] = ti
	}
	f.reset()
	return f
}

// reset restores the shape defaults and clears field errors.
func (f *form) reset() {
	for i, fd := range f.fields {
		f.inputs[i].SetValue(f.defaults.Get(fd.Key))
	}
	f.tech = append(model.TechSet{}, f.defaults.Tech...)
	f.checked = f.defaults.Checked
	f.errors = nil
	f.techPos = 0
}

func (f form) values() shape.Values {
	v := shape.Values{Text: map[string]string{}, Tech: f.tech, Checked: f.checked}
	for i, fd := range f.fields {
		switch fd.Kind {
		case shape.FieldText, shape.FieldDate, shape.FieldNumber:
			v.Text[fd.Key] = strings.TrimSpace(f.inputs[i].Value())
		}
	}
	return v
}

func (f form) current() shape.Field { return f.fields[f.focus] }

func (f *form) setFocus(i int) tea.Cmd {
	n := len(f.fields)
	f.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus && isTextKind(f.fields[j].Kind) {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *form) blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}

// fillProgress sets the progress input to 100.
func (f *form) fillProgress() {
	for i, fd := range f.fields {
		if fd.Key == "progress" {
			f.inputs[i].SetValue("100")
		}
	}
}

func (f form) hasField(key string) bool {
	for _, fd := range f.fields {
		if fd.Key == key {
			return true
		}
	}
	return false
}

func (f *form) update(msg tea.KeyMsg) (formAction, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return formSubmit, nil
	case "esc":
		return formCancel, nil
	case "tab", "down":
		return formNone, f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return formNone, f.setFocus(f.focus - 1)
	case "ctrl+f":
		f.fillProgress()
		return formNone, nil
	}

	switch f.current().Kind {
	case shape.FieldTech:
		switch msg.String() {
		case "left", "h":
			f.techPos = (f.techPos + len(model.AllTech) - 1) % len(model.AllTech)
		case "right", "l":
			f.techPos = (f.techPos + 1) % len(model.AllTech)
		case " ":
			f.tech = f.tech.Toggle(model.AllTech[f.techPos])
		}
		return formNone, nil
	case shape.FieldCheck:
		if msg.String() == " " {
			f.checked = !f.checked
		}
		return formNone, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return formNone, cmd
}

func (f form) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add New Row"))
	b.WriteString("\n")
	for i, fd := range f.fields {
		label := labelStyle.Render(fd.Label)
		if i == f.focus {
			label = focusStyle.Render(fd.Label)
		}
		b.WriteString("\n" + label + "\n")

		switch fd.Kind {
		case shape.FieldTech:
			parts := make([]string, len(model.AllTech))
			for j, t := range model.AllTech {
				item := ui.Box(f.tech.Has(t)) + " " + string(t)
				if i == f.focus && j == f.techPos {
					item = focusStyle.Render(item)
				}
				parts[j] = item
			}
			b.WriteString("  " + strings.Join(parts, "   "))
		case shape.FieldCheck:
			b.WriteString("  " + ui.Box(f.checked))
		default:
			b.WriteString(f.inputs[i].View())
		}
		if msg, ok := f.errors[fd.Key]; ok {
			b.WriteString("\n" + errorStyle.Render(msg))
		}
		b.WriteString("\n")
	}
	return modalStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func isTextKind(k shape.FieldKind) bool {
	return k == shape.FieldText || k == shape.FieldDate || k == shape.FieldNumber
}
