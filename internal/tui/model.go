// Package tui is the interactive table view: a bubbletea program with a
// search input, a sortable paginated table and an add-row form.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tablekit/internal/model"
	"github.com/Makepad-fr/tablekit/internal/shape"
	"github.com/Makepad-fr/tablekit/internal/store"
	"github.com/Makepad-fr/tablekit/internal/tablestate"
	"github.com/Makepad-fr/tablekit/internal/ui"
)

// ToastDuration is how long a notification stays on screen.
const ToastDuration = 3 * time.Second

type toastExpiredMsg struct{ seq int }

// Option configures a Model.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	setChecked func(index int, checked bool) error
}

// WithLogger routes view events to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithCheckToggle enables the checkbox key; fn flips the checked flag of the
// row at a source index.
func WithCheckToggle(fn func(index int, checked bool) error) Option {
	return func(c *config) { c.setChecked = fn }
}

// Model is the bubbletea model of one table view.
type Model[R model.Row[R]] struct {
	desc  shape.Descriptor[R]
	store *store.Store[R]
	cfg   config

	state   tablestate.State
	sortCol int
	view    tablestate.View[R]

	table     table.Model
	search    textinput.Model
	searching bool

	form   form
	adding bool

	toast    *store.Result
	toastSeq int

	keys     keyMap
	formKeys formKeyMap
	help     help.Model
}

// New builds the view over s. The page size comes from desc.
func New[R model.Row[R]](desc shape.Descriptor[R], s *store.Store[R], opts ...Option) Model[R] {
	cfg := config{}
	for _, fn := range opts {
		fn(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search by name"
	search.CharLimit = 100

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(desc.PageSize+2),
	)
	t.SetStyles(tableStyles())

	f := newForm(desc.Fields, desc.Defaults())
	m := Model[R]{
		desc:     desc,
		store:    s,
		cfg:      cfg,
		state:    tablestate.State{PageSize: desc.PageSize},
		table:    t,
		search:   search,
		form:     f,
		keys:     newKeyMap(desc.Checked != nil && cfg.setChecked != nil),
		formKeys: newFormKeyMap(f.hasField("progress")),
		help:     help.New(),
	}
	m.refresh()
	return m
}

// Run starts the program on the alternate screen.
func Run[R model.Row[R]](desc shape.Descriptor[R], s *store.Store[R], opts ...Option) error {
	p := tea.NewProgram(New(desc, s, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model[R]) Init() tea.Cmd { return nil }

func (m Model[R]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.refresh()
		return m, nil
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil
	case tea.KeyMsg:
		if m.adding {
			return m.updateForm(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateTable(msg)
	}
	return m, nil
}

// add mode
func (m Model[R]) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.form.update(msg)
	switch action {
	case formCancel:
		m.adding = false
		m.form.blur()
		return m, nil
	case formSubmit:
		res, err := m.store.Add(m.desc.Build(m.form.values()))
		if err != nil {
			m.form.errors = res.Errors
			cmd := m.notify(res)
			return m, cmd
		}
		m.form.reset()
		m.form.blur()
		m.adding = false
		m.refresh()
		cmd := m.notify(res)
		return m, cmd
	}
	return m, cmd
}

// search mode
func (m Model[R]) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.state.SetFilter(m.search.Value())
	m.refresh()
	return m, cmd
}

func (m Model[R]) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.form.errors = nil
		return m, m.form.setFocus(0)
	case key.Matches(msg, m.keys.Remove):
		idx, ok := m.selected()
		if !ok {
			return m, nil
		}
		res, err := m.store.Remove(idx)
		if err != nil {
			m.cfg.logger.Error("remove row", "index", idx, "err", err)
			return m, nil
		}
		m.refresh()
		cmd := m.notify(res)
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		idx, ok := m.selected()
		if !ok {
			return m, nil
		}
		row, err := m.store.At(idx)
		if err == nil {
			err = m.cfg.setChecked(idx, !m.desc.Checked(row))
		}
		if err != nil {
			m.cfg.logger.Error("toggle row", "index", idx, "err", err)
		}
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.SortPrev):
		m.sortCol = (m.sortCol + len(m.desc.Columns) - 1) % len(m.desc.Columns)
		return m, nil
	case key.Matches(msg, m.keys.SortNext):
		m.sortCol = (m.sortCol + 1) % len(m.desc.Columns)
		return m, nil
	case key.Matches(msg, m.keys.Sort):
		m.state.ToggleSort(m.desc.Columns[m.sortCol].Key)
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		if m.view.Page < m.view.PageCount-1 {
			m.state.Page = m.view.Page + 1
			m.table.SetCursor(0)
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.PrevPage):
		if m.view.Page > 0 {
			m.state.Page = m.view.Page - 1
			m.table.SetCursor(0)
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up, m.keys.Down):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// selected maps the highlighted table line to its index in the store.
func (m Model[R]) selected() (int, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.view.Entries) {
		return 0, false
	}
	return m.view.Entries[c].Index, true
}

// notify shows res as a toast and schedules its expiry.
func (m *Model[R]) notify(res store.Result) tea.Cmd {
	m.toastSeq++
	m.toast = &res
	seq := m.toastSeq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

// refresh recomputes the visible page from the store.
func (m *Model[R]) refresh() {
	m.view = tablestate.Compute(m.store.Rows(), m.desc.Columns, m.state)
	m.state.Page = m.view.Page

	rows := make([]table.Row, len(m.view.Entries))
	widths := make([]int, len(m.desc.Columns))
	for j, c := range m.desc.Columns {
		widths[j] = lipgloss.Width(c.Header)
	}
	for i, e := range m.view.Entries {
		row := make(table.Row, len(m.desc.Columns))
		for j, c := range m.desc.Columns {
			cell := c.Value(e.Row)
			if c.Key == "name" && m.desc.Checked != nil {
				cell = ui.Box(m.desc.Checked(e.Row)) + " " + cell
			}
			row[j] = cell
			widths[j] = max(widths[j], lipgloss.Width(cell))
		}
		rows[i] = row
	}

	cols := make([]table.Column, len(m.desc.Columns))
	for j, c := range m.desc.Columns {
		cols[j] = table.Column{Title: c.Header, Width: widths[j] + 2}
	}
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	if n := len(rows); m.table.Cursor() >= n {
		m.table.SetCursor(max(0, n-1))
	}
}

func (m Model[R]) View() string {
	var b strings.Builder

	header := fmt.Sprintf("%s   %s %d", titleStyle.Render(m.desc.Title), accentStyle.Render("Total"), m.store.Len())
	b.WriteString(header + "\n\n")
	b.WriteString(m.search.View() + "\n\n")

	if len(m.view.Entries) == 0 {
		b.WriteString(mutedStyle.Render(m.desc.EmptyText) + "\n")
	} else {
		b.WriteString(m.table.View() + "\n")
	}
	b.WriteString(mutedStyle.Render(m.status()) + "\n")

	if m.toast != nil {
		b.WriteString("\n" + renderToast(*m.toast) + "\n")
	}
	if m.adding {
		b.WriteString("\n" + m.form.view() + "\n")
		b.WriteString("\n" + m.help.View(m.formKeys))
	} else {
		b.WriteString("\n" + m.help.View(m.keys))
	}
	return panelStyle.Render(b.String())
}

func (m Model[R]) status() string {
	parts := []string{
		fmt.Sprintf("page %d/%d", m.view.Page+1, m.view.PageCount),
		fmt.Sprintf("%d of %d rows", m.view.Matched, m.view.Total),
	}
	col := m.desc.Columns[m.sortCol]
	switch {
	case m.state.SortKey == col.Key && m.state.SortDesc:
		parts = append(parts, "sort "+col.Header+" ↓")
	case m.state.SortKey == col.Key:
		parts = append(parts, "sort "+col.Header+" ↑")
	default:
		parts = append(parts, "sort "+col.Header)
	}
	return strings.Join(parts, " · ")
}

func renderToast(r store.Result) string {
	line := r.Title
	if r.Description != "" {
		line += " " + r.Description
	}
	switch r.Status {
	case store.StatusSuccess:
		return successStyle.Render("✔ " + line)
	case store.StatusError:
		return errorStyle.Render("✖ " + line)
	default:
		return infoStyle.Render("ℹ " + line)
	}
}
