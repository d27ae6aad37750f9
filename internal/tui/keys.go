package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the table-view bindings. It satisfies help.KeyMap.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Search   key.Binding
	Add      key.Binding
	Remove   key.Binding
	Toggle   key.Binding
	SortPrev key.Binding
	SortNext key.Binding
	Sort     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap(checkable bool) keyMap {
	k := keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add row")),
		Remove:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove row")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "check")),
		SortPrev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "sort column")),
		SortNext: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "sort column")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		NextPage: key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev page")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	k.Toggle.SetEnabled(checkable)
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Add, k.Remove, k.Toggle, k.Sort, k.NextPage, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.Search, k.SortPrev, k.SortNext, k.Sort},
		{k.Add, k.Remove, k.Toggle},
		{k.Help, k.Quit},
	}
}

// formKeyMap is shown while the add-row form is open.
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Fill   key.Binding
	Save   key.Binding
	Cancel key.Binding
}

func newFormKeyMap(hasProgress bool) formKeyMap {
	k := formKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Fill:   key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "progress 100%")),
		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
	k.Fill.SetEnabled(hasProgress)
	return k
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Toggle, k.Fill, k.Save, k.Cancel}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
