package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	TabIndex  key.Binding
	DayView   key.Binding
	WeekView  key.Binding
	MonthView key.Binding
	Prev      key.Binding
	Next      key.Binding
	Today     key.Binding
	AddEvent  key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Delete    key.Binding
	Close     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		TabIndex:  key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "pick view")),
		DayView:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day")),
		WeekView:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week")),
		MonthView: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month")),
		Prev:      key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[", "previous")),
		Next:      key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]", "next")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		AddEvent:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add event")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TabIndex, k.Prev, k.Next, k.Today, k.AddEvent, k.Open, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.TabIndex, k.DayView, k.WeekView, k.MonthView},
		{k.Prev, k.Next, k.Today, k.Left, k.Right, k.Up, k.Down},
		{k.AddEvent, k.Open, k.Delete, k.Close, k.Quit},
	}
}

// modalKeys is the help shown while a modal owns the keyboard.
type modalKeys struct {
	bindings []key.Binding
}

func (k modalKeys) ShortHelp() []key.Binding  { return k.bindings }
func (k modalKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.bindings} }
