package tui

import "github.com/charmbracelet/bubbles/key"

// Key maps implement help.KeyMap so each widget can render its own footer.

type entryKeyMap struct {
	Commit key.Binding
	Cancel key.Binding
}

func defaultEntryKeyMap() entryKeyMap {
	return entryKeyMap{
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k entryKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Commit, k.Cancel} }
func (k entryKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type dateKeyMap struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	FirstDay  key.Binding
	LastDay   key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	EditYear  key.Binding
}

func defaultDateKeyMap() dateKeyMap {
	return dateKeyMap{
		PrevDay:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		PrevWeek:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		NextWeek:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		FirstDay:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first day")),
		LastDay:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last day")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		PrevYear:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "prev year")),
		NextYear:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next year")),
		EditYear:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "type year")),
	}
}

func (k dateKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.PrevMonth, k.NextMonth, k.EditYear}
}

func (k dateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek},
		{k.FirstDay, k.LastDay},
		{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear},
		{k.EditYear},
	}
}

type timeKeyMap struct {
	PrevField  key.Binding
	NextField  key.Binding
	Increment  key.Binding
	Decrement  key.Binding
	EditHour   key.Binding
	EditMinute key.Binding
}

func defaultTimeKeyMap() timeKeyMap {
	return timeKeyMap{
		PrevField:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "hour")),
		NextField:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "minute")),
		Increment:  key.NewBinding(key.WithKeys("up", "+", "k"), key.WithHelp("↑/+", "step up")),
		Decrement:  key.NewBinding(key.WithKeys("down", "-", "j"), key.WithHelp("↓/-", "step down")),
		EditHour:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "type hour")),
		EditMinute: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "type minute")),
	}
}

func (k timeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.EditHour, k.EditMinute}
}

func (k timeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevField, k.NextField},
		{k.Increment, k.Decrement},
		{k.EditHour, k.EditMinute},
	}
}

type momentKeyMap struct {
	Open    key.Binding
	Close   key.Binding
	Confirm key.Binding
	Focus   key.Binding
	Help    key.Binding
}

func defaultMomentKeyMap() momentKeyMap {
	return momentKeyMap{
		Open:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Confirm: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "confirm")),
		Focus:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "date/time")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

func (k momentKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Confirm, k.Close, k.Help}
}

func (k momentKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Focus, k.Confirm, k.Close, k.Help}}
}
