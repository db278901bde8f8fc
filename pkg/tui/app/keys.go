package teaui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the dashboard-wide bindings. It implements help.KeyMap for the
// footer.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Search   key.Binding
	Profile  key.Binding
	Help     key.Binding
	Debug    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Close    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Profile:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Debug:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "events")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Search, k.Profile, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.PageUp, k.PageDown},
		{k.Search, k.Profile, k.Help, k.Debug},
		{k.Close, k.Quit},
	}
}
