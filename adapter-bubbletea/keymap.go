package adapter_bubbletea

import "charm.land/bubbles/v2/key"

// KeyMap holds the key bindings of the editor.
type KeyMap struct {
	Quit      key.Binding
	Suspend   key.Binding
	Command   key.Binding
	Search    key.Binding
	NextMatch key.Binding
	Cancel    key.Binding
	Accept    key.Binding

	Save   key.Binding
	Reload key.Binding
	Split  key.Binding
	Close  key.Binding
	Next   key.Binding
	Prev   key.Binding

	JumpBack    key.Binding
	JumpForward key.Binding
	ChangePrev  key.Binding
	ChangeNext  key.Binding

	Yank           key.Binding
	Paste          key.Binding
	YankClipboard  key.Binding
	PasteClipboard key.Binding

	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	WordLeft      key.Binding
	WordRight     key.Binding
	LineStart     key.Binding
	LineEnd       key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	DocumentStart key.Binding
	DocumentEnd   key.Binding

	Backspace     key.Binding
	Delete        key.Binding
	Newline       key.Binding
	Tab           key.Binding
	ToggleReplace key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Suspend:   key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "suspend")),
		Command:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "command")),
		Search:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "search")),
		NextMatch: key.NewBinding(key.WithKeys("ctrl+g", "f3"), key.WithHelp("ctrl+g", "next match")),
		Cancel:    key.NewBinding(key.WithKeys("esc")),
		Accept:    key.NewBinding(key.WithKeys("enter")),

		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Reload: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Split:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "split")),
		Close:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "close")),
		Next:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next window")),
		Prev:   key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "previous window")),

		JumpBack:    key.NewBinding(key.WithKeys("alt+left"), key.WithHelp("alt+←", "jump back")),
		JumpForward: key.NewBinding(key.WithKeys("alt+right"), key.WithHelp("alt+→", "jump forward")),
		ChangePrev:  key.NewBinding(key.WithKeys("alt+up"), key.WithHelp("alt+↑", "older change")),
		ChangeNext:  key.NewBinding(key.WithKeys("alt+down"), key.WithHelp("alt+↓", "newer change")),

		Yank:           key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "yank line")),
		Paste:          key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		YankClipboard:  key.NewBinding(key.WithKeys("alt+y"), key.WithHelp("alt+y", "yank to clipboard")),
		PasteClipboard: key.NewBinding(key.WithKeys("alt+v"), key.WithHelp("alt+v", "paste clipboard")),

		Up:            key.NewBinding(key.WithKeys("up")),
		Down:          key.NewBinding(key.WithKeys("down")),
		Left:          key.NewBinding(key.WithKeys("left")),
		Right:         key.NewBinding(key.WithKeys("right")),
		WordLeft:      key.NewBinding(key.WithKeys("ctrl+left")),
		WordRight:     key.NewBinding(key.WithKeys("ctrl+right")),
		LineStart:     key.NewBinding(key.WithKeys("home")),
		LineEnd:       key.NewBinding(key.WithKeys("end")),
		PageUp:        key.NewBinding(key.WithKeys("pgup")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown")),
		DocumentStart: key.NewBinding(key.WithKeys("ctrl+home")),
		DocumentEnd:   key.NewBinding(key.WithKeys("ctrl+end")),

		Backspace:     key.NewBinding(key.WithKeys("backspace")),
		Delete:        key.NewBinding(key.WithKeys("delete")),
		Newline:       key.NewBinding(key.WithKeys("enter")),
		Tab:           key.NewBinding(key.WithKeys("tab")),
		ToggleReplace: key.NewBinding(key.WithKeys("insert"), key.WithHelp("ins", "replace mode")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Command, k.Search, k.Save, k.Split, k.Next, k.Close, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Command, k.Search, k.NextMatch, k.Save, k.Reload},
		{k.Split, k.Close, k.Next, k.Prev},
		{k.JumpBack, k.JumpForward, k.ChangePrev, k.ChangeNext},
		{k.Yank, k.Paste, k.YankClipboard, k.PasteClipboard, k.ToggleReplace},
		{k.Suspend, k.Quit},
	}
}
