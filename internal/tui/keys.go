package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle    key.Binding
	Reset     key.Binding
	Work      key.Binding
	Break     key.Binding
	LongBreak key.Binding
	NextView  key.Binding
	UpDown    key.Binding
	Enter     key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Work:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "focus")),
		Break:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "short break")),
		LongBreak: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "long break")),
		NextView:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		UpDown:    key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("j/k", "navigate")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit/toggle")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.NextView, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Work, k.Break, k.LongBreak},
		{k.NextView, k.UpDown, k.Enter, k.Back, k.Quit},
	}
}

// settingsHelp is the footer shown on the settings view.
func (k keyMap) settingsHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Enter, k.Back, k.NextView, k.Quit}
}
