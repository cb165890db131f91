package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	play    key.Binding
	shuffle key.Binding
	repeat  key.Binding
	volUp   key.Binding
	volDown key.Binding
	restart key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		play:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
		shuffle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		repeat:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "repeat")),
		volUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "vol up")),
		volDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "vol down")),
		restart: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.play},
		{k.shuffle, k.repeat},
		{k.volUp, k.volDown},
		{k.restart, k.quit},
	}
}
