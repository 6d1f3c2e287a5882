package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Preview key.Binding
	Apply   key.Binding
	Open    key.Binding
	Refresh key.Binding
	Up      key.Binding
	Down    key.Binding
	UseDir  key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Preview: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "preview")),
		Apply:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "apply rename")),
		Open:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "select folder")),
		Refresh: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "rescan")),
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "scroll preview")),
		Down:    key.NewBinding(key.WithKeys("down")),
		UseDir:  key.NewBinding(key.WithKeys("."), key.WithHelp(".", "use this folder")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// helpKeys adapts a set of bindings to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k keyMap) editHelp() helpKeys {
	return helpKeys{k.Preview, k.Apply, k.Next, k.Open, k.Refresh, k.Up, k.Quit}
}

func (k keyMap) pickHelp() helpKeys {
	return helpKeys{k.UseDir, k.Cancel, k.Quit}
}
