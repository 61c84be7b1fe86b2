package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	First   key.Binding
	Second  key.Binding
	Scores  key.Binding
	Reset   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "left", "h"),
			key.WithHelp("↑/↓", "seç"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "right", "l"),
			key.WithHelp("↓", "aşağı"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "tamam"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "geri"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "çıkış"),
		),
		First: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "ilk seçenek"),
		),
		Second: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "ikinci seçenek"),
		),
		Scores: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skorlar"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "sıfırla"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "e", "enter"),
			key.WithHelp("e", "evet"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "h", "esc"),
			key.WithHelp("h", "iptal"),
		),
	}
}
