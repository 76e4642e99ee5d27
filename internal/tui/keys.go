package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Shorter     key.Binding
	Longer      key.Binding
	MuchShorter key.Binding
	MuchLonger  key.Binding
	Digits      key.Binding
	Symbols     key.Binding
	Copy        key.Binding
	Regenerate  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Shorter: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "shorter"),
		),
		Longer: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→/l", "longer"),
		),
		MuchShorter: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←", "-10"),
		),
		MuchLonger: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→", "+10"),
		),
		Digits: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "numbers"),
		),
		Symbols: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "characters"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "copy"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "regenerate"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shorter, k.Longer, k.Digits, k.Symbols, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shorter, k.Longer, k.MuchShorter, k.MuchLonger},
		{k.Digits, k.Symbols, k.Regenerate},
		{k.Copy, k.Help, k.Quit},
	}
}
