package tui

import "github.com/charmbracelet/bubbles/key"

type formKeyMap struct {
	Next         key.Binding
	Prev         key.Binding
	Open         key.Binding
	ModeNext     key.Binding
	ModePrev     key.Binding
	DurationNext key.Binding
	DurationPrev key.Binding
	Copy         key.Binding
	Print        key.Binding
	Preview      key.Binding
	Quit         key.Binding
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Next:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:         key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Open:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open picker")),
		ModeNext:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", "mode")),
		ModePrev:     key.NewBinding(key.WithKeys("left", "h")),
		DurationNext: key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "duration")),
		DurationPrev: key.NewBinding(key.WithKeys("[")),
		Copy:         key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Print:        key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "print")),
		Preview:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "preview")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Open, k.Copy, k.Print, k.Preview, k.Quit}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Open},
		{k.ModeNext, k.DurationNext},
		{k.Copy, k.Print, k.Preview, k.Quit},
	}
}

type pickerKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	ToggleGroup key.Binding
	SelectAll   key.Binding
	Clear       key.Binding
	Add         key.Binding
	Done        key.Binding
	Close       key.Binding
}

func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "move")),
		Down:        key.NewBinding(key.WithKeys("down")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		ToggleGroup: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "toggle group")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Clear:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		Add:         key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add")),
		Done:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.ToggleGroup, k.SelectAll, k.Clear, k.Add, k.Done, k.Close}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type previewKeyMap struct {
	Scroll key.Binding
	Back   key.Binding
	Copy   key.Binding
	Print  key.Binding
}

func newPreviewKeyMap() previewKeyMap {
	return previewKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
		Back:   key.NewBinding(key.WithKeys("esc", "ctrl+o"), key.WithHelp("esc", "back to form")),
		Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Print:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "print")),
	}
}

func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Back, k.Copy, k.Print}
}

func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
