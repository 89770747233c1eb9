//go:build windows

package wuikit

import "github.com/gonutz/w32"

func NewListBox() *ListBox {
	return &ListBox{selected: -1}
}

// ListBox shows all its items at once, scrolling if they do not fit.
type ListBox struct {
	textControl
	items    []string
	selected int
	onChange func(newIndex int)
}

var _ ItemList = (*ListBox)(nil)

func (l *ListBox) create(id int) {
	l.textControl.create(
		id,
		w32.WS_EX_CLIENTEDGE,
		"LISTBOX",
		w32.WS_VSCROLL|w32.WS_TABSTOP|lbsNotify,
	)
	for _, s := range l.items {
		addString(l.handle, lbAddString, s)
	}
	l.SetSelectedIndex(l.selected)
}

func (l *ListBox) AddItem(s string) {
	l.items = append(l.items, s)
	if l.handle != 0 {
		addString(l.handle, lbAddString, s)
	}
}

func (l *ListBox) Items() []string {
	return l.items
}

func (l *ListBox) SetItems(items []string) {
	l.items = append([]string(nil), items...)
	if l.handle != 0 {
		w32.SendMessage(l.handle, lbResetContent, 0, 0)
		for _, s := range l.items {
			addString(l.handle, lbAddString, s)
		}
	}
}

func (l *ListBox) SelectedIndex() int {
	if l.handle != 0 {
		l.selected = int(int32(w32.SendMessage(l.handle, lbGetCurSel, 0, 0)))
	}
	return l.selected
}

// SetSelectedIndex works like ComboBox.SetSelectedIndex.
func (l *ListBox) SetSelectedIndex(i int) {
	if i < -1 {
		i = -1
	}
	l.selected = i
	if l.handle != 0 {
		w32.SendMessage(l.handle, lbSetCurSel, uintptr(i), 0)
	}
}

func (l *ListBox) SetOnChange(f func(newIndex int)) {
	l.onChange = f
}

func (l *ListBox) handleNotification(cmd uintptr) {
	if cmd == lbnSelChange && l.onChange != nil {
		l.onChange(l.SelectedIndex())
	}
}
