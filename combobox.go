//go:build windows

package wuikit

import (
	"syscall"
	"unsafe"

	"github.com/gonutz/w32"
)

func NewComboBox() *ComboBox {
	return &ComboBox{selected: -1}
}

// ComboBox is a drop-down list of strings, only the items can be chosen.
type ComboBox struct {
	textControl
	items    []string
	selected int
	onChange func(newIndex int)
}

var _ ItemList = (*ComboBox)(nil)

func (e *ComboBox) create(id int) {
	e.textControl.create(
		id,
		w32.WS_EX_CLIENTEDGE,
		"COMBOBOX",
		w32.WS_TABSTOP|w32.WS_VSCROLL|w32.CBS_DROPDOWNLIST,
	)
	for _, s := range e.items {
		addString(e.handle, w32.CB_ADDSTRING, s)
	}
	e.SetSelectedIndex(e.selected)
}

// addString sends msg with a UTF-16 copy of s, the list controls copy the
// string themselves.
func addString(handle w32.HWND, msg uint32, s string) {
	ptr, err := syscall.UTF16PtrFromString(s)
	if err != nil {
		componentLogger("items").Warn().Err(err).Str("item", s).Msg("item skipped")
		return
	}
	w32.SendMessage(handle, msg, 0, uintptr(unsafe.Pointer(ptr)))
}

func (e *ComboBox) AddItem(s string) {
	e.items = append(e.items, s)
	if e.handle != 0 {
		addString(e.handle, w32.CB_ADDSTRING, s)
	}
}

func (e *ComboBox) Items() []string {
	return e.items
}

func (e *ComboBox) SetItems(items []string) {
	e.items = append([]string(nil), items...)
	if e.handle != 0 {
		w32.SendMessage(e.handle, w32.CB_RESETCONTENT, 0, 0)
		for _, s := range e.items {
			addString(e.handle, w32.CB_ADDSTRING, s)
		}
	}
}

func (e *ComboBox) SelectedIndex() int {
	if e.handle != 0 {
		e.selected = int(int32(w32.SendMessage(e.handle, w32.CB_GETCURSEL, 0, 0)))
	}
	return e.selected
}

// SetSelectedIndex sets the current index. Set -1 to remove any selection and
// make the combo box empty. Values < -1 are set to -1. The index is not
// clamped to the number of items so items and index can be set in any order,
// at runtime an invalid index reads back as -1.
func (e *ComboBox) SetSelectedIndex(i int) {
	if i < -1 {
		i = -1
	}
	e.selected = i
	if e.handle != 0 {
		w32.SendMessage(e.handle, w32.CB_SETCURSEL, uintptr(i), 0)
	}
}

func (e *ComboBox) SetOnChange(f func(newIndex int)) {
	e.onChange = f
}

func (e *ComboBox) handleNotification(cmd uintptr) {
	if cmd == w32.CBN_SELCHANGE && e.onChange != nil {
		e.onChange(e.SelectedIndex())
	}
}
