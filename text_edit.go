//go:build windows

package wuikit

import "github.com/gonutz/w32"

func NewTextEdit() *TextEdit {
	return &TextEdit{}
}

// TextEdit is a multi-line text input. Lines are separated by \r\n,
// Ctrl+Backspace at the start of a line joins it with the previous one.
type TextEdit struct {
	textEditControl
	limit        int
	onTextChange func()
}

func (e *TextEdit) create(id int) {
	e.textEditControl.create(
		id, w32.WS_EX_CLIENTEDGE, "EDIT",
		w32.WS_TABSTOP|w32.WS_VSCROLL|
			w32.ES_LEFT|w32.ES_MULTILINE|w32.ES_AUTOVSCROLL|w32.ES_AUTOHSCROLL|
			w32.ES_WANTRETURN,
	)
	if e.limit != 0 {
		e.SetCharacterLimit(e.limit)
	}
}

func (e *TextEdit) SetCharacterLimit(count int) {
	e.limit = count
	if e.handle != 0 {
		w32.SendMessage(e.handle, w32.EM_SETLIMITTEXT, uintptr(e.limit), 0)
	}
}

func (e *TextEdit) CharacterLimit() int {
	if e.handle != 0 {
		e.limit = int(w32.SendMessage(e.handle, w32.EM_GETLIMITTEXT, 0, 0))
	}
	return e.limit
}

func (e *TextEdit) SetOnTextChange(f func()) {
	e.onTextChange = f
}

func (e *TextEdit) handleNotification(cmd uintptr) {
	if cmd == w32.EN_CHANGE && e.onTextChange != nil {
		e.onTextChange()
	}
}
