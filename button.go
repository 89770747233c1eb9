//go:build windows

package wuikit

import "github.com/gonutz/w32"

func NewButton() *Button {
	return &Button{}
}

type Button struct {
	textControl
	isDefault bool
	onClick   func()
}

func (b *Button) create(id int) {
	style := uint(w32.WS_TABSTOP | bsPushButton)
	if b.isDefault {
		style = w32.WS_TABSTOP | w32.BS_DEFPUSHBUTTON
	}
	b.textControl.create(id, 0, "BUTTON", style)
}

// SetDefault draws the button with the thick default border. It does not make
// Enter click it, use Window.SetOnEnter for that.
func (b *Button) SetDefault(isDefault bool) {
	b.isDefault = isDefault
	if b.handle != 0 {
		style := uintptr(bsPushButton)
		if isDefault {
			style = w32.BS_DEFPUSHBUTTON
		}
		w32.SendMessage(b.handle, bmSetStyle, style, 1)
	}
}

func (b *Button) IsDefault() bool {
	return b.isDefault
}

func (b *Button) SetOnClick(f func()) {
	b.onClick = f
}

func (b *Button) OnClick() func() {
	return b.onClick
}

func (b *Button) handleNotification(cmd uintptr) {
	if cmd == bnClicked && b.onClick != nil {
		b.onClick()
	}
}
