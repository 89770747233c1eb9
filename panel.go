//go:build windows

package wuikit

import (
	"syscall"

	"github.com/gonutz/w32"
)

func NewPanel() *Panel {
	return &Panel{background: ColorButtonFace}
}

// Panel groups child controls. It reports pointer events so it can serve as
// the drag handle of a borderless window.
type Panel struct {
	control
	pointerEvents
	border     panelBorder
	children   []Control
	font       *Font
	background Color
	brush      w32.HBRUSH
	cursor     *Cursor
	onResize   func()
}

type panelBorder int

const (
	borderNone panelBorder = iota
	borderSingleLine
	borderSunken
	borderSunkenThick
	borderRaised
)

func borderStyleEx(b panelBorder) uint {
	switch b {
	case borderSunken:
		return w32.WS_EX_STATICEDGE
	case borderSunkenThick:
		return w32.WS_EX_CLIENTEDGE
	}
	return 0
}

func borderStyle(b panelBorder) uint {
	switch b {
	case borderSingleLine:
		return w32.WS_BORDER
	case borderRaised:
		return w32.WS_DLGFRAME
	}
	return 0
}

func (p *Panel) create(id int) {
	p.createWith(id, 0, nil)
}

// msgHook lets controls built on a Panel handle messages before the Panel
// does. It reports whether it handled msg.
type msgHook func(window w32.HWND, msg uint32, wParam, lParam uintptr) (uintptr, bool)

func (p *Panel) createWith(id int, style uint, hook msgHook) {
	p.control.create(
		id,
		borderStyleEx(p.border),
		"STATIC",
		ssNotify|borderStyle(p.border)|style,
	)
	w32.SetWindowSubclass(p.handle, syscall.NewCallback(func(
		window w32.HWND,
		msg uint32,
		wParam, lParam uintptr,
		subclassID uintptr,
		refData uintptr,
	) uintptr {
		if hook != nil {
			if ret, ok := hook(window, msg, wParam, lParam); ok {
				return ret
			}
		}
		if ret, ok := p.handleContainerMsg(window, msg, wParam, lParam); ok {
			return ret
		}
		if p.handleMouse(window, msg, lParam) || handleSetCursor(p.cursor, msg) {
			return 0
		}
		switch msg {
		case wmEraseBkgnd:
			if p.brush == 0 {
				p.brush = createSolidBrush(p.background)
			}
			fillRect(w32.HDC(wParam), w32.GetClientRect(window), p.brush)
			return 1
		case w32.WM_SIZE:
			if p.onResize != nil {
				p.onResize()
			}
			w32.InvalidateRect(window, nil, true)
			return 0
		}
		return w32.DefSubclassProc(window, msg, wParam, lParam)
	}), 0, 0)
	for _, c := range p.children {
		c.create(p.registerControl(c))
	}
}

// handleContainerMsg passes notifications of child controls up to the window
// which knows all control IDs.
func (p *Panel) handleContainerMsg(window w32.HWND, msg uint32, wParam, lParam uintptr) (uintptr, bool) {
	switch msg {
	case w32.WM_COMMAND:
		p.onWM_COMMAND(wParam, lParam)
		return 0, true
	case w32.WM_NOTIFY:
		p.onWM_NOTIFY(wParam, lParam)
		return 0, true
	case w32.WM_DRAWITEM:
		p.onWM_DRAWITEM(wParam, lParam)
		return 1, true
	case wmHScroll, wmVScroll:
		if lParam != 0 {
			p.onScroll(wParam, lParam)
			return 0, true
		}
	}
	return 0, false
}

func (p *Panel) getHandle() w32.HWND {
	return p.handle
}

func (p *Panel) getInstance() w32.HINSTANCE {
	return p.parent.getInstance()
}

func (p *Panel) setBorder(b panelBorder) {
	p.border = b
	if p.handle != 0 {
		style := uint(w32.GetWindowLongPtr(p.handle, w32.GWL_STYLE))
		style = style &^ w32.WS_BORDER &^ w32.WS_DLGFRAME
		style |= borderStyle(b)
		w32.SetWindowLongPtr(p.handle, w32.GWL_STYLE, uintptr(style))

		exStyle := uint(w32.GetWindowLongPtr(p.handle, w32.GWL_EXSTYLE))
		exStyle = exStyle &^ w32.WS_EX_STATICEDGE &^ w32.WS_EX_CLIENTEDGE
		exStyle |= borderStyleEx(b)
		w32.SetWindowLongPtr(p.handle, w32.GWL_EXSTYLE, uintptr(exStyle))

		w32.InvalidateRect(p.parent.getHandle(), nil, true)
	}
}

func (p *Panel) SetNoBorder() {
	p.setBorder(borderNone)
}

func (p *Panel) SetSingleLineBorder() {
	p.setBorder(borderSingleLine)
}

func (p *Panel) SetSunkenBorder() {
	p.setBorder(borderSunken)
}

func (p *Panel) SetSunkenThickBorder() {
	p.setBorder(borderSunkenThick)
}

func (p *Panel) SetRaisedBorder() {
	p.setBorder(borderRaised)
}

func (p *Panel) Background() Color {
	return p.background
}

func (p *Panel) SetBackground(c Color) {
	p.background = c
	if p.brush != 0 {
		w32.DeleteObject(w32.HGDIOBJ(p.brush))
		p.brush = 0
	}
	if p.handle != 0 {
		w32.InvalidateRect(p.handle, nil, true)
	}
}

// SetCursor sets the cursor shown while the mouse is over the panel.
func (p *Panel) SetCursor(c *Cursor) {
	p.cursor = c
}

func (p *Panel) Add(c Control) {
	c.setParent(p)
	p.children = append(p.children, c)
	if p.handle != 0 {
		c.create(p.registerControl(c))
	}
}

func (p *Panel) onWM_COMMAND(w, l uintptr) {
	p.parent.onWM_COMMAND(w, l)
}

func (p *Panel) onWM_NOTIFY(w, l uintptr) {
	p.parent.onWM_NOTIFY(w, l)
}

func (p *Panel) onWM_DRAWITEM(w, l uintptr) {
	p.parent.onWM_DRAWITEM(w, l)
}

func (p *Panel) onScroll(w, l uintptr) {
	p.parent.onScroll(w, l)
}

func (p *Panel) registerControl(c Control) int {
	return p.parent.registerControl(c)
}

func (p *Panel) Font() *Font {
	if p.font == nil && p.parent != nil {
		return p.parent.Font()
	}
	return p.font
}

func (p *Panel) SetFont(f *Font) {
	p.font = f
	for _, c := range p.children {
		c.parentFontChanged()
	}
}

func (p *Panel) parentFontChanged() {
	for _, c := range p.children {
		c.parentFontChanged()
	}
}

func (p *Panel) SetOnResize(f func()) {
	p.onResize = f
}
