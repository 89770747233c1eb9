//go:build windows

package wuikit

import (
	"syscall"
	"unsafe"

	"github.com/gonutz/w32"
)

// Control is anything that can be added to a Window, Panel or RoundedPanel.
type Control interface {
	setParent(parent container)
	create(id int)
	parentFontChanged()
}

// Container holds child controls.
type Container interface {
	Add(Control)
}

type container interface {
	getHandle() w32.HWND
	getInstance() w32.HINSTANCE
	Font() *Font
	registerControl(c Control) int
	onWM_COMMAND(w, l uintptr)
	onWM_NOTIFY(w, l uintptr)
	onWM_DRAWITEM(w, l uintptr)
	onScroll(w, l uintptr)
}

// Controls that react to WM_COMMAND notifications implement commandHandler,
// cmd is the notification code from the high word of wParam.
type commandHandler interface {
	handleNotification(cmd uintptr)
}

type notifyHandler interface {
	handleNotify(code uint32, lParam uintptr)
}

// Scroll notifications carry the sender's handle instead of its ID.
type scrollHandler interface {
	scrollHandle() w32.HWND
	handleScroll(reason uintptr)
}

type itemDrawer interface {
	drawItem(item *w32.DRAWITEMSTRUCT)
}

type control struct {
	handle   w32.HWND
	id       int
	x        int
	y        int
	width    int
	height   int
	parent   container
	disabled bool
	hidden   bool
}

func (c *control) setParent(parent container) {
	c.parent = parent
}

func (c *control) create(id int, exStyle uint, className string, style uint) {
	var visible uint
	if !c.hidden {
		visible = w32.WS_VISIBLE
	}
	c.id = id
	c.handle = w32.CreateWindowExStr(
		exStyle,
		className,
		"",
		visible|w32.WS_CHILD|style,
		c.x, c.y, c.width, c.height,
		c.parent.getHandle(), w32.HMENU(id), c.parent.getInstance(), nil,
	)
	if c.disabled {
		w32.EnableWindow(c.handle, false)
	}
}

func (c *control) parentFontChanged() {}

func (c *control) X() int {
	return c.x
}

func (c *control) Y() int {
	return c.y
}

func (c *control) Pos() (x, y int) {
	return c.x, c.y
}

func (c *control) SetPos(x, y int) {
	c.SetBounds(x, y, c.width, c.height)
}

func (c *control) Width() int {
	return c.width
}

func (c *control) Height() int {
	return c.height
}

func (c *control) Size() (width, height int) {
	return c.width, c.height
}

func (c *control) SetSize(width, height int) {
	c.SetBounds(c.x, c.y, width, height)
}

func (c *control) Bounds() (x, y, width, height int) {
	return c.x, c.y, c.width, c.height
}

func (c *control) SetBounds(x, y, width, height int) {
	c.x, c.y, c.width, c.height = x, y, width, height
	if c.handle != 0 {
		w32.SetWindowPos(
			c.handle, 0,
			c.x, c.y, c.width, c.height,
			w32.SWP_NOOWNERZORDER|w32.SWP_NOZORDER,
		)
	}
}

func (c *control) Enabled() bool {
	return !c.disabled
}

func (c *control) SetEnabled(e bool) {
	c.disabled = !e
	if c.handle != 0 {
		w32.EnableWindow(c.handle, e)
	}
}

func (c *control) Visible() bool {
	return !c.hidden
}

func (c *control) SetVisible(v bool) {
	c.hidden = !v
	if c.handle != 0 {
		if v {
			w32.ShowWindow(c.handle, w32.SW_SHOW)
		} else {
			w32.ShowWindow(c.handle, w32.SW_HIDE)
		}
	}
}

func (c *control) Focus() {
	if c.handle != 0 {
		w32.SetFocus(c.handle)
	}
}

// notifyParentChanged sends EN_CHANGE to the parent the way the edit control
// would have done itself.
func (c *control) notifyParentChanged() {
	if c.parent != nil && c.handle != 0 {
		w32.SendMessage(
			c.parent.getHandle(),
			w32.WM_COMMAND,
			uintptr(c.id)&0xFFFF|(w32.EN_CHANGE<<16),
			uintptr(c.handle),
		)
	}
}

type textControl struct {
	control
	text string
	font *Font
}

func (c *textControl) create(id int, exStyle uint, className string, style uint) {
	c.control.create(id, exStyle, className, style)
	w32.SetWindowText(c.handle, c.text)
	c.SetFont(c.font)
}

func (c *textControl) Text() string {
	if c.handle != 0 {
		c.text = w32.GetWindowText(c.handle)
	}
	return c.text
}

func (c *textControl) SetText(text string) {
	c.text = text
	if c.handle != 0 {
		w32.SetWindowText(c.handle, text)
	}
}

func (c *textControl) Font() *Font {
	return c.font
}

func (c *textControl) parentFontChanged() {
	c.SetFont(c.font)
}

func (c *textControl) SetFont(font *Font) {
	c.font = font
	if c.handle != 0 {
		w32.SendMessage(c.handle, w32.WM_SETFONT, uintptr(c.fontHandle()), 1)
	}
}

func (c *textControl) fontHandle() w32.HFONT {
	if c.font != nil {
		return c.font.handle
	}
	if c.parent != nil {
		if font := c.parent.Font(); font != nil {
			return font.handle
		}
	}
	return 0
}

// textEditControl is an EDIT control that deletes whole words on
// Ctrl+Backspace and selects everything on Ctrl+A.
type textEditControl struct {
	textControl
	cursorStart int
	cursorEnd   int
}

func (c *textEditControl) create(id int, exStyle uint, className string, style uint) {
	c.textControl.create(id, exStyle, className, style)
	if c.cursorStart != 0 || c.cursorEnd != 0 {
		c.setCursor(c.cursorStart, c.cursorEnd)
	}
	w32.SetWindowSubclass(c.handle, syscall.NewCallback(func(
		window w32.HWND,
		msg uint32,
		wParam, lParam uintptr,
		subclassID uintptr,
		refData uintptr,
	) uintptr {
		if msg == w32.WM_CHAR && c.handleEditKey(wParam) {
			return 0
		}
		return w32.DefSubclassProc(window, msg, wParam, lParam)
	}), 0, 0)
}

// These are the WM_CHAR codes for the control key combinations.
const (
	charCtrlA         = 1
	charCtrlBackspace = 127
)

func (c *textEditControl) handleEditKey(char uintptr) bool {
	switch char {
	case charCtrlA:
		c.SelectAll()
		return true
	case charCtrlBackspace:
		text := []rune(c.Text())
		start, end := c.CursorPosition()
		var newText string
		var newCursor int
		if start != end {
			newText, newCursor = deleteSelection(text, start, end)
		} else {
			newText, newCursor = deleteWordBeforeCursor(text, start)
		}
		c.SetText(newText)
		c.SetCursorPosition(newCursor)
		// Swallowing the key also swallows the EN_CHANGE the edit control
		// would have sent.
		c.notifyParentChanged()
		return true
	}
	return false
}

// CursorPosition returns the current cursor position, respectively the current
// selection.
//
// If no selection is active, the returned start and end values are the same.
// They then indicate the index of the character in Text() before which the
// caret is currently set. If a selection is active, start is the index of the
// first selected character and end is one after the last.
func (c *textEditControl) CursorPosition() (start, end int) {
	if c.handle != 0 {
		var s, e uint32
		w32.SendMessage(
			c.handle,
			w32.EM_GETSEL,
			uintptr(unsafe.Pointer(&s)),
			uintptr(unsafe.Pointer(&e)),
		)
		c.cursorStart, c.cursorEnd = int(s), int(e)
	}
	return c.cursorStart, c.cursorEnd
}

func (c *textEditControl) SetCursorPosition(pos int) {
	c.setCursor(pos, pos)
}

func (c *textEditControl) SetSelection(start, end int) {
	c.setCursor(start, end)
}

func (c *textEditControl) SelectAll() {
	c.setCursor(0, len([]rune(c.Text())))
}

func (c *textEditControl) setCursor(start, end int) {
	if c.handle != 0 {
		c.cursorStart, c.cursorEnd = start, end
		w32.SendMessage(c.handle, w32.EM_SETSEL, uintptr(start), uintptr(end))
	} else {
		// Without a window, nobody clamps the positions for us.
		c.cursorStart, c.cursorEnd = clampSelection(start, end, len([]rune(c.text)))
	}
}
