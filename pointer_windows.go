//go:build windows

package wuikit

import "github.com/gonutz/w32"

// handleMouse feeds the left button and mouse move messages of window into
// e. Pressing the button captures the mouse so moves keep arriving while it is
// dragged outside the window. The reported points are in screen coordinates.
func (e *pointerEvents) handleMouse(window w32.HWND, msg uint32, lParam uintptr) bool {
	screen := func() Point {
		x, y := w32.ClientToScreen(window, loword(lParam), hiword(lParam))
		return Pt(x, y)
	}
	switch msg {
	case wmLButtonDown:
		setCapture(window)
		e.pointerDown(screen())
		return true
	case w32.WM_MOUSEMOVE:
		e.pointerMove(screen())
		return true
	case wmLButtonUp:
		p := screen()
		if e.Pressed() {
			// Releasing the capture sends WM_CAPTURECHANGED, the press must be
			// over by then so it is not reported twice.
			e.pointerUp(p)
			releaseCapture()
			return true
		}
		return false
	case wmCaptureChange:
		e.captureLost()
		return false
	}
	return false
}

// handleSetCursor shows cursor while the mouse is over the control.
func handleSetCursor(cursor *Cursor, msg uint32) bool {
	if msg == wmSetCursor && cursor != nil {
		setCursor(cursor.handle)
		return true
	}
	return false
}
