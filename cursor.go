//go:build windows

package wuikit

import "github.com/gonutz/w32"

// Cursor is a mouse cursor image. Use one of the stock Cursor... variables.
type Cursor struct {
	handle w32.HCURSOR
}

var (
	// CursorArrow is the default arrow.
	CursorArrow = loadCursor(w32.IDC_ARROW)
	// CursorHand is a hand pointing its index finger upwards.
	CursorHand = loadCursor(w32.IDC_HAND)
	// CursorSizeAll has arrows pointing in all four directions. Drag handles
	// show it while the mouse is over them.
	CursorSizeAll = loadCursor(w32.IDC_SIZEALL)
	// CursorIBeam is the text cursor.
	CursorIBeam = loadCursor(w32.IDC_IBEAM)
	CursorWait  = loadCursor(w32.IDC_WAIT)
	CursorNo    = loadCursor(w32.IDC_NO)
)

func loadCursor(id uint16) *Cursor {
	return &Cursor{handle: w32.LoadCursor(0, w32.MakeIntResource(id))}
}
