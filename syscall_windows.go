//go:build windows

package wuikit

import (
	"time"
	"unsafe"

	"github.com/gonutz/w32"
	"golang.org/x/sys/windows"
)

// Win32 functions and constants the w32 bindings do not provide.

const (
	wsPopup = 0x80000000

	ssNotify = 0x0100

	bsPushButton = 0x0000
	bmSetStyle   = 0x00F4
	bmGetCheck   = 0x00F0
	bnClicked    = 0

	mbIconQuestion    = 0x0020
	mbIconWarning     = 0x0030
	mbIconInformation = 0x0040

	wmHScroll = 0x0114
	wmVScroll = 0x0115

	lbsNotify       = 0x0001
	lbnSelChange    = 1
	lbAddString     = 0x0180
	lbResetContent  = 0x0184
	lbSetCurSel     = 0x0186
	lbGetCurSel     = 0x0188
	wmLButtonDown   = 0x0201
	wmLButtonUp     = 0x0202
	wmCaptureChange = 0x0215
	wmSetCursor     = 0x0020
	wmEraseBkgnd    = 0x0014
	htClient        = 1
	wsClipChildren  = 0x02000000

	dtsShortDateFormat = 0x0000
	dtnDateTimeChange  = 0xFFFFFD09 // DTN_FIRST2 - 6 as an unsigned code
	dtmGetSystemTime   = 0x1001
	dtmSetSystemTime   = 0x1002
	dtmSetRange        = 0x1004
	gdtValid           = 0
	gdtrMin            = 1
	gdtrMax            = 2
	iccDateClasses     = 0x0100
	iccListViewClasses = 0x0001
	iccBarClasses      = 0x0004
	iccProgressClass   = 0x0020
	pbmSetRange32      = 0x0406
	dateTimePickClass  = "SysDateTimePick32"
	lvnItemChanged     = 0xFFFFFF9B // LVN_FIRST - 1 as an unsigned code

	polyFillWinding = 2
	biRGB           = 0
	dibRGBColors    = 0
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procSetWindowRgn      = user32.NewProc("SetWindowRgn")
	procSetCapture        = user32.NewProc("SetCapture")
	procReleaseCapture    = user32.NewProc("ReleaseCapture")
	procSetCursor         = user32.NewProc("SetCursor")
	procFillRect          = user32.NewProc("FillRect")
	procCreatePolygonRgn  = gdi32.NewProc("CreatePolygonRgn")
	procCreateSolidBrush  = gdi32.NewProc("CreateSolidBrush")
	procSetDIBitsToDevice = gdi32.NewProc("SetDIBitsToDevice")
)

type systemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

type nmDateTimeChange struct {
	Header w32.NMHDR
	Flags  uint32
	Time   systemTime
}

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// bitmapInfo is a BITMAPINFO without a color table, which is all 32 bit
// BI_RGB bitmaps need.
type bitmapInfo struct {
	Header bitmapInfoHeader
	Colors [1]uint32
}

func setWindowRgn(window w32.HWND, region uintptr, redraw bool) bool {
	var r uintptr
	if redraw {
		r = 1
	}
	ret, _, _ := procSetWindowRgn.Call(uintptr(window), region, r)
	return ret != 0
}

func createPolygonRgn(points []w32.POINT) uintptr {
	if len(points) < 3 {
		return 0
	}
	rgn, _, _ := procCreatePolygonRgn.Call(
		uintptr(unsafe.Pointer(&points[0])),
		uintptr(len(points)),
		polyFillWinding,
	)
	return rgn
}

func setCapture(window w32.HWND) {
	procSetCapture.Call(uintptr(window))
}

func releaseCapture() {
	procReleaseCapture.Call()
}

func setCursor(cursor w32.HCURSOR) {
	procSetCursor.Call(uintptr(cursor))
}

func createSolidBrush(c Color) w32.HBRUSH {
	b, _, _ := procCreateSolidBrush.Call(uintptr(c))
	return w32.HBRUSH(b)
}

func fillRect(hdc w32.HDC, r *w32.RECT, brush w32.HBRUSH) {
	procFillRect.Call(uintptr(hdc), uintptr(unsafe.Pointer(r)), uintptr(brush))
}

// setDIBitsToDevice copies a top-down 32 bit BGRA pixel buffer of the given
// size to (x, y) on hdc.
func setDIBitsToDevice(hdc w32.HDC, x, y, width, height int, bgra []byte) {
	if width <= 0 || height <= 0 || len(bgra) < 4*width*height {
		return
	}
	info := bitmapInfo{Header: bitmapInfoHeader{
		Width:       int32(width),
		Height:      -int32(height),
		Planes:      1,
		BitCount:    32,
		Compression: biRGB,
	}}
	info.Header.Size = uint32(unsafe.Sizeof(info.Header))
	procSetDIBitsToDevice.Call(
		uintptr(hdc),
		uintptr(x), uintptr(y),
		uintptr(width), uintptr(height),
		0, 0,
		0, uintptr(height),
		uintptr(unsafe.Pointer(&bgra[0])),
		uintptr(unsafe.Pointer(&info)),
		dibRGBColors,
	)
}

func toSystemTime(t time.Time) systemTime {
	return systemTime{
		Year:      uint16(t.Year()),
		Month:     uint16(t.Month()),
		DayOfWeek: uint16(t.Weekday()),
		Day:       uint16(t.Day()),
	}
}

func (s systemTime) date() time.Time {
	return time.Date(int(s.Year), time.Month(s.Month), int(s.Day), 0, 0, 0, 0, time.Local)
}

func loword(x uintptr) int {
	return int(int16(x & 0xFFFF))
}

func hiword(x uintptr) int {
	return int(int16((x >> 16) & 0xFFFF))
}
