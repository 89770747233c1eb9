//go:build windows

package wuikit

import (
	"math"
	"strconv"
	"strings"
	"syscall"
	"unsafe"

	"github.com/gonutz/w32"
)

func NewFloatUpDown() *FloatUpDown {
	return &FloatUpDown{
		minValue:  math.Inf(-1),
		maxValue:  math.Inf(1),
		precision: 1,
		step:      1,
	}
}

// FloatUpDown is an edit field for decimal numbers. The arrow buttons and keys
// change the value by Step.
type FloatUpDown struct {
	textControl
	upDownHandle  w32.HWND
	value         float64
	minValue      float64
	maxValue      float64
	precision     int
	step          float64
	onValueChange func(value float64)
}

// these are the WM_CHAR codes sent for the respective edit operations
const (
	charCopy  = 3
	charPaste = 22
	charCut   = 24
)

func (n *FloatUpDown) create(id int) {
	// the main handle is for the edit field
	n.text = formatInputNumber(n.value, n.precision)
	n.textControl.create(id, w32.WS_EX_CLIENTEDGE, "EDIT", w32.WS_TABSTOP)
	w32.SetWindowSubclass(n.handle, syscall.NewCallback(func(
		window w32.HWND,
		msg uint32,
		wParam, lParam uintptr,
		subclassID uintptr,
		refData uintptr,
	) uintptr {
		switch msg {
		case w32.WM_KILLFOCUS:
			text := n.textControl.Text()
			if newText := sanitizeNumber(text, n.precision); newText != text {
				n.textControl.SetText(newText)
			}
		case w32.WM_CHAR:
			if !('0' <= wParam && wParam <= '9' ||
				wParam == '-' ||
				wParam == '.' || wParam == ',' ||
				wParam == w32.VK_RETURN ||
				wParam == w32.VK_BACK ||
				wParam == charCtrlA ||
				wParam == charCopy || wParam == charCut || wParam == charPaste) {
				return 0
			}
		}
		return w32.DefSubclassProc(window, msg, wParam, lParam)
	}), 0, 0)
	// The up-down shares the edit's ID so its UDN_DELTAPOS reaches us.
	n.upDownHandle = createUpDown(
		&n.control,
		id,
		w32.UDS_ALIGNRIGHT|w32.UDS_NOTHOUSANDS|w32.UDS_ARROWKEYS,
	)
}

func (n *FloatUpDown) SetPos(x, y int) {
	n.SetBounds(x, y, n.width, n.height)
}

func (n *FloatUpDown) SetSize(width, height int) {
	n.SetBounds(n.x, n.y, width, height)
}

func (n *FloatUpDown) SetBounds(x, y, width, height int) {
	n.textControl.SetBounds(x, y, width, height)
	moveUpDown(&n.control, n.upDownHandle)
}

func (n *FloatUpDown) SetVisible(v bool) {
	n.textControl.SetVisible(v)
	showUpDown(n.upDownHandle, v)
}

func (n *FloatUpDown) SetEnabled(e bool) {
	n.textControl.SetEnabled(e)
	if n.upDownHandle != 0 {
		w32.EnableWindow(n.upDownHandle, e)
	}
}

// Value parses the current text. Text that is no number leaves the last valid
// value in place.
func (n *FloatUpDown) Value() float64 {
	if n.handle != 0 {
		t := strings.Replace(strings.TrimSpace(n.textControl.Text()), ",", ".", 1)
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			n.value = f
		}
	}
	return n.value
}

func (n *FloatUpDown) SetValue(f float64) {
	if math.IsNaN(f) {
		return
	}
	n.value = math.Max(n.minValue, math.Min(n.maxValue, f))
	if n.handle != 0 {
		n.textControl.SetText(formatInputNumber(n.value, n.precision))
	}
}

func (n *FloatUpDown) MinMaxValues() (min, max float64) {
	return n.minValue, n.maxValue
}

// SetMinMaxValues sets the allowed range, swapped bounds are put in order.
func (n *FloatUpDown) SetMinMaxValues(min, max float64) {
	if min > max {
		min, max = max, min
	}
	v := n.Value()
	n.minValue = min
	n.maxValue = max
	n.SetValue(v)
}

func (n *FloatUpDown) Precision() int {
	return n.precision
}

// SetPrecision sets the number of decimal places, between 0 and 6.
func (n *FloatUpDown) SetPrecision(p int) {
	if p < 0 {
		p = 0
	}
	if p > 6 {
		p = 6
	}
	v := n.Value()
	n.precision = p
	n.SetValue(v)
}

func (n *FloatUpDown) Step() float64 {
	return n.step
}

func (n *FloatUpDown) SetStep(step float64) {
	if step > 0 {
		n.step = step
	}
}

func (n *FloatUpDown) SetOnValueChange(f func(value float64)) {
	n.onValueChange = f
}

func (n *FloatUpDown) handleNotification(cmd uintptr) {
	if cmd == w32.EN_CHANGE && n.onValueChange != nil {
		n.onValueChange(n.Value())
	}
}

// The up-down reports a negative delta for the up arrow.
func (n *FloatUpDown) handleNotify(code uint32, lParam uintptr) {
	if code == uint32(w32.UDN_DELTAPOS) {
		updown := (*w32.NMUPDOWN)(unsafe.Pointer(lParam))
		n.SetValue(n.Value() - float64(updown.Delta)*n.step)
	}
}
