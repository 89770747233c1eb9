//go:build windows

package wuikit

import (
	"math"
	"strconv"

	"github.com/gonutz/w32"
)

func NewIntUpDown() *IntUpDown {
	return &IntUpDown{
		minValue: math.MinInt32,
		maxValue: math.MaxInt32,
	}
}

// IntUpDown is an edit field for whole numbers with arrow buttons next to it.
type IntUpDown struct {
	textEditControl
	upDownHandle  w32.HWND
	value         int32
	minValue      int32
	maxValue      int32
	onValueChange func(value int)
}

func (n *IntUpDown) create(id int) {
	// the main handle is for the edit field
	n.text = strconv.Itoa(int(n.value))
	n.textEditControl.create(
		id,
		w32.WS_EX_CLIENTEDGE,
		"EDIT",
		w32.WS_TABSTOP|w32.ES_NUMBER,
	)
	n.upDownHandle = createUpDown(
		&n.control,
		0,
		w32.UDS_SETBUDDYINT|w32.UDS_ALIGNRIGHT|w32.UDS_NOTHOUSANDS|w32.UDS_ARROWKEYS,
	)
	n.applyRange()
}

// createUpDown attaches an up-down control to the edit field c. It has to be
// created after the edit so it can take over the right part of it.
func createUpDown(c *control, id int, style uint) w32.HWND {
	var visible uint
	if !c.hidden {
		visible = w32.WS_VISIBLE
	}
	upDown := w32.CreateWindowStr(
		w32.UPDOWN_CLASS,
		"",
		visible|w32.WS_CHILD|style,
		c.x, c.y, c.width, c.height,
		c.parent.getHandle(), w32.HMENU(id), c.parent.getInstance(), nil,
	)
	w32.SendMessage(upDown, w32.UDM_SETBUDDY, uintptr(c.handle), 0)
	return upDown
}

func moveUpDown(c *control, upDown w32.HWND) {
	if upDown != 0 {
		w32.SetWindowPos(
			upDown, 0,
			c.x, c.y, c.width, c.height,
			w32.SWP_NOOWNERZORDER|w32.SWP_NOZORDER,
		)
		w32.SendMessage(upDown, w32.UDM_SETBUDDY, uintptr(c.handle), 0)
	}
}

func showUpDown(upDown w32.HWND, v bool) {
	if upDown != 0 {
		if v {
			w32.ShowWindow(upDown, w32.SW_SHOW)
		} else {
			w32.ShowWindow(upDown, w32.SW_HIDE)
		}
		w32.InvalidateRect(upDown, nil, true)
	}
}

func (n *IntUpDown) SetPos(x, y int) {
	n.SetBounds(x, y, n.width, n.height)
}

func (n *IntUpDown) SetSize(width, height int) {
	n.SetBounds(n.x, n.y, width, height)
}

func (n *IntUpDown) SetBounds(x, y, width, height int) {
	n.textEditControl.SetBounds(x, y, width, height)
	moveUpDown(&n.control, n.upDownHandle)
}

func (n *IntUpDown) SetVisible(v bool) {
	n.textEditControl.SetVisible(v)
	showUpDown(n.upDownHandle, v)
}

func (n *IntUpDown) SetEnabled(e bool) {
	n.textEditControl.SetEnabled(e)
	if n.upDownHandle != 0 {
		w32.EnableWindow(n.upDownHandle, e)
	}
}

func (n *IntUpDown) Value() int {
	if n.upDownHandle != 0 {
		n.value = int32(w32.SendMessage(n.upDownHandle, w32.UDM_GETPOS32, 0, 0))
	}
	return int(n.value)
}

func (n *IntUpDown) SetValue(v int) {
	n.value = clampInt32(v, n.minValue, n.maxValue)
	if n.upDownHandle != 0 {
		w32.SendMessage(n.upDownHandle, w32.UDM_SETPOS32, 0, uintptr(n.value))
	}
}

func clampInt32(v int, min, max int32) int32 {
	if v < int(min) {
		return min
	}
	if v > int(max) {
		return max
	}
	return int32(v)
}

func (n *IntUpDown) MinMax() (min, max int) {
	return int(n.minValue), int(n.maxValue)
}

// SetMinMax sets the allowed range. Bounds outside the 32 bit range are cut
// off, swapped bounds are put in order.
func (n *IntUpDown) SetMinMax(min, max int) {
	if min > max {
		min, max = max, min
	}
	v := n.Value()
	n.minValue = clampInt32(min, math.MinInt32, math.MaxInt32)
	n.maxValue = clampInt32(max, math.MinInt32, math.MaxInt32)
	n.applyRange()
	n.SetValue(v)
}

func (n *IntUpDown) applyRange() {
	if n.upDownHandle != 0 {
		w32.SendMessage(
			n.upDownHandle,
			w32.UDM_SETRANGE32,
			uintptr(n.minValue),
			uintptr(n.maxValue),
		)
	}
}

func (n *IntUpDown) OnValueChange() func(value int) {
	return n.onValueChange
}

func (n *IntUpDown) SetOnValueChange(f func(value int)) {
	n.onValueChange = f
}

func (n *IntUpDown) handleNotification(cmd uintptr) {
	if cmd == w32.EN_CHANGE && n.onValueChange != nil {
		n.onValueChange(n.Value())
	}
}
