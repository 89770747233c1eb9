//go:build windows

package wuikit

import "github.com/gonutz/w32"

func NewSlider() *Slider {
	return &Slider{
		max:           10,
		tickFrequency: 1,
		arrowInc:      1,
		mouseInc:      2,
	}
}

// Slider is a trackbar for picking a whole number between Min and Max.
type Slider struct {
	control
	min           int
	max           int
	value         int
	tickFrequency int
	arrowInc      int
	mouseInc      int
	hideTicks     bool
	vertical      bool
	onChange      func(value int)
}

var _ IntRanger = (*Slider)(nil)

func (s *Slider) create(id int) {
	var style uint = w32.WS_TABSTOP | w32.TBS_BOTTOM
	if s.hideTicks {
		style |= w32.TBS_NOTICKS
	} else {
		style |= w32.TBS_AUTOTICKS
	}
	if s.vertical {
		style |= w32.TBS_VERT
	} else {
		style |= w32.TBS_HORZ
	}
	s.control.create(id, 0, "msctls_trackbar32", style)

	v := s.value
	s.SetMinMax(s.min, s.max)
	s.SetTickFrequency(s.tickFrequency)
	s.SetArrowIncrement(s.arrowInc)
	s.SetMouseIncrement(s.mouseInc)
	s.SetValue(v)
}

func (s *Slider) MinMax() (min, max int) {
	return s.min, s.max
}

// SetMinMax sets the range, swapped bounds are put in order. The value is
// clamped to the new range.
func (s *Slider) SetMinMax(min, max int) {
	if min > max {
		min, max = max, min
	}
	s.min, s.max = min, max
	if s.handle != 0 {
		const redraw = 1
		w32.SendMessage(s.handle, w32.TBM_SETRANGEMIN, 0, uintptr(min))
		w32.SendMessage(s.handle, w32.TBM_SETRANGEMAX, redraw, uintptr(max))
	}
	s.SetValue(s.Value())
}

func (s *Slider) Value() int {
	if s.handle != 0 {
		s.value = int(int32(w32.SendMessage(s.handle, w32.TBM_GETPOS, 0, 0)))
	}
	return s.value
}

func (s *Slider) SetValue(v int) {
	s.value = min(max(v, s.min), s.max)
	if s.handle != 0 {
		const redraw = 1
		w32.SendMessage(s.handle, w32.TBM_SETPOS, redraw, uintptr(s.value))
	}
}

func (s *Slider) TickFrequency() int {
	return s.tickFrequency
}

func (s *Slider) SetTickFrequency(f int) {
	s.tickFrequency = f
	if s.handle != 0 {
		w32.SendMessage(s.handle, w32.TBM_SETTICFREQ, uintptr(f), 0)
	}
}

// SetArrowIncrement is for the arrow keys, left/down/right/up.
func (s *Slider) SetArrowIncrement(inc int) {
	s.arrowInc = inc
	if s.handle != 0 {
		w32.SendMessage(s.handle, w32.TBM_SETLINESIZE, 0, uintptr(inc))
	}
}

// SetMouseIncrement is for mouse clicks and the page up/down keys.
func (s *Slider) SetMouseIncrement(inc int) {
	s.mouseInc = inc
	if s.handle != 0 {
		w32.SendMessage(s.handle, w32.TBM_SETPAGESIZE, 0, uintptr(inc))
	}
}

// SetHasTicks and SetVertical only take effect before the slider is created.
func (s *Slider) SetHasTicks(show bool) {
	if s.handle == 0 {
		s.hideTicks = !show
	}
}

func (s *Slider) SetVertical(vertical bool) {
	if s.handle == 0 {
		s.vertical = vertical
	}
}

func (s *Slider) SetOnChange(f func(value int)) {
	s.onChange = f
}

func (s *Slider) scrollHandle() w32.HWND {
	return s.handle
}

func (s *Slider) handleScroll(reason uintptr) {
	if s.onChange != nil &&
		reason != w32.TB_ENDTRACK && reason != w32.TB_THUMBPOSITION {
		s.onChange(s.Value())
	}
}
