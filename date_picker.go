//go:build windows

package wuikit

import (
	"time"
	"unsafe"

	"github.com/gonutz/w32"
)

// NewDatePicker returns a date input showing today.
func NewDatePicker() *DatePicker {
	return &DatePicker{date: today()}
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// DatePicker lets the user type or pick a date from a drop-down calendar. All
// times are truncated to midnight, local time.
type DatePicker struct {
	control
	font     *Font
	date     time.Time
	minDate  time.Time
	maxDate  time.Time
	onChange func(time.Time)
}

var _ DateRanger = (*DatePicker)(nil)

func (p *DatePicker) create(id int) {
	p.control.create(id, 0, dateTimePickClass, w32.WS_TABSTOP|dtsShortDateFormat)
	p.SetFont(p.font)
	p.applyRange()
	p.applyDate()
}

func (p *DatePicker) Date() time.Time {
	if p.handle != 0 {
		var st systemTime
		ret := w32.SendMessage(p.handle, dtmGetSystemTime, 0, uintptr(unsafe.Pointer(&st)))
		if ret == gdtValid {
			p.date = st.date()
		}
	}
	return p.date
}

// SetDate shows t, clamped to the date range. A zero t shows today.
func (p *DatePicker) SetDate(t time.Time) {
	if t.IsZero() {
		t = today()
	}
	p.date = clampDate(truncateDay(t), p.minDate, p.maxDate)
	p.applyDate()
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func (p *DatePicker) applyDate() {
	if p.handle != 0 {
		st := toSystemTime(p.date)
		w32.SendMessage(p.handle, dtmSetSystemTime, gdtValid, uintptr(unsafe.Pointer(&st)))
	}
}

func (p *DatePicker) DateRange() (min, max time.Time) {
	return p.minDate, p.maxDate
}

// SetDateRange limits the selectable dates. A zero min or max leaves that
// side open, swapped bounds are put in order.
func (p *DatePicker) SetDateRange(min, max time.Time) {
	if !min.IsZero() {
		min = truncateDay(min)
	}
	if !max.IsZero() {
		max = truncateDay(max)
	}
	if !min.IsZero() && !max.IsZero() && max.Before(min) {
		min, max = max, min
	}
	p.minDate, p.maxDate = min, max
	p.applyRange()
	p.SetDate(p.Date())
}

func (p *DatePicker) applyRange() {
	if p.handle == 0 {
		return
	}
	var flags uintptr
	var bounds [2]systemTime
	if !p.minDate.IsZero() {
		flags |= gdtrMin
		bounds[0] = toSystemTime(p.minDate)
	}
	if !p.maxDate.IsZero() {
		flags |= gdtrMax
		bounds[1] = toSystemTime(p.maxDate)
	}
	w32.SendMessage(p.handle, dtmSetRange, flags, uintptr(unsafe.Pointer(&bounds[0])))
}

func (p *DatePicker) Font() *Font {
	return p.font
}

func (p *DatePicker) SetFont(font *Font) {
	p.font = font
	if p.handle != 0 {
		var h w32.HFONT
		if font != nil {
			h = font.handle
		} else if p.parent != nil && p.parent.Font() != nil {
			h = p.parent.Font().handle
		}
		w32.SendMessage(p.handle, w32.WM_SETFONT, uintptr(h), 1)
	}
}

func (p *DatePicker) parentFontChanged() {
	p.SetFont(p.font)
}

func (p *DatePicker) SetOnChange(f func(time.Time)) {
	p.onChange = f
}

func (p *DatePicker) handleNotify(code uint32, lParam uintptr) {
	if code != dtnDateTimeChange {
		return
	}
	change := (*nmDateTimeChange)(unsafe.Pointer(lParam))
	if change.Flags == gdtValid {
		p.date = change.Time.date()
		if p.onChange != nil {
			p.onChange(p.date)
		}
	}
}
