//go:build windows

package wuikit

import "github.com/gonutz/w32"

const maxProgressBarValue = 10000

func NewProgressBar() *ProgressBar {
	return &ProgressBar{}
}

// ProgressBar shows a value between 0 and 1.
type ProgressBar struct {
	control
	value float64
}

func (p *ProgressBar) create(id int) {
	p.control.create(id, 0, "msctls_progress32", 0)
	w32.SendMessage(p.handle, pbmSetRange32, 0, maxProgressBarValue)
	p.SetValue(p.value)
}

func (p *ProgressBar) Value() float64 {
	return p.value
}

// SetValue clamps v to [0, 1].
func (p *ProgressBar) SetValue(v float64) {
	p.value = min(max(v, 0), 1)
	if p.handle != 0 {
		pos := int(p.value*maxProgressBarValue + 0.5)
		w32.SendMessage(p.handle, w32.PBM_SETPOS, uintptr(pos), 0)
	}
}
