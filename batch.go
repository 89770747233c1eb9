package wuikit

import (
	"errors"
	"fmt"
	"time"
)

// ErrLengthMismatch is returned (wrapped) by all batch functions that pair
// controls with values by index when the two slices have different lengths.
var ErrLengthMismatch = errors.New("collection size mismatch")

// Controls only need the one method a batch function calls. All controls in
// this package satisfy the interfaces that apply to them.
type (
	Enabler interface {
		SetEnabled(enabled bool)
	}

	Shower interface {
		SetVisible(visible bool)
	}

	Texter interface {
		SetText(text string)
	}

	Sizer interface {
		SetSize(width, height int)
	}

	ColorSetter interface {
		SetBackground(c Color)
	}

	IntRanger interface {
		SetMinMax(min, max int)
	}

	FloatRanger interface {
		SetMinMaxValues(min, max float64)
	}

	DateRanger interface {
		SetDateRange(min, max time.Time)
	}
)

// Apply calls f once for every control.
func Apply[C any](controls []C, f func(C)) {
	for _, c := range controls {
		f(c)
	}
}

// ApplyEach calls f(controls[i], values[i]) for every index. If the slices
// differ in length, nothing is called and the returned error wraps
// ErrLengthMismatch.
func ApplyEach[C, V any](controls []C, values []V, f func(C, V)) error {
	if len(controls) != len(values) {
		return lengthMismatch(len(controls), len(values))
	}
	for i := range controls {
		f(controls[i], values[i])
	}
	return nil
}

func lengthMismatch(controls, values int) error {
	return fmt.Errorf(
		"wuikit: %w: %d controls but %d values",
		ErrLengthMismatch, controls, values,
	)
}

// SetEnabled enables or disables all controls.
func SetEnabled(enabled bool, controls ...Enabler) {
	Apply(controls, func(c Enabler) { c.SetEnabled(enabled) })
}

func EnableAll(controls ...Enabler) {
	SetEnabled(true, controls...)
}

func DisableAll(controls ...Enabler) {
	SetEnabled(false, controls...)
}

// SetVisible shows or hides all controls.
func SetVisible(visible bool, controls ...Shower) {
	Apply(controls, func(c Shower) { c.SetVisible(visible) })
}

func ShowAll(controls ...Shower) {
	SetVisible(true, controls...)
}

func HideAll(controls ...Shower) {
	SetVisible(false, controls...)
}

// SetText sets the same text on all controls.
func SetText(text string, controls ...Texter) {
	Apply(controls, func(c Texter) { c.SetText(text) })
}

// ClearText empties the text of all controls.
func ClearText(controls ...Texter) {
	SetText("", controls...)
}

// SetTexts sets texts[i] on controls[i].
func SetTexts(controls []Texter, texts []string) error {
	return ApplyEach(controls, texts, func(c Texter, s string) { c.SetText(s) })
}

// SetSize gives all controls the same size.
func SetSize(width, height int, controls ...Sizer) {
	Apply(controls, func(c Sizer) { c.SetSize(width, height) })
}

// SetSizes gives controls[i] the size sizes[i].
func SetSizes(controls []Sizer, sizes []Size) error {
	return ApplyEach(controls, sizes, func(c Sizer, s Size) {
		c.SetSize(s.Width, s.Height)
	})
}

// SetPositions moves controls[i] to positions[i].
func SetPositions(controls []Positioner, positions []Point) error {
	return ApplyEach(controls, positions, func(c Positioner, p Point) {
		c.SetPos(p.X, p.Y)
	})
}

// SetBackgroundColor sets the same background color on all controls.
func SetBackgroundColor(color Color, controls ...ColorSetter) {
	Apply(controls, func(c ColorSetter) { c.SetBackground(color) })
}

// SetBackgroundColors sets colors[i] on controls[i].
func SetBackgroundColors(controls []ColorSetter, colors []Color) error {
	return ApplyEach(controls, colors, func(c ColorSetter, color Color) {
		c.SetBackground(color)
	})
}

// SetIntRange sets the same bounds on all integer inputs.
func SetIntRange(min, max int, controls ...IntRanger) {
	Apply(controls, func(c IntRanger) { c.SetMinMax(min, max) })
}

// SetFloatRange sets the same bounds on all floating point inputs.
func SetFloatRange(min, max float64, controls ...FloatRanger) {
	Apply(controls, func(c FloatRanger) { c.SetMinMaxValues(min, max) })
}

// SetDateRange sets the same selectable date range on all date inputs.
func SetDateRange(min, max time.Time, controls ...DateRanger) {
	Apply(controls, func(c DateRanger) { c.SetDateRange(min, max) })
}
