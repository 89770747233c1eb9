package wuikit

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultDateLayout is used to show and parse dates in input dialogs when an
// InputRequest has no DateLayout.
const DefaultDateLayout = "2006-01-02"

// InputRequest describes what an input dialog asks for. Fields that do not
// apply to a dialog are ignored, e.g. Choices only matters for InputChoice.
type InputRequest struct {
	Caption string
	Prompt  string
	// Default is the text the editor starts with. For InputChoice it selects
	// the first equal choice, for InputDate it is parsed with DateLayout.
	Default string
	Choices []string

	// MinDate and MaxDate bound InputDate. A zero time means no bound.
	MinDate time.Time
	MaxDate time.Time

	// Min and Max bound InputNumber if Min < Max, otherwise the number is
	// unbounded.
	Min float64
	Max float64
	// Precision is the number of decimal places InputNumber keeps, 0 means
	// integers only.
	Precision int

	DateLayout string
}

func (r InputRequest) dateLayout() string {
	if r.DateLayout == "" {
		return DefaultDateLayout
	}
	return r.DateLayout
}

func (r InputRequest) bounded() bool {
	return r.Min < r.Max
}

// dialogResult is owned by exactly one dialog. It is written when the user
// confirms and read back once the dialog's modal loop has returned.
type dialogResult struct {
	confirmed bool
	text      string
	index     int
	date      time.Time
}

func (d *dialogResult) confirmText(s string) {
	d.confirmed = true
	d.text = s
}

func (d *dialogResult) confirmIndex(i int) {
	d.confirmed = true
	d.index = i
}

func (d *dialogResult) confirmDate(t time.Time) {
	d.confirmed = true
	d.date = t
}

// parseInputText returns the confirmed text or "" if the dialog was
// cancelled.
func parseInputText(res dialogResult) (string, bool) {
	if !res.confirmed {
		return "", false
	}
	return res.text, true
}

// parseInputChoice returns the chosen item. Nothing chosen or an index
// outside the choices yields "".
func parseInputChoice(res dialogResult, choices []string) (string, bool) {
	if !res.confirmed || res.index < 0 || res.index >= len(choices) {
		return "", false
	}
	return choices[res.index], true
}

// parseInputDate returns the confirmed date, clamped to the request's date
// range. A cancelled dialog yields the zero time.
func parseInputDate(res dialogResult, req InputRequest) (time.Time, bool) {
	if !res.confirmed || res.date.IsZero() {
		return time.Time{}, false
	}
	return clampDate(res.date, req.MinDate, req.MaxDate), true
}

// parseDateText parses s with the request's layout. Unparsable text yields
// the zero time.
func parseDateText(s string, req InputRequest) (time.Time, bool) {
	t, err := time.ParseInLocation(req.dateLayout(), strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func clampDate(t, min, max time.Time) time.Time {
	if !min.IsZero() && t.Before(min) {
		t = min
	}
	if !max.IsZero() && t.After(max) {
		t = max
	}
	return t
}

// parseInputNumber parses the confirmed text as a number. Both '.' and ',' are
// accepted as the decimal separator. When both appear, the last one separates
// the fraction and the other groups thousands. The value is rounded to the request's
// precision and clamped to its bounds. Cancelled dialogs and unparsable text
// yield 0.
func parseInputNumber(res dialogResult, req InputRequest) (float64, bool) {
	if !res.confirmed {
		return 0, false
	}
	s := strings.TrimSpace(res.text)
	s = normalizeDecimal(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = roundTo(f, req.Precision)
	if req.bounded() {
		f = math.Max(req.Min, math.Min(req.Max, f))
	}
	return f, true
}

func roundTo(f float64, precision int) float64 {
	if precision < 0 {
		precision = 0
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(f*scale) / scale
}

// formatInputNumber is the inverse of parseInputNumber, used to seed the
// editor.
func formatInputNumber(f float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}
