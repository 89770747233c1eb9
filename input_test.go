package wuikit

import (
	"testing"
	"time"

	"github.com/gonutz/check"
)

func confirmedText(s string) dialogResult {
	var res dialogResult
	res.confirmText(s)
	return res
}

func TestCancelledDialogsYieldFallbacks(t *testing.T) {
	var cancelled dialogResult

	text, ok := parseInputText(cancelled)
	check.Eq(t, text, "")
	check.Eq(t, ok, false)

	choice, ok := parseInputChoice(cancelled, []string{"a", "b"})
	check.Eq(t, choice, "")
	check.Eq(t, ok, false)

	date, ok := parseInputDate(cancelled, InputRequest{})
	check.Eq(t, date, time.Time{})
	check.Eq(t, ok, false)

	n, ok := parseInputNumber(cancelled, InputRequest{})
	check.Eq(t, n, 0.0)
	check.Eq(t, ok, false)
}

func TestConfirmedTextIsReturnedAsIs(t *testing.T) {
	text, ok := parseInputText(confirmedText("  hello "))
	check.Eq(t, text, "  hello ")
	check.Eq(t, ok, true)

	text, ok = parseInputText(confirmedText(""))
	check.Eq(t, text, "")
	check.Eq(t, ok, true)
}

func TestChoiceIndexOutsideChoicesYieldsEmptyString(t *testing.T) {
	choices := []string{"red", "green", "blue"}
	var res dialogResult

	res.confirmIndex(1)
	choice, ok := parseInputChoice(res, choices)
	check.Eq(t, choice, "green")
	check.Eq(t, ok, true)

	for _, i := range []int{-1, 3, 100} {
		res.confirmIndex(i)
		choice, ok = parseInputChoice(res, choices)
		check.Eq(t, choice, "")
		check.Eq(t, ok, false)
	}
}

func TestInputDateIsClampedToRange(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	req := InputRequest{MinDate: day(5), MaxDate: day(20)}
	var res dialogResult

	res.confirmDate(day(10))
	date, ok := parseInputDate(res, req)
	check.Eq(t, date, day(10))
	check.Eq(t, ok, true)

	res.confirmDate(day(1))
	date, _ = parseInputDate(res, req)
	check.Eq(t, date, day(5))

	res.confirmDate(day(25))
	date, _ = parseInputDate(res, req)
	check.Eq(t, date, day(20))

	res.confirmDate(day(25))
	date, _ = parseInputDate(res, InputRequest{})
	check.Eq(t, date, day(25))
}

func TestParseDateText(t *testing.T) {
	date, ok := parseDateText(" 2021-12-24 ", InputRequest{})
	check.Eq(t, ok, true)
	check.Eq(t, date.Format(DefaultDateLayout), "2021-12-24")

	date, ok = parseDateText("24.12.2021", InputRequest{DateLayout: "02.01.2006"})
	check.Eq(t, ok, true)
	check.Eq(t, date.Day(), 24)

	date, ok = parseDateText("christmas", InputRequest{})
	check.Eq(t, ok, false)
	check.Eq(t, date.IsZero(), true)
}

func TestParseInputNumber(t *testing.T) {
	parse := func(text string, req InputRequest) float64 {
		t.Helper()
		n, _ := parseInputNumber(confirmedText(text), req)
		return n
	}

	check.Eq(t, parse("42", InputRequest{}), 42.0)
	check.Eq(t, parse(" -7 ", InputRequest{}), -7.0)
	check.Eq(t, parse("3,75", InputRequest{Precision: 2}), 3.75)
	check.Eq(t, parse("3.756", InputRequest{Precision: 2}), 3.76)
	check.Eq(t, parse("2.5", InputRequest{}), 3.0)
	check.Eq(t, parse("1,234.5", InputRequest{Precision: 1}), 1234.5)
	check.Eq(t, parse("1.234,5", InputRequest{Precision: 1}), 1234.5)
	check.Eq(t, parse("-1,000,000.0", InputRequest{}), -1000000.0)

	check.Eq(t, parse("150", InputRequest{Min: 0, Max: 100}), 100.0)
	check.Eq(t, parse("-5", InputRequest{Min: 0, Max: 100}), 0.0)
	check.Eq(t, parse("-5", InputRequest{Min: 10, Max: 10}), -5.0)

	for _, bad := range []string{"", "abc", "1,2,3", "NaN", "Inf"} {
		n, ok := parseInputNumber(confirmedText(bad), InputRequest{})
		if n != 0 || ok {
			t.Errorf("%q: want 0, false but have %v, %v", bad, n, ok)
		}
	}
}

func TestFormatInputNumber(t *testing.T) {
	check.Eq(t, formatInputNumber(1.5, 2), "1.50")
	check.Eq(t, formatInputNumber(1.5, 0), "2")
	check.Eq(t, formatInputNumber(-3, -1), "-3")
}
