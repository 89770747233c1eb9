//go:build windows

package wuikit

import (
	"slices"
	"time"
)

const (
	inputDialogWidth  = 320
	inputDialogHeight = 120
	inputMargin       = 10
	inputButtonWidth  = 85
	inputButtonHeight = 25
)

type inputEditor interface {
	Control
	SetBounds(x, y, width, height int)
	Focus()
}

// runInputDialog shows a modal dialog with the request's prompt above editor
// and OK and Cancel buttons below it. OK and Enter call confirm, which copies
// the editor's value into the dialog's own result.
func runInputDialog(parent *Window, req InputRequest, kind string, editor inputEditor, confirm func(*dialogResult)) dialogResult {
	var res dialogResult

	w := NewDialogWindow()
	w.SetTitle(req.Caption)
	w.SetClientSize(inputDialogWidth, inputDialogHeight)

	inner := inputDialogWidth - 2*inputMargin
	prompt := NewLabel()
	prompt.SetText(req.Prompt)
	prompt.SetBounds(inputMargin, inputMargin, inner, 20)
	w.Add(prompt)

	editor.SetBounds(inputMargin, 35, inner, 24)
	w.Add(editor)

	buttonY := inputDialogHeight - inputMargin - inputButtonHeight
	ok := NewButton()
	ok.SetText("OK")
	ok.SetDefault(true)
	ok.SetBounds(
		inputDialogWidth-2*(inputMargin+inputButtonWidth), buttonY,
		inputButtonWidth, inputButtonHeight,
	)
	w.Add(ok)

	cancel := NewButton()
	cancel.SetText("Cancel")
	cancel.SetBounds(
		inputDialogWidth-inputMargin-inputButtonWidth, buttonY,
		inputButtonWidth, inputButtonHeight,
	)
	w.Add(cancel)

	accept := func() {
		confirm(&res)
		w.Close()
	}
	ok.SetOnClick(accept)
	w.SetOnEnter(accept)
	cancel.SetOnClick(w.Close)
	w.SetOnEscape(w.Close)
	w.SetOnShow(func() {
		centerOver(w, parent)
		editor.Focus()
	})

	if err := w.ShowModal(); err != nil {
		componentLogger("input").Error().Err(err).Str("dialog", kind).Msg("dialog not shown")
		return dialogResult{}
	}
	componentLogger("input").Debug().
		Str("dialog", kind).
		Bool("confirmed", res.confirmed).
		Msg("dialog closed")
	return res
}

func centerOver(w, parent *Window) {
	if parent == nil || parent.handle == 0 {
		return
	}
	px, py, pw, ph := parent.Bounds()
	_, _, ww, wh := w.Bounds()
	w.SetPos(px+(pw-ww)/2, py+(ph-wh)/2)
}

// InputText asks for a line of text, pre-filled with req.Default. It returns
// "" and false if the dialog was cancelled.
func InputText(parent *Window, req InputRequest) (string, bool) {
	return inputLine(parent, req, "text", false)
}

// InputPassword works like InputText but hides the typed characters.
func InputPassword(parent *Window, req InputRequest) (string, bool) {
	return inputLine(parent, req, "password", true)
}

func inputLine(parent *Window, req InputRequest, kind string, password bool) (string, bool) {
	edit := NewEditLine()
	edit.SetText(req.Default)
	edit.SetPassword(password)
	edit.SelectAll()
	res := runInputDialog(parent, req, kind, edit, func(res *dialogResult) {
		res.confirmText(edit.Text())
	})
	return parseInputText(res)
}

// InputChoice lets the user pick one of req.Choices, req.Default is selected
// initially if it is one of them. It returns "" and false if nothing was
// chosen.
func InputChoice(parent *Window, req InputRequest) (string, bool) {
	combo := NewComboBox()
	FillItems(combo, req.Choices, slices.Index(req.Choices, req.Default))
	res := runInputDialog(parent, req, "choice", combo, func(res *dialogResult) {
		res.confirmIndex(combo.SelectedIndex())
	})
	return parseInputChoice(res, req.Choices)
}

// InputDate asks for a date between req.MinDate and req.MaxDate, zero bounds
// are open. req.Default is parsed with req.DateLayout, today is shown if it
// is empty or invalid. It returns the zero time and false if the dialog was
// cancelled.
func InputDate(parent *Window, req InputRequest) (time.Time, bool) {
	picker := NewDatePicker()
	picker.SetDateRange(req.MinDate, req.MaxDate)
	if t, ok := parseDateText(req.Default, req); ok {
		picker.SetDate(t)
	} else {
		picker.SetDate(today())
	}
	res := runInputDialog(parent, req, "date", picker, func(res *dialogResult) {
		res.confirmDate(picker.Date())
	})
	return parseInputDate(res, req)
}

// InputNumber asks for a number with req.Precision decimal places, limited to
// [req.Min, req.Max] if Min < Max. It returns 0 and false if the dialog was
// cancelled or the text is no number.
func InputNumber(parent *Window, req InputRequest) (float64, bool) {
	number := NewFloatUpDown()
	number.SetPrecision(req.Precision)
	if req.bounded() {
		number.SetMinMaxValues(req.Min, req.Max)
	}
	var seed dialogResult
	seed.confirmText(req.Default)
	if v, ok := parseInputNumber(seed, req); ok {
		number.SetValue(v)
	}
	res := runInputDialog(parent, req, "number", number, func(res *dialogResult) {
		res.confirmText(number.Text())
	})
	return parseInputNumber(res, req)
}
