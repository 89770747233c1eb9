//go:build windows

package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"wuikit"
	"wuikit/internal/config"
)

const (
	margin       = 16
	rowHeight    = 24
	rowGap       = 8
	labelWidth   = 110
	editorWidth  = 180
	buttonWidth  = 120
	closeButtonW = 32
)

var fruits = []string{"Apple", "Banana", "Cherry", "Date", "Elderberry"}

func runDemo(cfg config.Config, logger zerolog.Logger) error {
	colors, err := cfg.Colors()
	if err != nil {
		return err
	}
	wc := cfg.Window

	window := wuikit.NewWindow()
	window.SetTitle(wc.Title)
	window.SetBorderless(true)
	// popups have no default size, the bounds must be given
	window.SetBounds(wc.X, wc.Y, wc.Width, wc.Height)
	window.SetBackground(colors.Background)

	if font, err := wuikit.NewFont(wuikit.FontDesc{Name: "Segoe UI", Height: -14}); err == nil {
		window.SetFont(font)
		defer font.Destroy()
	} else {
		logger.Warn().Err(err).Msg("using the system font")
	}

	titleBar := wuikit.NewPanel()
	titleBar.SetBounds(0, 0, wc.Width, wc.TitleBarHeight)
	titleBar.SetCursor(wuikit.CursorSizeAll)
	window.Add(titleBar)
	wuikit.SetBackgroundColor(colors.TitleBar, titleBar)

	caption := wuikit.NewPaintbox()
	caption.SetBounds(0, 0, wc.Width-closeButtonW-8, wc.TitleBarHeight)
	caption.SetCursor(wuikit.CursorSizeAll)
	caption.SetOnPaint(func(c *wuikit.Canvas) {
		c.FillRect(0, 0, c.Width(), c.Height(), colors.TitleBar)
		_, h := c.TextExtent(wc.Title)
		c.TextOut(margin, (c.Height()-h)/2, wc.Title, wuikit.RGB(255, 255, 255))
	})
	titleBar.Add(caption)

	closeButton := wuikit.NewButton()
	closeButton.SetText("X")
	closeButton.SetBounds(wc.Width-closeButtonW-4, 4, closeButtonW, wc.TitleBarHeight-8)
	closeButton.SetOnClick(window.Close)
	titleBar.Add(closeButton)

	// the whole title bar moves the window, the caption covers most of it
	wuikit.BindDrag(titleBar, window)
	wuikit.BindDrag(caption, window)

	panel := wuikit.NewRoundedPanel()
	panel.SetBounds(
		margin, wc.TitleBarHeight+margin,
		wc.Width-2*margin, wc.Height-wc.TitleBarHeight-2*margin,
	)
	panel.SetCornerRadii(wuikit.CornerRadii{TopLeft: 4, TopRight: 24, BottomRight: 4, BottomLeft: 24})
	panel.SetUniformRadius(wc.CornerRadius)
	panel.SetUseUniformRadius(true)
	panel.SetBorderColor(colors.BorderColor)
	panel.SetBorderThickness(wc.BorderThickness)
	panel.SetBackground(colors.PanelFill)
	window.Add(panel)

	labels := []*wuikit.Label{
		wuikit.NewLabel(), wuikit.NewLabel(), wuikit.NewLabel(), wuikit.NewLabel(),
		wuikit.NewLabel(), wuikit.NewLabel(), wuikit.NewLabel(),
	}
	name := wuikit.NewEditLine()
	name.SetCharacterLimit(40)
	fruit := wuikit.NewComboBox()
	count := wuikit.NewIntUpDown()
	price := wuikit.NewFloatUpDown()
	price.SetPrecision(2)
	price.SetStep(0.25)
	delivery := wuikit.NewDatePicker()
	uniform := wuikit.NewCheckbox()
	uniform.SetChecked(true)
	radius := wuikit.NewSlider()
	basket := wuikit.NewListBox()
	notes := wuikit.NewTextEdit()
	fill := wuikit.NewProgressBar()
	notes.SetCharacterLimit(500)
	status := wuikit.NewLabel()
	orders := wuikit.NewStringTable("Count", "Fruit", "Price", "Delivery")
	var orderRows [][]string

	editors := []wuikit.Positioner{name, fruit, count, price, delivery, uniform, radius}
	if err := wuikit.SetTexts(
		[]wuikit.Texter{labels[0], labels[1], labels[2], labels[3], labels[4], labels[5], labels[6], uniform},
		[]string{"Name", "Fruit", "Count", "Price", "Delivery", "Corners", "Radius", "Uniform corners"},
	); err != nil {
		return err
	}

	labelPositions := make([]wuikit.Point, len(labels))
	editorPositions := make([]wuikit.Point, len(editors))
	for i := range labels {
		y := margin + i*(rowHeight+rowGap)
		labelPositions[i] = wuikit.Pt(margin, y+4)
		editorPositions[i] = wuikit.Pt(margin+labelWidth, y)
	}
	labelSizers := make([]wuikit.Sizer, len(labels))
	labelPositioners := make([]wuikit.Positioner, len(labels))
	for i, l := range labels {
		labelSizers[i] = l
		labelPositioners[i] = l
		panel.Add(l)
	}
	wuikit.SetSize(labelWidth-8, rowHeight-4, labelSizers...)
	if err := wuikit.SetPositions(labelPositioners, labelPositions); err != nil {
		return err
	}
	wuikit.SetSize(editorWidth, rowHeight, name, fruit, count, price, delivery, uniform, radius)
	if err := wuikit.SetPositions(editors, editorPositions); err != nil {
		return err
	}
	panel.Add(name)
	panel.Add(fruit)
	panel.Add(count)
	panel.Add(price)
	panel.Add(delivery)
	panel.Add(uniform)
	panel.Add(radius)

	wuikit.SetIntRange(0, 99, count)
	wuikit.SetIntRange(0, 64, radius)
	radius.SetValue(wc.CornerRadius)
	wuikit.SetFloatRange(0, 1000, price)
	now := time.Now()
	wuikit.SetDateRange(now, now.AddDate(0, 3, 0), delivery)

	fruit.SetBounds(margin+labelWidth, editorPositions[1].Y, editorWidth, 8*rowHeight)
	if err := wuikit.SetItemLists([]wuikit.ItemList{fruit, basket}, [][]string{fruits, nil}); err != nil {
		return err
	}
	wuikit.SelectItem(fruit, "Cherry")

	listX := margin + labelWidth + editorWidth + margin
	basket.SetBounds(listX, margin, buttonWidth, 3*(rowHeight+rowGap)-rowGap)
	panel.Add(basket)
	notes.SetBounds(listX, margin+3*(rowHeight+rowGap), buttonWidth, 4*(rowHeight+rowGap)-rowGap)
	panel.Add(notes)
	fill.SetBounds(listX, margin+7*(rowHeight+rowGap), buttonWidth, rowHeight)
	panel.Add(fill)
	updateFill := func() {
		fill.SetValue(float64(len(basket.Items())) / 10)
	}

	buttons := []*wuikit.Button{
		wuikit.NewButton(), wuikit.NewButton(), wuikit.NewButton(),
		wuikit.NewButton(), wuikit.NewButton(), wuikit.NewButton(),
	}
	buttonTexters := make([]wuikit.Texter, len(buttons))
	buttonPositioners := make([]wuikit.Positioner, len(buttons))
	buttonSizers := make([]wuikit.Sizer, len(buttons))
	buttonPositions := make([]wuikit.Point, len(buttons))
	buttonX := listX + buttonWidth + margin
	for i, b := range buttons {
		buttonTexters[i] = b
		buttonPositioners[i] = b
		buttonSizers[i] = b
		buttonPositions[i] = wuikit.Pt(buttonX, margin+i*(rowHeight+rowGap))
		panel.Add(b)
	}
	if err := wuikit.SetTexts(buttonTexters, []string{
		"Add to basket", "Ask name...", "Pick fruit...", "Pick date...", "Enter price...", "Clear",
	}); err != nil {
		return err
	}
	wuikit.SetSize(buttonWidth, rowHeight, buttonSizers...)
	if err := wuikit.SetPositions(buttonPositioners, buttonPositions); err != nil {
		return err
	}

	if bold, err := wuikit.NewFont(wuikit.FontDesc{Name: "Segoe UI", Height: -14, Bold: true}); err == nil {
		wuikit.SetFont(bold, status, closeButton)
		defer bold.Destroy()
	}
	status.SetBounds(margin, margin+8*(rowHeight+rowGap), wc.Width-4*margin, rowHeight)
	panel.Add(status)
	tableY := margin + 9*(rowHeight+rowGap)
	orders.SetBounds(margin, tableY, wc.Width-4*margin, max(3*rowHeight, panel.Height()-tableY-margin))
	panel.Add(orders)
	report := func(format string, a ...any) {
		status.SetText(fmt.Sprintf(format, a...))
	}

	buttons[0].SetOnClick(func() {
		item, ok := wuikit.SelectedItem(fruit)
		if !ok {
			wuikit.MessageBoxWarning(window, "Basket", "Choose a fruit first.")
			return
		}
		line := fmt.Sprintf("%d x %s", count.Value(), item)
		basket.AddItem(line)
		orderRows = append(orderRows, []string{
			fmt.Sprint(count.Value()),
			item,
			fmt.Sprintf("%.2f", price.Value()),
			delivery.Date().Format(wuikit.DefaultDateLayout),
		})
		wuikit.FillTable(orders, orderRows)
		updateFill()
		report("added %s at %.2f each, delivery on %s",
			line, price.Value(), delivery.Date().Format(wuikit.DefaultDateLayout))
	})
	buttons[1].SetOnClick(func() {
		text, ok := wuikit.InputText(window, wuikit.InputRequest{
			Caption: "Name",
			Prompt:  "Who is the basket for?",
			Default: name.Text(),
		})
		if ok {
			name.SetText(text)
		}
		report("name dialog: %q, %v", text, ok)
	})
	buttons[2].SetOnClick(func() {
		choice, ok := wuikit.InputChoice(window, wuikit.InputRequest{
			Caption: "Fruit",
			Prompt:  "Pick a fruit",
			Choices: fruits,
			Default: "Banana",
		})
		if ok {
			wuikit.SelectItem(fruit, choice)
		}
		report("fruit dialog: %q, %v", choice, ok)
	})
	buttons[3].SetOnClick(func() {
		date, ok := wuikit.InputDate(window, wuikit.InputRequest{
			Caption: "Delivery",
			Prompt:  "Deliver on",
			MinDate: now,
			MaxDate: now.AddDate(0, 3, 0),
			Default: delivery.Date().Format(wuikit.DefaultDateLayout),
		})
		if ok {
			delivery.SetDate(date)
		}
		report("date dialog: %s, %v", date.Format(wuikit.DefaultDateLayout), ok)
	})
	buttons[4].SetOnClick(func() {
		value, ok := wuikit.InputNumber(window, wuikit.InputRequest{
			Caption:   "Price",
			Prompt:    "Price per piece",
			Min:       0,
			Max:       1000,
			Precision: 2,
			Default:   fmt.Sprint(price.Value()),
		})
		if ok {
			price.SetValue(value)
		}
		report("number dialog: %.2f, %v", value, ok)
	})
	buttons[5].SetOnClick(func() {
		if !wuikit.MessageBoxYesNo(window, "Clear", "Empty the basket?") {
			return
		}
		wuikit.ClearItems(basket)
		orderRows = nil
		orders.Clear()
		updateFill()
		wuikit.ClearText(name, notes, status)
	})

	uniform.SetOnChange(func(checked bool) {
		panel.SetUseUniformRadius(checked)
		wuikit.SetEnabled(checked, radius)
	})
	radius.SetOnChange(func(r int) {
		panel.SetUniformRadius(r)
		report("corner radius %d", r)
	})
	orders.SetOnSelectionChange(func(row int) {
		if row >= 0 {
			report("order %d: %s x %s", row+1, orders.Cell(0, row), orders.Cell(1, row))
		}
	})
	notes.SetOnTextChange(func() {
		report("%d characters of notes", len([]rune(notes.Text())))
	})
	fruit.SetOnChange(func(i int) {
		if item, ok := wuikit.SelectedItem(fruit); ok {
			report("fruit: %s", item)
		}
	})
	name.SetOnTextChange(func() {
		wuikit.SetEnabled(name.Text() != "", buttons[0])
	})
	wuikit.SetEnabled(false, buttons[0])

	window.SetOnShow(name.Focus)
	window.SetOnEscape(window.Close)
	window.SetOnClose(func() {
		x, y := window.Pos()
		logger.Info().Int("x", x).Int("y", y).Msg("demo closed")
	})
	return window.Show()
}
