package wuikit

// pointerEvents turns raw left button and mouse move messages into the
// PointerSource callbacks. Controls embed it and feed it screen coordinates.
type pointerEvents struct {
	onDown  func(screen Point)
	onMove  func(screen Point)
	onUp    func(screen Point)
	pressed bool
	last    Point
}

func (e *pointerEvents) SetOnPointerDown(f func(screen Point)) {
	e.onDown = f
}

func (e *pointerEvents) SetOnPointerMove(f func(screen Point)) {
	e.onMove = f
}

func (e *pointerEvents) SetOnPointerUp(f func(screen Point)) {
	e.onUp = f
}

// Pressed reports whether the left button went down over the control and
// was not released since.
func (e *pointerEvents) Pressed() bool {
	return e.pressed
}

func (e *pointerEvents) pointerDown(p Point) {
	e.pressed = true
	e.last = p
	if e.onDown != nil {
		e.onDown(p)
	}
}

func (e *pointerEvents) pointerMove(p Point) {
	e.last = p
	if e.onMove != nil {
		e.onMove(p)
	}
}

// pointerUp reports whether a press was active. Releases without a press, e.g.
// when the button went down over another window, are ignored.
func (e *pointerEvents) pointerUp(p Point) bool {
	if !e.pressed {
		return false
	}
	e.pressed = false
	e.last = p
	if e.onUp != nil {
		e.onUp(p)
	}
	return true
}

// captureLost ends an active press at the last known position. Windows takes
// the mouse capture away e.g. when Alt+Tab switches to another window while
// the button is held down, the release then never reaches us.
func (e *pointerEvents) captureLost() {
	e.pointerUp(e.last)
}
