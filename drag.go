package wuikit

// PointerSource is anything that reports left mouse button presses, mouse
// moves and releases in screen coordinates. Setting a callback replaces the
// previous one, nil removes it.
type PointerSource interface {
	SetOnPointerDown(f func(screen Point))
	SetOnPointerMove(f func(screen Point))
	SetOnPointerUp(f func(screen Point))
}

// Positioner is anything with a movable top-left corner, e.g. a Window.
type Positioner interface {
	Pos() (x, y int)
	SetPos(x, y int)
}

// DragController moves a window by the distance the mouse travelled since the
// last press. It only does the arithmetic, BindDrag wires it to a handle and a
// window.
//
// The anchors are only meaningful while a drag is active. Every press
// overwrites them, so nothing carries over from one drag to the next. The new
// position is not clamped to any monitor, a window may be dragged partly or
// entirely off-screen.
type DragController struct {
	active       bool
	anchorMouse  Point
	anchorWindow Point
}

func NewDragController() *DragController {
	return &DragController{}
}

// Active reports whether a drag is in progress, i.e. Press was called and
// Release was not called since.
func (d *DragController) Active() bool {
	return d.active
}

// Press starts a drag. mouse is the cursor position in screen coordinates,
// window is the window's current top-left corner.
func (d *DragController) Press(mouse, window Point) {
	d.active = true
	d.anchorMouse = mouse
	d.anchorWindow = window
}

// Move returns the position the window should be moved to for the given
// mouse position. If no drag is active, ok is false and the window must stay
// where it is.
func (d *DragController) Move(mouse Point) (newWindowPos Point, ok bool) {
	if !d.active {
		return Point{}, false
	}
	return d.anchorWindow.Add(mouse.Sub(d.anchorMouse)), true
}

// Release ends the current drag. Calling it without an active drag does
// nothing.
func (d *DragController) Release() {
	d.active = false
}

// BindDrag makes window follow the mouse while the left mouse button is held
// down on handle. This is what a title bar does, use it for windows without a
// system caption. The returned controller can be queried for the drag state.
//
// BindDrag takes over handle's pointer callbacks.
func BindDrag(handle PointerSource, window Positioner) *DragController {
	d := NewDragController()
	handle.SetOnPointerDown(func(mouse Point) {
		x, y := window.Pos()
		d.Press(mouse, Pt(x, y))
		componentLogger("drag").Debug().
			Stringer("mouse", mouse).
			Int("x", x).Int("y", y).
			Msg("drag started")
	})
	handle.SetOnPointerMove(func(mouse Point) {
		if p, ok := d.Move(mouse); ok {
			window.SetPos(p.X, p.Y)
		}
	})
	handle.SetOnPointerUp(func(mouse Point) {
		if d.Active() {
			componentLogger("drag").Debug().Stringer("mouse", mouse).Msg("drag ended")
		}
		d.Release()
	})
	return d
}
