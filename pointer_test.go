package wuikit

import (
	"testing"

	"github.com/gonutz/check"
)

func TestPointerEventsDriveDrag(t *testing.T) {
	var e pointerEvents
	w := &fakeWindow{x: 100, y: 100}
	d := BindDrag(&e, w)

	e.pointerMove(Pt(10, 10))
	check.Eq(t, w.moves, 0)

	e.pointerDown(Pt(50, 50))
	check.Eq(t, e.Pressed(), true)
	e.pointerMove(Pt(70, 65))
	check.Eq(t, Pt(w.x, w.y), Pt(120, 115))
	e.pointerMove(Pt(40, 30))
	check.Eq(t, Pt(w.x, w.y), Pt(90, 80))

	check.Eq(t, e.pointerUp(Pt(40, 30)), true)
	check.Eq(t, d.Active(), false)
	e.pointerMove(Pt(200, 200))
	check.Eq(t, Pt(w.x, w.y), Pt(90, 80))
}

func TestReleaseWithoutPressIsIgnored(t *testing.T) {
	var e pointerEvents
	ups := 0
	e.SetOnPointerUp(func(Point) { ups++ })

	check.Eq(t, e.pointerUp(Pt(1, 1)), false)
	check.Eq(t, ups, 0)

	e.pointerDown(Pt(0, 0))
	check.Eq(t, e.pointerUp(Pt(1, 1)), true)
	check.Eq(t, e.pointerUp(Pt(1, 1)), false)
	check.Eq(t, ups, 1)
}

func TestLosingCaptureEndsDragAtLastPosition(t *testing.T) {
	var e pointerEvents
	w := &fakeWindow{x: 0, y: 0}
	d := BindDrag(&e, w)
	var releasedAt Point
	up := e.onUp
	e.SetOnPointerUp(func(p Point) {
		releasedAt = p
		up(p)
	})

	e.pointerDown(Pt(10, 10))
	e.pointerMove(Pt(15, 12))
	e.captureLost()

	check.Eq(t, d.Active(), false)
	check.Eq(t, e.Pressed(), false)
	check.Eq(t, releasedAt, Pt(15, 12))

	e.pointerMove(Pt(100, 100))
	check.Eq(t, Pt(w.x, w.y), Pt(5, 2))

	// a second capture change without a press does nothing
	e.captureLost()
	check.Eq(t, releasedAt, Pt(15, 12))
}

func TestNilCallbacksAreAllowed(t *testing.T) {
	var e pointerEvents
	e.pointerDown(Pt(1, 1))
	e.pointerMove(Pt(2, 2))
	e.pointerUp(Pt(3, 3))
	check.Eq(t, e.Pressed(), false)
	check.Eq(t, e.last, Pt(3, 3))
}
