package wuikit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gonutz/check"
	"github.com/rs/zerolog"
)

func TestDragMovesWindowByMouseDistance(t *testing.T) {
	d := NewDragController()
	d.Press(Pt(50, 50), Pt(100, 100))

	p, ok := d.Move(Pt(70, 65))
	check.Eq(t, ok, true)
	check.Eq(t, p, Pt(120, 115))

	p, ok = d.Move(Pt(40, 30))
	check.Eq(t, ok, true)
	check.Eq(t, p, Pt(90, 80))

	// the anchor is not updated by moves, going back restores the start
	p, _ = d.Move(Pt(50, 50))
	check.Eq(t, p, Pt(100, 100))
}

func TestDragDisplacementHoldsForNegativeCoordinates(t *testing.T) {
	d := NewDragController()
	d.Press(Pt(-300, 20), Pt(-1920, -5))
	p, ok := d.Move(Pt(-310, -40))
	check.Eq(t, ok, true)
	check.Eq(t, p, Pt(-1930, -65))
}

func TestMoveWithoutPressDoesNothing(t *testing.T) {
	d := NewDragController()
	_, ok := d.Move(Pt(10, 10))
	check.Eq(t, ok, false)
	check.Eq(t, d.Active(), false)
}

func TestMoveAfterReleaseDoesNothing(t *testing.T) {
	d := NewDragController()
	d.Press(Pt(0, 0), Pt(0, 0))
	d.Release()
	_, ok := d.Move(Pt(10, 10))
	check.Eq(t, ok, false)
}

func TestReleaseIsIdempotent(t *testing.T) {
	once := NewDragController()
	once.Press(Pt(1, 2), Pt(3, 4))
	once.Release()

	twice := NewDragController()
	twice.Press(Pt(1, 2), Pt(3, 4))
	twice.Release()
	twice.Release()

	check.Eq(t, *twice, *once)
	_, ok := twice.Move(Pt(5, 5))
	check.Eq(t, ok, false)

	never := NewDragController()
	never.Release()
	check.Eq(t, never.Active(), false)
}

func TestPressResetsAnchors(t *testing.T) {
	d := NewDragController()
	d.Press(Pt(0, 0), Pt(0, 0))
	d.Move(Pt(100, 100))
	d.Release()

	d.Press(Pt(10, 10), Pt(500, 500))
	p, _ := d.Move(Pt(11, 12))
	check.Eq(t, p, Pt(501, 502))

	// pressing again without a release also starts over
	d.Press(Pt(0, 0), Pt(7, 7))
	p, _ = d.Move(Pt(1, 1))
	check.Eq(t, p, Pt(8, 8))
}

type fakeHandle struct {
	down, move, up func(Point)
}

func (h *fakeHandle) SetOnPointerDown(f func(Point)) { h.down = f }
func (h *fakeHandle) SetOnPointerMove(f func(Point)) { h.move = f }
func (h *fakeHandle) SetOnPointerUp(f func(Point))   { h.up = f }

type fakeWindow struct {
	x, y  int
	moves int
}

func (w *fakeWindow) Pos() (x, y int) { return w.x, w.y }

func (w *fakeWindow) SetPos(x, y int) {
	w.x, w.y = x, y
	w.moves++
}

func TestBindDragMovesWindowThroughWholeSession(t *testing.T) {
	h := &fakeHandle{}
	w := &fakeWindow{x: 100, y: 100}
	d := BindDrag(h, w)

	checkPos := func(x, y int) {
		t.Helper()
		check.Eq(t, Pt(w.x, w.y), Pt(x, y))
	}

	h.move(Pt(500, 500))
	checkPos(100, 100)
	check.Eq(t, w.moves, 0)

	h.down(Pt(50, 50))
	check.Eq(t, d.Active(), true)
	h.move(Pt(70, 65))
	checkPos(120, 115)
	h.move(Pt(40, 30))
	checkPos(90, 80)

	h.up(Pt(40, 30))
	check.Eq(t, d.Active(), false)
	h.move(Pt(200, 200))
	checkPos(90, 80)
	check.Eq(t, w.moves, 2)

	h.up(Pt(0, 0))
	h.move(Pt(1, 1))
	checkPos(90, 80)
}

func TestBindDragAnchorsAtCurrentWindowPosition(t *testing.T) {
	h := &fakeHandle{}
	w := &fakeWindow{x: 10, y: 10}
	BindDrag(h, w)

	h.down(Pt(0, 0))
	h.move(Pt(5, 5))
	h.up(Pt(5, 5))

	// the window was moved by someone else between two drags
	w.x, w.y = 300, 400
	h.down(Pt(5, 5))
	h.move(Pt(6, 4))
	check.Eq(t, Pt(w.x, w.y), Pt(301, 399))
}

func TestBindDragLogsToLoggerSetAfterBinding(t *testing.T) {
	defer SetLogger(Logger())
	SetLogger(zerolog.Nop())

	h := &fakeHandle{}
	BindDrag(h, &fakeWindow{})

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	h.down(Pt(1, 2))
	h.up(Pt(3, 4))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	check.Eq(t, len(lines), 2)
	check.Eq(t, strings.Contains(lines[0], `"message":"drag started"`), true)
	check.Eq(t, strings.Contains(lines[0], `"component":"drag"`), true)
	check.Eq(t, strings.Contains(lines[1], `"message":"drag ended"`), true)
}
