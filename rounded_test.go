package wuikit

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gonutz/check"
)

func TestRoundedRectPathPlacesArcsInCorners(t *testing.T) {
	p := RoundedRectPath(100, 60, CornerRadii{
		TopLeft:     5,
		TopRight:    10,
		BottomRight: 15,
		BottomLeft:  20,
	})
	check.Eq(t, p.Arcs, [4]Arc{
		{X: 0, Y: 0, Width: 10, Height: 10, StartAngle: 180, Sweep: 90},
		{X: 80, Y: 0, Width: 20, Height: 20, StartAngle: 270, Sweep: 90},
		{X: 70, Y: 30, Width: 30, Height: 30, StartAngle: 0, Sweep: 90},
		{X: 0, Y: 20, Width: 40, Height: 40, StartAngle: 90, Sweep: 90},
	})
}

func TestArcsContinueWhereThePreviousEnded(t *testing.T) {
	p := RoundedRectPath(80, 50, UniformRadii(8))
	for i := range p.Arcs {
		prev := p.Arcs[(i+3)%4]
		end := math.Mod(prev.StartAngle+prev.Sweep, 360)
		if p.Arcs[i].StartAngle != end {
			t.Errorf("arc %d starts at %v, previous arc ends at %v", i, p.Arcs[i].StartAngle, end)
		}
	}
}

func TestArcEndpointsLieOnTheRectangleEdges(t *testing.T) {
	near := func(a, b PointF) {
		t.Helper()
		if math.Abs(a.X-b.X) > 1e-9 || math.Abs(a.Y-b.Y) > 1e-9 {
			t.Errorf("want %v but have %v", b, a)
		}
	}
	p := RoundedRectPath(100, 60, UniformRadii(10))
	near(p.Arcs[0].Start(), PointF{0, 10})
	near(p.Arcs[0].End(), PointF{10, 0})
	near(p.Arcs[1].Start(), PointF{90, 0})
	near(p.Arcs[1].End(), PointF{100, 10})
	near(p.Arcs[2].Start(), PointF{100, 50})
	near(p.Arcs[2].End(), PointF{90, 60})
	near(p.Arcs[3].Start(), PointF{10, 60})
	near(p.Arcs[3].End(), PointF{0, 50})
}

func TestRadiiBelowOneAreDrawnAsOne(t *testing.T) {
	one := RoundedRectPath(40, 40, UniformRadii(1))
	check.Eq(t, RoundedRectPath(40, 40, UniformRadii(0)), one)
	check.Eq(t, RoundedRectPath(40, 40, UniformRadii(-7)), one)
	check.Eq(t, RoundedRectPath(40, 40, CornerRadii{
		TopLeft:     0,
		TopRight:    1,
		BottomLeft:  -1,
		BottomRight: 1,
	}), one)
}

func TestPathsAreAlwaysClosed(t *testing.T) {
	for _, r := range []int{-1, 0, 1, 3, 10, 25} {
		for _, size := range []Size{{50, 50}, {51, 120}, {300, 60}} {
			p := RoundedRectPath(size.Width, size.Height, UniformRadii(r))
			if !p.Closed() {
				t.Errorf("path for radius %d and size %v is open", r, size)
			}
			poly := p.Polygon(4)
			check.Eq(t, len(poly), 20)
			check.Eq(t, p.Contains(float64(size.Width)/2, float64(size.Height)/2), true)
		}
	}
	check.Eq(t, Path{}.Closed(), false)
}

func TestContainsExcludesCutOffCorners(t *testing.T) {
	p := RoundedRectPath(100, 60, UniformRadii(20))
	check.Eq(t, p.Contains(50, 30), true)
	check.Eq(t, p.Contains(1, 30), true)
	check.Eq(t, p.Contains(50, 1), true)
	check.Eq(t, p.Contains(2, 2), false)
	check.Eq(t, p.Contains(98, 2), false)
	check.Eq(t, p.Contains(98, 58), false)
	check.Eq(t, p.Contains(2, 58), false)
	check.Eq(t, p.Contains(-1, 30), false)
	check.Eq(t, p.Contains(101, 30), false)
	check.Eq(t, p.Contains(20, 20), true)
}

func TestInsetShrinksEdgesAndRadii(t *testing.T) {
	p := RoundedRectPath(100, 60, UniformRadii(10)).Inset(3)
	check.Eq(t, p.Arcs[0], Arc{X: 3, Y: 3, Width: 14, Height: 14, StartAngle: 180, Sweep: 90})
	check.Eq(t, p.Arcs[2], Arc{X: 83, Y: 43, Width: 14, Height: 14, StartAngle: 0, Sweep: 90})
	check.Eq(t, p.Closed(), true)
}

func TestInsetBeyondRadiusMakesSharpCorners(t *testing.T) {
	p := RoundedRectPath(100, 60, UniformRadii(2)).Inset(5)
	check.Eq(t, p.Arcs[0], Arc{X: 5, Y: 5, Width: 0, Height: 0, StartAngle: 180, Sweep: 90})
	check.Eq(t, p.Arcs[1], Arc{X: 95, Y: 5, Width: 0, Height: 0, StartAngle: 270, Sweep: 90})
	check.Eq(t, p.Arcs[2], Arc{X: 95, Y: 55, Width: 0, Height: 0, StartAngle: 0, Sweep: 90})
	check.Eq(t, p.Arcs[3], Arc{X: 5, Y: 55, Width: 0, Height: 0, StartAngle: 90, Sweep: 90})
}

func TestPointsHaveNoConsecutiveDuplicates(t *testing.T) {
	points := RoundedRectPath(30, 30, UniformRadii(1)).Points()
	for i := range points {
		next := points[(i+1)%len(points)]
		if points[i] == next {
			t.Fatalf("duplicate point %v at %d in %v", next, i, points)
		}
	}
	check.Eq(t, len(points) >= 4, true)
}

func TestUniformModeIgnoresIndividualCorners(t *testing.T) {
	s := NewRoundedShape()
	s.SetUniformRadius(6)
	s.SetUseUniformRadius(true)
	before := s.Path(80, 40)

	s.SetCornerRadius(TopLeft, 30)
	s.SetCornerRadii(CornerRadii{1, 2, 3, 4})
	check.Eq(t, s.Path(80, 40), before)
	check.Eq(t, s.EffectiveRadii(), UniformRadii(6))

	s.SetUniformRadius(12)
	check.Eq(t, s.Path(80, 40) == before, false)
	check.Eq(t, s.Path(80, 40), RoundedRectPath(80, 40, UniformRadii(12)))

	s.SetUseUniformRadius(false)
	check.Eq(t, s.EffectiveRadii(), CornerRadii{1, 2, 3, 4})
}

func TestEffectiveRadiiAreClamped(t *testing.T) {
	s := NewRoundedShape()
	s.SetCornerRadii(CornerRadii{TopLeft: 0, TopRight: -3, BottomLeft: 4, BottomRight: 1})
	check.Eq(t, s.EffectiveRadii(), CornerRadii{TopLeft: 1, TopRight: 1, BottomLeft: 4, BottomRight: 1})

	s.SetUniformRadius(0)
	s.SetUseUniformRadius(true)
	check.Eq(t, s.EffectiveRadii(), UniformRadii(1))
	check.Eq(t, s.Path(20, 20), RoundedRectPath(20, 20, UniformRadii(1)))
}

func TestEverySetterInvalidatesTheCachedPath(t *testing.T) {
	s := NewRoundedShape()
	var changes int
	s.SetOnChange(func() { changes++ })

	s.Path(50, 50)
	s.Path(50, 50)
	check.Eq(t, s.recomputed, 1)

	setters := []func(){
		func() { s.SetCornerRadii(UniformRadii(3)) },
		func() { s.SetCornerRadius(BottomLeft, 7) },
		func() { s.SetUniformRadius(4) },
		func() { s.SetUseUniformRadius(true) },
		func() { s.SetBorderColor(RGB(255, 0, 0)) },
		func() { s.SetBorderThickness(3) },
		func() { s.SetBorder(BorderStyle{Color: RGB(0, 0, 255), Thickness: 2}) },
		func() { s.SetFillColor(RGB(1, 2, 3)) },
	}
	for i, set := range setters {
		set()
		s.Path(50, 50)
		if s.recomputed != i+2 {
			t.Errorf("setter %d did not invalidate the path", i)
		}
	}
	check.Eq(t, changes, len(setters))
}

func TestResizeRecomputesPath(t *testing.T) {
	s := NewRoundedShape()
	a := s.Path(50, 50)
	b := s.Path(60, 50)
	check.Eq(t, s.recomputed, 2)
	check.Eq(t, a == b, false)
}

func TestNegativeBorderThicknessMeansNoBorder(t *testing.T) {
	s := NewRoundedShape()
	s.SetBorderThickness(-2)
	check.Eq(t, s.BorderThickness(), 0)
}

func TestRenderRoundedDrawsBorderInsideTheOutline(t *testing.T) {
	red := RGB(255, 0, 0)
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	p := RoundedRectPath(40, 30, UniformRadii(8))
	RenderRounded(img, p, nil, BorderStyle{Color: red, Thickness: 2})

	check.Eq(t, img.RGBAAt(0, 0).A, uint8(0))
	check.Eq(t, img.RGBAAt(39, 29).A, uint8(0))
	check.Eq(t, img.RGBAAt(20, 0), color.RGBA{255, 0, 0, 255})
	check.Eq(t, img.RGBAAt(20, 1), color.RGBA{255, 0, 0, 255})
	check.Eq(t, img.RGBAAt(20, 2).A, uint8(0))
	check.Eq(t, img.RGBAAt(0, 15), color.RGBA{255, 0, 0, 255})
	check.Eq(t, img.RGBAAt(20, 15).A, uint8(0))
}

func TestRenderRoundedSmoothsCurvedEdges(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	p := RoundedRectPath(40, 40, UniformRadii(12))
	RenderRounded(img, p, RGB(0, 0, 0), BorderStyle{})

	partial := 0
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if a := img.RGBAAt(x, y).A; 0 < a && a < 255 {
				partial++
			}
		}
	}
	if partial == 0 {
		t.Error("corner has no partially covered pixels, edges are not anti-aliased")
	}
	check.Eq(t, img.RGBAAt(20, 20), color.RGBA{0, 0, 0, 255})
	check.Eq(t, img.RGBAAt(0, 0).A, uint8(0))
}

func TestRenderRoundedOnEmptyImageDoesNothing(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	RenderRounded(img, RoundedRectPath(0, 0, UniformRadii(1)), RGB(1, 1, 1), BorderStyle{Thickness: 1})
}

func TestToBGRASwapsRedAndBlue(t *testing.T) {
	rgba := []byte{1, 2, 3, 4, 10, 20, 30, 40}
	bgra := toBGRA(rgba)
	check.Eq(t, bgra, []byte{3, 2, 1, 4, 30, 20, 10, 40})
	check.Eq(t, rgba, []byte{1, 2, 3, 4, 10, 20, 30, 40})
}
