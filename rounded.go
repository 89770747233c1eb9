package wuikit

import "math"

// Corner identifies one of the four corners of a rectangle.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomRight:
		return "BottomRight"
	case BottomLeft:
		return "BottomLeft"
	default:
		return "unknown Corner"
	}
}

// CornerRadii holds one radius per corner, in pixels.
type CornerRadii struct {
	TopLeft     int
	TopRight    int
	BottomLeft  int
	BottomRight int
}

// UniformRadii returns radii with all four corners set to r.
func UniformRadii(r int) CornerRadii {
	return CornerRadii{TopLeft: r, TopRight: r, BottomLeft: r, BottomRight: r}
}

// Get returns the radius of corner c.
func (r CornerRadii) Get(c Corner) int {
	switch c {
	case TopLeft:
		return r.TopLeft
	case TopRight:
		return r.TopRight
	case BottomRight:
		return r.BottomRight
	case BottomLeft:
		return r.BottomLeft
	}
	return 0
}

// With returns a copy of r with corner c set to radius.
func (r CornerRadii) With(c Corner, radius int) CornerRadii {
	switch c {
	case TopLeft:
		r.TopLeft = radius
	case TopRight:
		r.TopRight = radius
	case BottomRight:
		r.BottomRight = radius
	case BottomLeft:
		r.BottomLeft = radius
	}
	return r
}

// Max returns the largest of the four radii.
func (r CornerRadii) Max() int {
	m := r.TopLeft
	for _, v := range []int{r.TopRight, r.BottomRight, r.BottomLeft} {
		if v > m {
			m = v
		}
	}
	return m
}

// clamped raises every radius below 1 to 1. A zero radius would make a zero
// sized arc which Windows treats as an invalid path.
func (r CornerRadii) clamped() CornerRadii {
	atLeast1 := func(v int) int {
		if v < 1 {
			return 1
		}
		return v
	}
	return CornerRadii{
		TopLeft:     atLeast1(r.TopLeft),
		TopRight:    atLeast1(r.TopRight),
		BottomLeft:  atLeast1(r.BottomLeft),
		BottomRight: atLeast1(r.BottomRight),
	}
}

// PointF is a point with sub-pixel precision.
type PointF struct {
	X, Y float64
}

// Arc is an elliptic arc given by its bounding box. Angles are in degrees,
// 0 points to the right and positive sweeps go clockwise on screen (y grows
// downwards), the same convention as GDI+.
type Arc struct {
	X, Y, Width, Height float64
	StartAngle          float64
	Sweep               float64
}

// At returns the point on the arc's ellipse at the given angle.
func (a Arc) At(degrees float64) PointF {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	rx, ry := a.Width/2, a.Height/2
	return PointF{
		X: a.X + rx + rx*cos,
		Y: a.Y + ry + ry*sin,
	}
}

// Start is the first point of the arc.
func (a Arc) Start() PointF { return a.At(a.StartAngle) }

// End is the last point of the arc.
func (a Arc) End() PointF { return a.At(a.StartAngle + a.Sweep) }

// Path is a closed figure made of four corner arcs. Consecutive arcs are
// joined by straight lines and the last arc's end is joined to the first
// arc's start.
type Path struct {
	Arcs   [4]Arc
	closed bool
}

// Closed reports whether the figure is closed. Paths built by RoundedRectPath
// always are.
func (p Path) Closed() bool {
	return p.closed
}

// RoundedRectPath builds the outline of a width x height rectangle with
// rounded corners. Radii below 1 are treated as 1. The arcs are added
// clockwise starting at the top-left corner, each arc's box sits in its
// corner and is 2*radius wide and high.
//
// Radii larger than half the width or height are not reduced, the arcs then
// overlap the way they do in GDI+.
func RoundedRectPath(width, height int, radii CornerRadii) Path {
	r := radii.clamped()
	w, h := float64(width), float64(height)
	tl := float64(2 * r.TopLeft)
	tr := float64(2 * r.TopRight)
	br := float64(2 * r.BottomRight)
	bl := float64(2 * r.BottomLeft)
	return Path{
		Arcs: [4]Arc{
			{X: 0, Y: 0, Width: tl, Height: tl, StartAngle: 180, Sweep: 90},
			{X: w - tr, Y: 0, Width: tr, Height: tr, StartAngle: 270, Sweep: 90},
			{X: w - br, Y: h - br, Width: br, Height: br, StartAngle: 0, Sweep: 90},
			{X: 0, Y: h - bl, Width: bl, Height: bl, StartAngle: 90, Sweep: 90},
		},
		closed: true,
	}
}

// insetDirections points from each arc's outer corner into the rectangle, in
// the order the arcs are stored.
var insetDirections = [4]PointF{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}

// Inset returns the path shrunk by d pixels on every side. The straight edges
// move inwards by d and the arc radii shrink by d. An arc whose radius is
// smaller than d collapses to a sharp corner d pixels in from the outer
// corner.
func (p Path) Inset(d float64) Path {
	for i, a := range p.Arcs {
		dir := insetDirections[i]
		cornerX, cornerY := a.X, a.Y
		if dir.X < 0 {
			cornerX += a.Width
		}
		if dir.Y < 0 {
			cornerY += a.Height
		}
		rx := math.Max(0, a.Width/2-d)
		ry := math.Max(0, a.Height/2-d)
		cx := cornerX + dir.X*(d+rx)
		cy := cornerY + dir.Y*(d+ry)
		p.Arcs[i].X = cx - rx
		p.Arcs[i].Y = cy - ry
		p.Arcs[i].Width = 2 * rx
		p.Arcs[i].Height = 2 * ry
	}
	return p
}

// Polygon flattens the path. Every arc is approximated by segmentsPerArc line
// segments, at least 1. The polygon is implicitly closed, the last point is
// not repeated at the end.
func (p Path) Polygon(segmentsPerArc int) []PointF {
	if segmentsPerArc < 1 {
		segmentsPerArc = 1
	}
	points := make([]PointF, 0, 4*(segmentsPerArc+1))
	for _, a := range p.Arcs {
		for i := 0; i <= segmentsPerArc; i++ {
			angle := a.StartAngle + a.Sweep*float64(i)/float64(segmentsPerArc)
			points = append(points, a.At(angle))
		}
	}
	return points
}

// segments returns how many line segments are needed per arc for the
// flattened outline to stay within a fraction of a pixel of the real arc.
func (p Path) segments() int {
	var maxR float64
	for _, a := range p.Arcs {
		maxR = math.Max(maxR, math.Max(a.Width, a.Height)/2)
	}
	n := int(math.Ceil(maxR/2)) + 2
	if n > 64 {
		n = 64
	}
	return n
}

// Points returns the flattened outline rounded to whole pixels, as used for
// window regions.
func (p Path) Points() []Point {
	poly := p.Polygon(p.segments())
	points := make([]Point, 0, len(poly))
	for _, f := range poly {
		q := Pt(int(math.Round(f.X)), int(math.Round(f.Y)))
		if n := len(points); n > 0 && points[n-1] == q {
			continue
		}
		points = append(points, q)
	}
	if n := len(points); n > 1 && points[0] == points[n-1] {
		points = points[:n-1]
	}
	return points
}

// Contains reports whether the point (x, y) lies inside the path. This is
// the hit test for rounded controls, points in the cut-off corners are
// outside.
func (p Path) Contains(x, y float64) bool {
	return polygonContains(p.Polygon(p.segments()), x, y)
}

func polygonContains(poly []PointF, x, y float64) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > y) != (b.Y > y) &&
			x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
