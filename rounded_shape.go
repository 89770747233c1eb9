package wuikit

// BorderStyle is the outline drawn along a rounded shape. A Thickness of 0
// draws no border.
type BorderStyle struct {
	Color     Color
	Thickness int
}

// RoundedShape is the state behind a rounded control: corner radii, an
// optional uniform radius that overrides all four corners, the border and
// the fill color. It caches the outline for the last requested size. Every
// setter drops that cache, the next call to Path computes the outline from
// scratch.
type RoundedShape struct {
	radii      CornerRadii
	uniform    int
	useUniform bool
	border     BorderStyle
	fill       Color

	cache      Path
	cacheSize  Size
	cacheValid bool
	recomputed int

	onChange func()
}

// NewRoundedShape returns a shape with 10 pixel corners, a 1 pixel dark gray
// border and a light gray fill.
func NewRoundedShape() *RoundedShape {
	return &RoundedShape{
		radii:   UniformRadii(10),
		uniform: 10,
		border:  BorderStyle{Color: RGB(64, 64, 64), Thickness: 1},
		fill:    RGB(240, 240, 240),
	}
}

// SetOnChange registers f to be called after every setter. Controls use this
// to schedule a repaint.
func (s *RoundedShape) SetOnChange(f func()) {
	s.onChange = f
}

func (s *RoundedShape) changed() {
	s.cacheValid = false
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *RoundedShape) CornerRadii() CornerRadii {
	return s.radii
}

// SetCornerRadii sets the individual corner radii. They have no effect while
// the uniform radius is in use.
func (s *RoundedShape) SetCornerRadii(r CornerRadii) {
	s.radii = r
	s.changed()
}

func (s *RoundedShape) CornerRadius(c Corner) int {
	return s.radii.Get(c)
}

func (s *RoundedShape) SetCornerRadius(c Corner, radius int) {
	s.radii = s.radii.With(c, radius)
	s.changed()
}

func (s *RoundedShape) UniformRadius() int {
	return s.uniform
}

func (s *RoundedShape) SetUniformRadius(r int) {
	s.uniform = r
	s.changed()
}

func (s *RoundedShape) UsesUniformRadius() bool {
	return s.useUniform
}

// SetUseUniformRadius switches between the uniform radius for all corners
// (true) and the individual corner radii (false).
func (s *RoundedShape) SetUseUniformRadius(uniform bool) {
	s.useUniform = uniform
	s.changed()
}

func (s *RoundedShape) Border() BorderStyle {
	return s.border
}

func (s *RoundedShape) SetBorder(b BorderStyle) {
	s.border = b
	s.changed()
}

func (s *RoundedShape) BorderColor() Color {
	return s.border.Color
}

func (s *RoundedShape) SetBorderColor(c Color) {
	s.border.Color = c
	s.changed()
}

func (s *RoundedShape) BorderThickness() int {
	return s.border.Thickness
}

// SetBorderThickness sets the border width in pixels, negative values are
// treated as 0.
func (s *RoundedShape) SetBorderThickness(t int) {
	if t < 0 {
		t = 0
	}
	s.border.Thickness = t
	s.changed()
}

func (s *RoundedShape) FillColor() Color {
	return s.fill
}

func (s *RoundedShape) SetFillColor(c Color) {
	s.fill = c
	s.changed()
}

// EffectiveRadii returns the radii that are actually drawn: the uniform
// radius on all corners if it is in use, the individual radii otherwise, and
// every value raised to at least 1.
func (s *RoundedShape) EffectiveRadii() CornerRadii {
	if s.useUniform {
		return UniformRadii(s.uniform).clamped()
	}
	return s.radii.clamped()
}

// Path returns the outline for a control of the given size.
func (s *RoundedShape) Path(width, height int) Path {
	size := Size{Width: width, Height: height}
	if s.cacheValid && s.cacheSize == size {
		return s.cache
	}
	s.cache = RoundedRectPath(width, height, s.EffectiveRadii())
	s.cacheSize = size
	s.cacheValid = true
	s.recomputed++
	logger.Debug().
		Str("component", "rounded").
		Stringer("size", size).
		Interface("radii", s.EffectiveRadii()).
		Msg("outline recomputed")
	return s.cache
}
