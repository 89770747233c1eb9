//go:build windows

package wuikit

import (
	"image"
	"image/color"

	"github.com/gonutz/w32"
	"golang.org/x/image/draw"
)

// NewRoundedPanel returns a panel with rounded corners. Everything outside
// the rounded outline is cut off with a window region, so mouse clicks there
// reach whatever is behind the panel.
func NewRoundedPanel() *RoundedPanel {
	p := &RoundedPanel{
		Panel: Panel{background: ColorButtonFace},
		shape: NewRoundedShape(),
	}
	p.shape.SetOnChange(p.shapeChanged)
	return p
}

type RoundedPanel struct {
	Panel
	shape  *RoundedShape
	buffer *image.RGBA
}

func (p *RoundedPanel) create(id int) {
	p.Panel.createWith(id, wsClipChildren, p.handleMsg)
	p.applyRegion()
}

func (p *RoundedPanel) handleMsg(window w32.HWND, msg uint32, wParam, lParam uintptr) (uintptr, bool) {
	switch msg {
	case wmEraseBkgnd:
		// WM_PAINT covers every pixel.
		return 1, true
	case w32.WM_PAINT:
		var ps w32.PAINTSTRUCT
		hdc := w32.BeginPaint(window, &ps)
		p.paint(&Canvas{hdc: hdc, width: p.width, height: p.height})
		w32.EndPaint(window, &ps)
		return 0, true
	case w32.WM_SIZE:
		p.applyRegion()
		if p.onResize != nil {
			p.onResize()
		}
		w32.InvalidateRect(window, nil, true)
		return 0, true
	}
	return 0, false
}

func (p *RoundedPanel) Add(c Control) {
	c.setParent(p)
	p.children = append(p.children, c)
	if p.handle != 0 {
		c.create(p.registerControl(c))
	}
}

// Shape gives access to all rounding and border settings.
func (p *RoundedPanel) Shape() *RoundedShape {
	return p.shape
}

func (p *RoundedPanel) SetCornerRadii(r CornerRadii) {
	p.shape.SetCornerRadii(r)
}

func (p *RoundedPanel) SetCornerRadius(c Corner, radius int) {
	p.shape.SetCornerRadius(c, radius)
}

func (p *RoundedPanel) SetUniformRadius(radius int) {
	p.shape.SetUniformRadius(radius)
}

func (p *RoundedPanel) SetUseUniformRadius(use bool) {
	p.shape.SetUseUniformRadius(use)
}

func (p *RoundedPanel) SetBorderColor(c Color) {
	p.shape.SetBorderColor(c)
}

func (p *RoundedPanel) SetBorderThickness(t int) {
	p.shape.SetBorderThickness(t)
}

// SetBackground sets the color inside the rounded outline.
func (p *RoundedPanel) SetBackground(c Color) {
	p.shape.SetFillColor(c)
}

func (p *RoundedPanel) Background() Color {
	return p.shape.FillColor()
}

func (p *RoundedPanel) shapeChanged() {
	if p.handle != 0 {
		p.applyRegion()
		w32.InvalidateRect(p.handle, nil, true)
	}
}

// applyRegion clips the window to the current outline. After a successful
// SetWindowRgn the system owns the region, it must not be deleted.
func (p *RoundedPanel) applyRegion() {
	if p.handle == 0 || p.width <= 0 || p.height <= 0 {
		return
	}
	path := p.shape.Path(p.width, p.height)
	rgn := createPolygonRgn(toPOINTs(path.Points()))
	if rgn == 0 {
		componentLogger("rounded-panel").Warn().
			Int("width", p.width).
			Int("height", p.height).
			Msg("CreatePolygonRgn failed")
		return
	}
	if !setWindowRgn(p.handle, rgn, true) {
		w32.DeleteObject(w32.HGDIOBJ(rgn))
		componentLogger("rounded-panel").Warn().Msg("SetWindowRgn failed")
	}
}

// paint renders the shape anti-aliased over the parent's background, the
// region then cuts away what lies outside.
func (p *RoundedPanel) paint(c *Canvas) {
	if p.width <= 0 || p.height <= 0 {
		return
	}
	if p.buffer == nil || p.buffer.Bounds().Dx() != p.width || p.buffer.Bounds().Dy() != p.height {
		p.buffer = image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	}
	draw.Draw(p.buffer, p.buffer.Bounds(), image.NewUniform(p.outsideColor()), image.Point{}, draw.Src)
	RenderRounded(
		p.buffer,
		p.shape.Path(p.width, p.height),
		p.shape.FillColor(),
		p.shape.Border(),
	)
	c.DrawImage(0, 0, p.buffer)
}

func (p *RoundedPanel) outsideColor() color.Color {
	if bg, ok := p.parent.(interface{ Background() Color }); ok {
		return bg.Background()
	}
	return ColorButtonFace
}
