//go:build windows

package wuikit

import (
	"image"
	"syscall"

	"github.com/gonutz/w32"
	"golang.org/x/image/draw"
)

func NewPaintbox() *Paintbox {
	return &Paintbox{}
}

// Paintbox is a control the application draws itself, in the function set with
// SetOnPaint.
type Paintbox struct {
	control
	pointerEvents
	cursor  *Cursor
	onPaint func(*Canvas)
}

func (p *Paintbox) create(id int) {
	p.control.create(id, 0, "STATIC", w32.SS_OWNERDRAW|ssNotify)
	w32.SetWindowSubclass(p.handle, syscall.NewCallback(func(
		window w32.HWND,
		msg uint32,
		wParam, lParam uintptr,
		subclassID uintptr,
		refData uintptr,
	) uintptr {
		if p.handleMouse(window, msg, lParam) || handleSetCursor(p.cursor, msg) {
			return 0
		}
		return w32.DefSubclassProc(window, msg, wParam, lParam)
	}), 0, 0)
}

func (p *Paintbox) drawItem(item *w32.DRAWITEMSTRUCT) {
	if p.onPaint == nil {
		return
	}
	c := &Canvas{hdc: item.HDC, width: p.width, height: p.height}
	if p.parent != nil {
		c.SetFont(p.parent.Font())
	}
	p.onPaint(c)
}

func (p *Paintbox) SetOnPaint(f func(*Canvas)) {
	p.onPaint = f
}

func (p *Paintbox) SetCursor(c *Cursor) {
	p.cursor = c
}

// Paint makes the Paintbox redraw itself.
func (p *Paintbox) Paint() {
	if p.handle != 0 {
		w32.InvalidateRect(p.handle, nil, true)
	}
}

// Canvas draws on a device context with GDI. GDI does not anti-alias, use
// DrawImage for smooth content.
type Canvas struct {
	hdc    w32.HDC
	width  int
	height int
}

func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) usePen(color Color) {
	w32.SelectObject(c.hdc, w32.GetStockObject(w32.DC_PEN))
	w32.SetDCPenColor(c.hdc, w32.COLORREF(color))
}

func (c *Canvas) useBrush(color Color) {
	w32.SelectObject(c.hdc, w32.GetStockObject(w32.DC_BRUSH))
	w32.SetDCBrushColor(c.hdc, w32.COLORREF(color))
}

func (c *Canvas) noBrush() {
	w32.SelectObject(c.hdc, w32.GetStockObject(w32.NULL_BRUSH))
}

func (c *Canvas) DrawRect(x, y, width, height int, color Color) {
	c.usePen(color)
	c.noBrush()
	w32.Rectangle(c.hdc, x, y, x+width, y+height)
}

func (c *Canvas) FillRect(x, y, width, height int, color Color) {
	c.usePen(color)
	c.useBrush(color)
	w32.Rectangle(c.hdc, x, y, x+width, y+height)
}

func (c *Canvas) Line(x1, y1, x2, y2 int, color Color) {
	c.usePen(color)
	w32.MoveToEx(c.hdc, x1, y1, nil)
	w32.LineTo(c.hdc, x2, y2)
}

func (c *Canvas) DrawEllipse(x, y, width, height int, color Color) {
	c.usePen(color)
	c.noBrush()
	w32.Ellipse(c.hdc, x, y, x+width, y+height)
}

func (c *Canvas) FillEllipse(x, y, width, height int, color Color) {
	c.usePen(color)
	c.useBrush(color)
	w32.Ellipse(c.hdc, x, y, x+width, y+height)
}

func (c *Canvas) Polygon(points []Point, color Color) {
	if len(points) < 2 {
		return
	}
	c.usePen(color)
	c.useBrush(color)
	w32.Polygon(c.hdc, toPOINTs(points))
}

func toPOINTs(points []Point) []w32.POINT {
	p := make([]w32.POINT, len(points))
	for i := range points {
		p[i] = w32.POINT{X: int32(points[i].X), Y: int32(points[i].Y)}
	}
	return p
}

func (c *Canvas) TextExtent(s string) (width, height int) {
	size, ok := w32.GetTextExtentPoint32(c.hdc, s)
	if ok {
		width = int(size.CX)
		height = int(size.CY)
	}
	return
}

func (c *Canvas) TextOut(x, y int, s string, color Color) {
	w32.SetBkMode(c.hdc, w32.TRANSPARENT)
	c.noBrush()
	w32.SetTextColor(c.hdc, w32.COLORREF(color))
	w32.TextOut(c.hdc, x, y, s)
	w32.SetBkMode(c.hdc, w32.OPAQUE)
}

func (c *Canvas) SetFont(font *Font) {
	if font != nil {
		w32.SelectObject(c.hdc, w32.HGDIOBJ(font.handle))
	}
}

// DrawImage copies img to (x, y). Transparent pixels are blended onto black,
// draw the image over an opaque background first to avoid that.
func (c *Canvas) DrawImage(x, y int, img image.Image) {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	setDIBitsToDevice(c.hdc, x, y, b.Dx(), b.Dy(), toBGRA(rgba.Pix))
}
