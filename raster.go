package wuikit

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// RenderRounded paints a rounded shape into img, which is assumed to have the
// size the path was built for. The inside of the path is filled with fill,
// then the border is drawn as a band of border.Thickness pixels along the
// inside of the outline. Edges are anti-aliased, pixels that are only partly
// covered by the shape get a partial coverage.
//
// Pass nil as fill to leave the inside untouched.
func RenderRounded(img *image.RGBA, p Path, fill color.Color, border BorderStyle) {
	outer := p.Polygon(p.segments())
	if fill != nil {
		rasterize(img, fill, outer, nil)
	}
	if border.Thickness > 0 {
		inner := p.Inset(float64(border.Thickness))
		rasterize(img, border.Color, outer, inner.Polygon(inner.segments()))
	}
}

// rasterize draws the polygon outer minus the polygon hole (if any) onto img.
// The hole is traced in reverse so its coverage cancels the outer polygon's.
func rasterize(img *image.RGBA, c color.Color, outer, hole []PointF) {
	b := img.Bounds()
	if b.Empty() || len(outer) < 3 {
		return
	}
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	addPolygon(r, outer, false)
	if len(hole) >= 3 {
		addPolygon(r, hole, true)
	}
	r.Draw(img, b, image.NewUniform(c), image.Point{})
}

func addPolygon(r *vector.Rasterizer, poly []PointF, reverse bool) {
	at := func(i int) PointF {
		if reverse {
			return poly[len(poly)-1-i]
		}
		return poly[i]
	}
	start := at(0)
	r.MoveTo(float32(start.X), float32(start.Y))
	for i := 1; i < len(poly); i++ {
		p := at(i)
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
}

// toBGRA returns a copy of RGBA pixel data in the byte order of 32 bit
// Windows bitmaps.
func toBGRA(rgba []byte) []byte {
	bgra := make([]byte, len(rgba))
	for i := 0; i+3 < len(rgba); i += 4 {
		bgra[i+0] = rgba[i+2]
		bgra[i+1] = rgba[i+1]
		bgra[i+2] = rgba[i+0]
		bgra[i+3] = rgba[i+3]
	}
	return bgra
}
