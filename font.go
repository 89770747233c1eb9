//go:build windows

package wuikit

import (
	"fmt"
	"unicode/utf16"

	"github.com/gonutz/w32"
)

// FontDesc describes a font. Height is in pixels, a negative value matches
// the character height instead of the cell height.
type FontDesc struct {
	Name      string
	Height    int
	Bold      bool
	Italic    bool
	Underline bool
	StrikeOut bool
}

type Font struct {
	Desc   FontDesc
	handle w32.HFONT
}

func NewFont(desc FontDesc) (*Font, error) {
	var weight int32 = w32.FW_NORMAL
	if desc.Bold {
		weight = w32.FW_BOLD
	}
	logfont := w32.LOGFONT{
		Height:         int32(desc.Height),
		Weight:         weight,
		Italic:         byteBool(desc.Italic),
		Underline:      byteBool(desc.Underline),
		StrikeOut:      byteBool(desc.StrikeOut),
		CharSet:        w32.DEFAULT_CHARSET,
		OutPrecision:   w32.OUT_CHARACTER_PRECIS,
		ClipPrecision:  w32.CLIP_CHARACTER_PRECIS,
		Quality:        w32.DEFAULT_QUALITY,
		PitchAndFamily: w32.DEFAULT_PITCH | w32.FF_DONTCARE,
	}
	// The last element stays 0 to terminate the name.
	name := utf16.Encode([]rune(desc.Name))
	if len(name) >= len(logfont.FaceName) {
		return nil, fmt.Errorf("wuikit.NewFont: font name %q is too long", desc.Name)
	}
	copy(logfont.FaceName[:], name)
	handle := w32.CreateFontIndirect(&logfont)
	if handle == 0 {
		return nil, fmt.Errorf("wuikit.NewFont: unable to create font %q", desc.Name)
	}
	return &Font{Desc: desc, handle: handle}, nil
}

func byteBool(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Destroy frees the font. Controls using it fall back to the system font the
// next time they are created.
func (f *Font) Destroy() {
	if f.handle != 0 {
		w32.DeleteObject(w32.HGDIOBJ(f.handle))
		f.handle = 0
	}
}
