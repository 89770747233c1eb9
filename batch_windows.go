//go:build windows

package wuikit

// FontSetter is implemented by all controls showing text. Fonts are GDI
// objects, so this only exists on Windows.
type FontSetter interface {
	SetFont(*Font)
}

// SetFont sets the same font on all controls, nil reverts them to their
// parent's font.
func SetFont(font *Font, controls ...FontSetter) {
	Apply(controls, func(c FontSetter) { c.SetFont(font) })
}

// SetFonts sets fonts[i] on controls[i].
func SetFonts(controls []FontSetter, fonts []*Font) error {
	return ApplyEach(controls, fonts, func(c FontSetter, f *Font) { c.SetFont(f) })
}
