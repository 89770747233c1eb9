//go:build windows

package wuikit

import "github.com/gonutz/w32"

// These are predefined colors defined by the current Windows theme.
var (
	// Window background. The associated foreground color is ColorWindowText.
	ColorWindow = sysColor(w32.COLOR_WINDOW)

	// Text in windows. The associated background color is ColorWindow.
	ColorWindowText = sysColor(w32.COLOR_WINDOWTEXT)

	// Active window border.
	ColorActiveBorder = sysColor(w32.COLOR_ACTIVEBORDER)

	// Active window title bar. The associated foreground color is
	// ColorCaptionText.
	ColorActiveCaption = sysColor(w32.COLOR_ACTIVECAPTION)

	// Text in caption, size box, and scroll bar arrow box.
	ColorCaptionText = sysColor(w32.COLOR_CAPTIONTEXT)

	// Item(s) selected in a control. The associated foreground color is
	// ColorHighlightText.
	ColorHighlight = sysColor(w32.COLOR_HIGHLIGHT)

	// Text of item(s) selected in a control.
	ColorHighlightText = sysColor(w32.COLOR_HIGHLIGHTTEXT)

	// Face color for three-dimensional display elements and for dialog box
	// backgrounds. The associated foreground color is ColorButtonText.
	ColorButtonFace = sysColor(w32.COLOR_BTNFACE)

	// Text on push buttons.
	ColorButtonText = sysColor(w32.COLOR_BTNTEXT)

	// Shadow color for three-dimensional display elements (for edges facing
	// away from the light source).
	Color3DShadow = sysColor(w32.COLOR_3DSHADOW)

	// Grayed (disabled) text. This color is set to 0 if the current display
	// driver does not support a solid gray color.
	ColorGrayText = sysColor(w32.COLOR_GRAYTEXT)
)

func sysColor(index int) Color {
	return Color(w32.GetSysColor(index))
}
