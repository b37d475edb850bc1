package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Log colors. The log view picks its tag colors by theme color name so that
// they follow this theme.
var (
	sendColor   = color.RGBA{R: 198, G: 40, B: 40, A: 255}
	recvColor   = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	binaryColor = color.RGBA{R: 25, G: 118, B: 210, A: 255}
)

// compactSizes overrides default sizes for a denser layout
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:        3,
	theme.SizeNameInnerPadding:   6,
	theme.SizeNameLineSpacing:    2,
	theme.SizeNameScrollBar:      12,
	theme.SizeNameText:           13,
	theme.SizeNameHeadingText:    16,
	theme.SizeNameSubHeadingText: 13,
	theme.SizeNameCaptionText:    10,
	theme.SizeNameInputRadius:    3,
}

// CompactTheme is the default theme with tighter spacing and the SEND/RECV palette.
// Fonts and icons come from the embedded default theme.
type CompactTheme struct {
	fyne.Theme
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{Theme: theme.DefaultTheme()}
}

// Color maps the log tag colors and falls back to the default palette
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return sendColor
	case theme.ColorNameSuccess:
		return recvColor
	case theme.ColorNamePrimary:
		return binaryColor
	}
	return t.Theme.Color(name, variant)
}

// Size returns compact sizes where overridden
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return t.Theme.Size(name)
}
