package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// MainTheme is a dark theme tinted to match the spiral.
type MainTheme struct {
	fyne.Theme
}

func themeSizes() map[fyne.ThemeSizeName]float32 {
	return map[fyne.ThemeSizeName]float32{
		theme.SizeNameInnerPadding: 6,
		theme.SizeNamePadding:      4,
		theme.SizeNameText:         14,
		theme.SizeNameCaptionText:  12,
		theme.SizeNameHeadingText:  22,
	}
}

func (m MainTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := themeSizes()[name]; ok {
		return size
	}
	return m.Theme.Size(name)
}

func (m MainTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0xd8, G: 0xe8, B: 0xd8, A: 0xff}
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return color.NRGBA{R: 0x00, G: 0xcc, B: 0x00, A: 0xff}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x00, G: 0x99, B: 0x00, A: 0x66}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0x1c, G: 0x1c, B: 0x1c, A: 0xff}
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x1f, G: 0x2a, B: 0x1f, A: 0xff}
	default:
		return m.Theme.Color(name, theme.VariantDark)
	}
}

// NewMainTheme wraps the default theme.
func NewMainTheme() MainTheme {
	return MainTheme{Theme: theme.DefaultTheme()}
}
