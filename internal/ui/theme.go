package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ComicTheme is a high contrast, ink-on-paper theme with a larger heading for comic titles
type ComicTheme struct{}

// NewComicTheme creates a new comic theme
func NewComicTheme() fyne.Theme {
	return &ComicTheme{}
}

// Color returns theme colors
func (t *ComicTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 96, G: 110, B: 140, A: 255} // xkcd slate
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 24, B: 24, A: 255}
		}
		return color.White
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 235, G: 235, B: 235, A: 255}
		}
		return color.Black
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ComicTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ComicTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ComicTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 17
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
