package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Dark palette shared by the login and dashboard windows.
var (
	primaryBG   = color.RGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF} // slate-900
	surfaceBG   = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF} // gray-900
	cardBG      = color.RGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF} // gray-800
	accent      = color.RGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 0xFF} // green-500
	danger      = color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF} // red-500
	textPrimary = color.RGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF} // gray-200
	textMuted   = color.RGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF} // gray-400
)

type hotelTheme struct{}

// NewHotelTheme returns the application theme.
func NewHotelTheme() fyne.Theme {
	return hotelTheme{}
}

func (hotelTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return surfaceBG
	case theme.ColorNameButton:
		return cardBG
	case theme.ColorNameInputBackground:
		return primaryBG
	case theme.ColorNamePrimary:
		return accent
	case theme.ColorNameError:
		return danger
	case theme.ColorNameForeground:
		return textPrimary
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return textMuted
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (hotelTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (hotelTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (hotelTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
