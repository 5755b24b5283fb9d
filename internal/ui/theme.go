package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/tracker-launcher/internal/config"
)

// TrackerTheme pins the window to the chosen appearance and uses a blue
// accent with slightly tighter spacing than the default theme
type TrackerTheme struct {
	variant fyne.ThemeVariant
	system  bool
}

// NewTrackerTheme creates the theme for an appearance mode
func NewTrackerTheme(mode config.Appearance) fyne.Theme {
	switch mode {
	case config.AppearanceLight:
		return &TrackerTheme{variant: theme.VariantLight}
	case config.AppearanceSystem:
		return &TrackerTheme{system: true}
	default:
		return &TrackerTheme{variant: theme.VariantDark}
	}
}

// Color returns theme colors
func (t *TrackerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if !t.system {
		variant = t.variant
	}

	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 31, G: 106, B: 165, A: 255} // Blue accent
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for finished runs
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for failures
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 36, G: 36, B: 36, A: 255}
		}
		return color.RGBA{R: 235, G: 235, B: 235, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *TrackerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TrackerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *TrackerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 5 // Default 4, the form rows need a little air
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
