// Package styles provides theming for surface dialogs and app bars.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexcabrera/surface/hexcolor"
)

// Theme defines the color palette shared by every surface component.
type Theme struct {
	// Accent colors
	Primary   hexcolor.Color
	Secondary hexcolor.Color

	// Status colors
	Success hexcolor.Color
	Error   hexcolor.Color
	Warning hexcolor.Color
	Info    hexcolor.Color

	// Foreground colors
	Text       hexcolor.Color
	TextDim    hexcolor.Color
	TextBright hexcolor.Color

	// Chrome
	Surface hexcolor.Color
	Border  hexcolor.Color

	// Cached styles
	styles *Styles
}

// Styles holds pre-built lipgloss styles for common use cases.
type Styles struct {
	Base   lipgloss.Style
	Dim    lipgloss.Style
	Bright lipgloss.Style
	Accent lipgloss.Style
	Err    lipgloss.Style
}

// S returns the cached styles accessor.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = &Styles{
			Base:   lipgloss.NewStyle().Foreground(t.Text.Lipgloss()),
			Dim:    lipgloss.NewStyle().Foreground(t.TextDim.Lipgloss()),
			Bright: lipgloss.NewStyle().Foreground(t.TextBright.Lipgloss()),
			Accent: lipgloss.NewStyle().Foreground(t.Primary.Lipgloss()).Bold(true),
			Err:    lipgloss.NewStyle().Foreground(t.Error.Lipgloss()),
		}
	}
	return t.styles
}

// Status icons.
const (
	IconConfirm = "✓"
	IconDismiss = "×"
	IconPrompt  = "▸"
	IconRadioOn = "●"
	IconRadio   = "○"
)

// DefaultTheme returns the default dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   hexcolor.MustParse("#a78bfa"),
		Secondary: hexcolor.MustParse("#67e8f9"),

		Success: hexcolor.MustParse("#22c55e"),
		Error:   hexcolor.MustParse("#ef4444"),
		Warning: hexcolor.MustParse("#fbbf24"),
		Info:    hexcolor.MustParse("#0ea5e9"),

		Text:       hexcolor.MustParse("#e5e7eb"),
		TextDim:    hexcolor.MustParse("#9ca3af"),
		TextBright: hexcolor.MustParse("#f9fafb"),

		Surface: hexcolor.MustParse("#1f2937"),
		Border:  hexcolor.MustParse("#374151"),
	}
}

// Form returns a huh theme matching this palette, used for every
// dialog form the package runs.
func (t *Theme) Form() *huh.Theme {
	h := huh.ThemeCharm()

	accent := t.Primary.Lipgloss()
	dim := t.TextDim.Lipgloss()
	border := t.Border.Lipgloss()

	h.Group.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		MarginBottom(1)

	h.Group.Description = lipgloss.NewStyle().
		Foreground(dim).
		MarginBottom(1)

	h.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(2).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(accent)

	h.Focused.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	h.Focused.Description = lipgloss.NewStyle().Foreground(dim)

	h.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(border)

	h.Blurred.Title = lipgloss.NewStyle().Foreground(dim)
	h.Blurred.Description = lipgloss.NewStyle().Foreground(t.Border.Lipgloss())

	return h
}
