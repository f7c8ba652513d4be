// Package appbar builds declarative header bar specs and renders them
// for terminal hosts.
package appbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexcabrera/surface/hexcolor"
	"github.com/alexcabrera/surface/layout"
)

// Default title metrics, carried in the spec for hosts that render
// proportional text.
const (
	DefaultTitleSize    = 18
	DefaultSubtitleSize = 12
)

// leadingInset is the fixed padding a leading element gains when the
// title region is replaced.
const leadingInset = 1

// Bar is an immutable header spec. Decorators copy it field by field
// and replace only the region they own.
type Bar struct {
	Leading      string
	LeadingInset int

	Title    string
	Subtitle string

	Actions  []string
	Elevated bool

	TitleSize    int
	SubtitleSize int

	// TextColor tints the title region when non-zero.
	TextColor hexcolor.Color

	// Foreground and Background style the bar chrome.
	Foreground hexcolor.Color
	Background hexcolor.Color
}

// SubtitleOption adjusts a WithSubtitle decoration.
type SubtitleOption func(*Bar)

// WithTextColor tints both title lines.
func WithTextColor(c hexcolor.Color) SubtitleOption {
	return func(b *Bar) { b.TextColor = c }
}

// WithTitleSize overrides the title size metric.
func WithTitleSize(size int) SubtitleOption {
	return func(b *Bar) { b.TitleSize = size }
}

// WithSubtitleSize overrides the subtitle size metric.
func WithSubtitleSize(size int) SubtitleOption {
	return func(b *Bar) { b.SubtitleSize = size }
}

// WithSubtitle returns a copy of the bar whose title region is a
// two-line stack: a bold title line and a smaller subtitle line. All
// other fields carry over unchanged, except a present leading element
// gains a fixed padding inset.
func (b Bar) WithSubtitle(title, subtitle string, opts ...SubtitleOption) Bar {
	out := b
	out.Actions = append([]string(nil), b.Actions...)

	out.Title = title
	out.Subtitle = subtitle
	out.TitleSize = DefaultTitleSize
	out.SubtitleSize = DefaultSubtitleSize
	if out.Leading != "" {
		out.LeadingInset = leadingInset
	}

	for _, opt := range opts {
		opt(&out)
	}
	return out
}

// Render draws the bar into the given cell width. The title region
// takes the space left over by the leading element and the
// right-aligned actions; an elevated bar gains a bottom rule.
func (b Bar) Render(width int) string {
	if width <= 0 {
		width = 80
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	subtitleStyle := lipgloss.NewStyle().Faint(true)
	if b.TextColor != 0 {
		titleStyle = titleStyle.Foreground(b.TextColor.Lipgloss())
		subtitleStyle = subtitleStyle.Foreground(b.TextColor.Lipgloss())
	} else if b.Foreground != 0 {
		titleStyle = titleStyle.Foreground(b.Foreground.Lipgloss())
		subtitleStyle = subtitleStyle.Foreground(b.Foreground.Lipgloss())
	}

	leading := b.Leading
	if leading != "" && b.LeadingInset > 0 {
		leading = lipgloss.NewStyle().Padding(0, b.LeadingInset).Render(leading)
	}

	actions := strings.Join(b.Actions, "  ")

	// The title region never squeezes below 40% of the bar.
	titleWidth := width - ansi.StringWidth(leading) - ansi.StringWidth(actions)
	titleWidth = layout.Clamp(titleWidth, layout.Width(width, 40), width)

	title := truncate(b.Title, titleWidth)
	line := lipgloss.JoinHorizontal(lipgloss.Top, leading, titleStyle.Render(title))
	if actions != "" {
		gap := width - ansi.StringWidth(line) - ansi.StringWidth(actions)
		if gap > 0 {
			line += strings.Repeat(" ", gap)
		}
		line += actions
	}

	rows := []string{line}
	if b.Subtitle != "" {
		pad := strings.Repeat(" ", ansi.StringWidth(leading))
		rows = append(rows, pad+subtitleStyle.Render(truncate(b.Subtitle, titleWidth)))
	}
	if b.Elevated {
		rows = append(rows, strings.Repeat("─", width))
	}

	bar := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if b.Background != 0 {
		bar = lipgloss.NewStyle().Background(b.Background.Lipgloss()).Render(bar)
	}
	return bar
}

func truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return ansi.Truncate(s, width-1, "…")
}
