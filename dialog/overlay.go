package dialog

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexcabrera/surface/layout"
	"github.com/alexcabrera/surface/styles"
)

// overlayKeys are the bindings handled by the overlay itself; all
// other input goes to the embedded form.
type overlayKeys struct {
	Dismiss key.Binding
}

func defaultOverlayKeys() overlayKeys {
	return overlayKeys{
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
	}
}

// Overlay centers a huh form in a bordered box for hosts that embed
// dialogs inside their own bubbletea program instead of letting the
// form run one.
type Overlay struct {
	form *huh.Form
	keys overlayKeys
	box  lipgloss.Style

	width  int
	height int

	done      bool
	dismissed bool
}

// NewOverlay wraps a form for embedding.
func NewOverlay(form *huh.Form, theme *styles.Theme) *Overlay {
	if theme == nil {
		theme = styles.DefaultTheme()
	}
	return &Overlay{
		form: form.WithTheme(theme.Form()),
		keys: defaultOverlayKeys(),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border.Lipgloss()).
			Padding(1, 2),
	}
}

// Init implements tea.Model.
func (o *Overlay) Init() tea.Cmd {
	return o.form.Init()
}

// Update implements tea.Model. Escape dismisses; form completion
// quits. Exactly one of the two ends the overlay.
func (o *Overlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		o.width = msg.Width
		o.height = msg.Height
	case tea.KeyMsg:
		if key.Matches(msg, o.keys.Dismiss) {
			o.done = true
			o.dismissed = true
			return o, tea.Quit
		}
	}

	model, cmd := o.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		o.form = f
	}
	if o.form.State == huh.StateCompleted {
		o.done = true
		return o, tea.Quit
	}
	if o.form.State == huh.StateAborted {
		o.done = true
		o.dismissed = true
		return o, tea.Quit
	}
	return o, cmd
}

// View implements tea.Model.
func (o *Overlay) View() string {
	if o.done {
		return ""
	}

	content := o.form.View()
	if o.width == 0 {
		return o.box.Render(content)
	}

	maxBox := layout.Width(o.width, 60)
	if w := ansi.StringWidth(content); w > maxBox && maxBox > 4 {
		content = o.box.Width(maxBox).Render(content)
	} else {
		content = o.box.Render(content)
	}
	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, content)
}

// Dismissed reports whether the overlay closed without the form
// completing.
func (o *Overlay) Dismissed() bool {
	return o.dismissed
}
