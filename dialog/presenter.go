package dialog

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/alexcabrera/surface/styles"
)

// ConfirmRequest describes an alert surface: body text with a confirm
// action and an optional cancel action.
type ConfirmRequest struct {
	ID          string
	Title       string
	Body        string
	Affirmative string
	Negative    string
	ShowCancel  bool
}

// InputRequest describes a single-line text prompt.
type InputRequest struct {
	ID          string
	Title       string
	Body        string
	Placeholder string
	Masked      bool
}

// ChooseRequest describes an ordered list of actions, one button per
// label.
type ChooseRequest struct {
	ID      string
	Title   string
	Body    string
	Labels  []string
	Initial int
}

// Presenter is the handle to the host presentation layer. Each method
// blocks until the user acts and completes exactly once; dismissal is
// reported as huh.ErrUserAborted.
type Presenter interface {
	// Confirm returns true when the affirmative action was chosen.
	Confirm(ctx context.Context, req ConfirmRequest) (bool, error)
	// Input returns the edited value on confirm.
	Input(ctx context.Context, req InputRequest) (string, error)
	// Choose returns the index of the chosen label.
	Choose(ctx context.Context, req ChooseRequest) (int, error)
}

// TerminalPresenter renders requests as huh forms, each running its
// own bubbletea program on the terminal.
type TerminalPresenter struct {
	Theme *styles.Theme
}

func (p *TerminalPresenter) theme() *styles.Theme {
	if p.Theme == nil {
		return styles.DefaultTheme()
	}
	return p.Theme
}

// Confirm implements Presenter.
func (p *TerminalPresenter) Confirm(ctx context.Context, req ConfirmRequest) (bool, error) {
	var ok bool

	c := huh.NewConfirm().
		Title(req.Title).
		Description(req.Body).
		Affirmative(req.Affirmative).
		Value(&ok)
	if req.ShowCancel {
		c = c.Negative(req.Negative)
	} else {
		// An empty negative label renders a single confirm button.
		c = c.Negative("")
	}

	form := huh.NewForm(huh.NewGroup(c)).WithTheme(p.theme().Form())
	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}
	return ok, nil
}

// Input implements Presenter. The field starts empty; the placeholder
// is display-only.
func (p *TerminalPresenter) Input(ctx context.Context, req InputRequest) (string, error) {
	var value string

	in := huh.NewInput().
		Title(req.Title).
		Description(req.Body).
		Placeholder(req.Placeholder).
		Value(&value)
	if req.Masked {
		in = in.EchoMode(huh.EchoModePassword)
	}

	form := huh.NewForm(huh.NewGroup(in)).WithTheme(p.theme().Form())
	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return value, nil
}

// Choose implements Presenter.
func (p *TerminalPresenter) Choose(ctx context.Context, req ChooseRequest) (int, error) {
	opts := make([]huh.Option[int], len(req.Labels))
	for i, label := range req.Labels {
		opts[i] = huh.NewOption(label, i)
	}

	selected := 0
	if req.Initial >= 0 && req.Initial < len(req.Labels) {
		selected = req.Initial
	}

	sel := huh.NewSelect[int]().
		Title(req.Title).
		Description(req.Body).
		Options(opts...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(sel)).WithTheme(p.theme().Form())
	if err := form.RunWithContext(ctx); err != nil {
		return 0, err
	}
	return selected, nil
}
