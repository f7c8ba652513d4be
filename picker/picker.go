// Package picker provides a single-choice selection controller whose
// payload type is resolved at the call site.
package picker

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/alexcabrera/surface/styles"
)

// Option is one selectable entry.
type Option[T any] struct {
	Label       string
	Value       T
	Preselected bool
}

// Picker holds the transient selection state for one choice surface.
// Selecting an option closes the surface and delivers the option's
// payload to the completion callback; there is no separate confirm
// step.
type Picker[T any] struct {
	options   []Option[T]
	selection int // index into options, -1 when nothing is selected
	onPick    func(T)
	picked    bool
	theme     *styles.Theme
}

// New builds a picker over the given options. The initial selection is
// the first option marked Preselected, in order; with none marked
// there is no initial selection. Duplicate labels or a nil callback
// are rejected.
func New[T any](options []Option[T], onPick func(T)) (*Picker[T], error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("picker: no options")
	}
	if onPick == nil {
		return nil, fmt.Errorf("picker: nil completion callback")
	}

	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if seen[o.Label] {
			return nil, fmt.Errorf("picker: duplicate label %q", o.Label)
		}
		seen[o.Label] = true
	}

	p := &Picker[T]{
		options:   options,
		selection: -1,
		onPick:    onPick,
		theme:     styles.DefaultTheme(),
	}
	for i, o := range options {
		if o.Preselected {
			p.selection = i
			break
		}
	}
	return p, nil
}

// WithTheme overrides the theme used when the picker runs a form.
func (p *Picker[T]) WithTheme(t *styles.Theme) *Picker[T] {
	p.theme = t
	return p
}

// Selection returns the label of the current selection, or "" when
// nothing is selected.
func (p *Picker[T]) Selection() string {
	if p.selection < 0 {
		return ""
	}
	return p.options[p.selection].Label
}

// Pick selects the option with the given label and immediately
// completes: the surface is done and the callback receives the
// option's payload. The callback fires at most once per picker.
func (p *Picker[T]) Pick(label string) error {
	if p.picked {
		return fmt.Errorf("picker: already completed")
	}
	for i, o := range p.options {
		if o.Label == label {
			p.selection = i
			p.picked = true
			p.onPick(o.Value)
			return nil
		}
	}
	return fmt.Errorf("picker: unknown label %q", label)
}

// Run presents the options as a radio select and resolves through
// Pick. Dismissal (escape, ctrl-c, context cancellation) leaves the
// callback uninvoked and returns huh.ErrUserAborted.
func (p *Picker[T]) Run(ctx context.Context, title string) error {
	opts := make([]huh.Option[string], len(p.options))
	for i, o := range p.options {
		opts[i] = huh.NewOption(o.Label, o.Label)
	}

	selected := p.Selection()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(&selected),
		),
	).WithTheme(p.theme.Form())

	if err := form.RunWithContext(ctx); err != nil {
		return err
	}
	return p.Pick(selected)
}
