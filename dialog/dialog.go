// Package dialog provides modal terminal surfaces: alerts, prompts,
// multi-action confirms, and a loading spinner overlay. Surfaces run
// through a Presenter, which is the handle to the host presentation
// layer; the default presenter drives huh forms on the terminal.
package dialog

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/alexcabrera/surface/styles"
)

// Kind identifies the surface a request describes.
type Kind int

const (
	KindAlert Kind = iota
	KindPrompt
	KindConfirm
	KindSpinner
)

func (k Kind) String() string {
	switch k {
	case KindAlert:
		return "alert"
	case KindPrompt:
		return "prompt"
	case KindConfirm:
		return "confirm"
	case KindSpinner:
		return "spinner"
	default:
		return "unknown"
	}
}

// Outcome is how a dialog resolved. Exactly one outcome is produced
// per invocation.
type Outcome int

const (
	// OutcomeDismissed means the surface closed without an explicit
	// confirm: cancel, escape, or an aborted form.
	OutcomeDismissed Outcome = iota
	// OutcomeConfirmed means the confirm action was chosen.
	OutcomeConfirmed
)

func (o Outcome) String() string {
	if o == OutcomeConfirmed {
		return "confirmed"
	}
	return "dismissed"
}

// Service opens and closes modal surfaces. Each Service owns its own
// spinner visibility state, so independent instances never interfere.
type Service struct {
	presenter Presenter
	theme     *styles.Theme
	out       io.Writer
	debug     bool

	mu      sync.Mutex
	spinner *spinner
	spinGen uint64
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithPresenter replaces the default terminal presenter.
func WithPresenter(p Presenter) ServiceOption {
	return func(s *Service) { s.presenter = p }
}

// WithTheme sets the theme used by the default presenter and spinner.
func WithTheme(t *styles.Theme) ServiceOption {
	return func(s *Service) { s.theme = t }
}

// WithOutput redirects spinner output. Defaults to stderr.
func WithOutput(w io.Writer) ServiceOption {
	return func(s *Service) { s.out = w }
}

// WithDebug enables diagnostic output on stderr.
func WithDebug() ServiceOption {
	return func(s *Service) { s.debug = true }
}

// New builds a Service. With no options it presents huh forms on the
// terminal and animates the spinner on stderr.
func New(opts ...ServiceOption) *Service {
	s := &Service{
		theme: styles.DefaultTheme(),
		out:   os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.presenter == nil {
		s.presenter = &TerminalPresenter{Theme: s.theme}
	}
	return s
}

// request is the transient description of one dialog invocation.
type request struct {
	id   string
	kind Kind

	title string
	body  string

	confirmLabel string
	cancelLabel  string
	showCancel   bool

	placeholder string
	masked      bool

	markdown bool
}

func newRequest(kind Kind, body string) *request {
	return &request{
		id:   uuid.NewString(),
		kind: kind,
		body: body,
	}
}

// Option adjusts a single dialog invocation.
type Option func(*request)

// WithTitle overrides the dialog title.
func WithTitle(title string) Option {
	return func(r *request) { r.title = title }
}

// WithConfirmLabel overrides the confirm button label.
func WithConfirmLabel(label string) Option {
	return func(r *request) { r.confirmLabel = label }
}

// WithCancel adds a cancel button with the given label.
func WithCancel(label string) Option {
	return func(r *request) {
		r.showCancel = true
		r.cancelLabel = label
	}
}

// WithPlaceholder overrides the prompt placeholder text. The
// placeholder is a hint only and is never returned as data.
func WithPlaceholder(text string) Option {
	return func(r *request) { r.placeholder = text }
}

// Masked switches the prompt input to password echo.
func Masked() Option {
	return func(r *request) { r.masked = true }
}

// Markdown renders the dialog body through glamour before display.
func Markdown() Option {
	return func(r *request) { r.markdown = true }
}

// dismissed reports whether an error from a presenter means the user
// closed the surface without acting: form abort or a cancelled
// context, both of which resolve the dialog rather than fail it.
func dismissed(err error) bool {
	return errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
