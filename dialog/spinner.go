package dialog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexcabrera/surface/hexcolor"
)

// DefaultSpinnerTimeout is the auto-hide deadline applied when no
// explicit duration is given, so a spinner can never be left covering
// the terminal forever.
const DefaultSpinnerTimeout = 30 * time.Second

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerOption configures one ShowSpinner call.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	text      string
	hideAfter time.Duration
	frame     hexcolor.Color
	message   hexcolor.Color
	hasColors bool
}

// WithSpinnerText sets the message beside the spinner frame.
func WithSpinnerText(text string) SpinnerOption {
	return func(c *spinnerConfig) { c.text = text }
}

// WithHideAfter sets the auto-hide deadline. Non-positive durations
// fall back to DefaultSpinnerTimeout.
func WithHideAfter(d time.Duration) SpinnerOption {
	return func(c *spinnerConfig) { c.hideAfter = d }
}

// WithSpinnerColors tints the animation frame and the message.
func WithSpinnerColors(frame, message hexcolor.Color) SpinnerOption {
	return func(c *spinnerConfig) {
		c.frame = frame
		c.message = message
		c.hasColors = true
	}
}

// ShowSpinner opens the blocking loading overlay and marks it shown.
// The overlay hides automatically at the deadline; the auto-hide and a
// manual HideSpinner race safely, with whichever fires first doing the
// hide and the later one a no-op. Calling ShowSpinner while already
// shown updates the text and deadline of the running overlay instead
// of stacking a second one.
func (s *Service) ShowSpinner(opts ...SpinnerOption) {
	cfg := spinnerConfig{
		text:      "Loading...",
		hideAfter: DefaultSpinnerTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hideAfter <= 0 {
		cfg.hideAfter = DefaultSpinnerTimeout
	}
	if !cfg.hasColors {
		cfg.frame = s.theme.Primary
		cfg.message = s.theme.TextDim
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.spinGen++
	gen := s.spinGen

	if s.spinner != nil {
		s.spinner.setText(cfg.text)
		s.spinner.timer.Stop()
		s.spinner.timer = time.AfterFunc(cfg.hideAfter, func() { s.autoHide(gen) })
		return
	}

	sp := newSpinner(s.out, cfg)
	sp.timer = time.AfterFunc(cfg.hideAfter, func() { s.autoHide(gen) })
	s.spinner = sp
	sp.start()
}

// autoHide is the timer half of the hide race. A fire that lost to a
// manual hide, or that belongs to a superseded deadline, observes the
// updated state and does nothing.
func (s *Service) autoHide(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spinner == nil || s.spinGen != gen {
		return
	}
	s.spinner.stop()
	s.spinner = nil
}

// HideSpinner closes the overlay and marks it hidden. When nothing is
// shown it does nothing, so a stray hide can never pop an unrelated
// surface.
func (s *Service) HideSpinner() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spinner == nil {
		return
	}
	s.spinner.timer.Stop()
	s.spinner.stop()
	s.spinner = nil
}

// SpinnerShown reports whether the loading overlay is currently up.
func (s *Service) SpinnerShown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spinner != nil
}

// spinner animates frames on the configured writer. On a TTY it
// redraws in place from a ticker goroutine; otherwise it prints a
// single line and stays silent until stopped.
type spinner struct {
	out   io.Writer
	isTTY bool
	timer *time.Timer

	style    lipgloss.Style
	msgStyle lipgloss.Style

	done      chan struct{}
	closeOnce sync.Once

	mu    sync.Mutex
	text  string
	frame int
}

func newSpinner(out io.Writer, cfg spinnerConfig) *spinner {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return &spinner{
		out:      out,
		isTTY:    isTTY,
		style:    lipgloss.NewStyle().Foreground(cfg.frame.Lipgloss()),
		msgStyle: lipgloss.NewStyle().Foreground(cfg.message.Lipgloss()),
		done:     make(chan struct{}),
		text:     cfg.text,
	}
}

func (sp *spinner) start() {
	if !sp.isTTY {
		sp.mu.Lock()
		fmt.Fprintf(sp.out, "%s %s\n", spinnerFrames[0], sp.text)
		sp.mu.Unlock()
		return
	}

	go func() {
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-sp.done:
				return
			case <-ticker.C:
				sp.mu.Lock()
				sp.frame = (sp.frame + 1) % len(spinnerFrames)
				sp.render()
				sp.mu.Unlock()
			}
		}
	}()

	sp.mu.Lock()
	sp.render()
	sp.mu.Unlock()
}

func (sp *spinner) stop() {
	sp.closeOnce.Do(func() { close(sp.done) })
	if sp.isTTY {
		fmt.Fprint(sp.out, "\r\033[K")
	}
}

func (sp *spinner) setText(text string) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.text = text
	if sp.isTTY {
		sp.render()
	}
}

// render draws the current frame; callers hold sp.mu.
func (sp *spinner) render() {
	frame := sp.style.Render(spinnerFrames[sp.frame%len(spinnerFrames)])
	msg := sp.msgStyle.Render(sp.text)
	fmt.Fprintf(sp.out, "\r\033[K%s %s", frame, msg)
}
