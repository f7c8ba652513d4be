package dialog

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"
)

func newSpinnerService(out io.Writer) *Service {
	return New(WithPresenter(&fakePresenter{}), WithOutput(out))
}

func TestSpinnerShowThenHide(t *testing.T) {
	s := newSpinnerService(io.Discard)

	s.ShowSpinner()
	if !s.SpinnerShown() {
		t.Fatal("spinner should be shown")
	}

	s.HideSpinner()
	if s.SpinnerShown() {
		t.Fatal("spinner should be hidden")
	}
}

func TestHideSpinnerWhenNeverShown(t *testing.T) {
	s := newSpinnerService(io.Discard)
	// Must not panic or touch anything.
	s.HideSpinner()
	if s.SpinnerShown() {
		t.Fatal("spinner should stay hidden")
	}
}

func TestSpinnerAutoHide(t *testing.T) {
	s := newSpinnerService(io.Discard)

	s.ShowSpinner(WithHideAfter(10 * time.Millisecond))
	deadline := time.Now().Add(time.Second)
	for s.SpinnerShown() {
		if time.Now().After(deadline) {
			t.Fatal("spinner should auto-hide")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// Manual hide after the auto-hide already won is a no-op.
	s.HideSpinner()
	if s.SpinnerShown() {
		t.Fatal("spinner should stay hidden")
	}
}

func TestManualHideBeatsAutoHide(t *testing.T) {
	s := newSpinnerService(io.Discard)

	s.ShowSpinner(WithHideAfter(time.Hour))
	s.HideSpinner()
	if s.SpinnerShown() {
		t.Fatal("manual hide should win")
	}

	// The scheduled auto-hide observes the hidden state and no-ops;
	// showing again must not be torn down by the stale timer.
	s.ShowSpinner(WithHideAfter(time.Hour))
	time.Sleep(20 * time.Millisecond)
	if !s.SpinnerShown() {
		t.Fatal("second spinner should still be shown")
	}
	s.HideSpinner()
}

func TestShowSpinnerWhileShownUpdatesInPlace(t *testing.T) {
	s := newSpinnerService(io.Discard)

	s.ShowSpinner(WithSpinnerText("first"))
	first := s.spinner
	s.ShowSpinner(WithSpinnerText("second"))
	if s.spinner != first {
		t.Fatal("re-show should update the running overlay, not stack a new one")
	}
	first.mu.Lock()
	text := first.text
	first.mu.Unlock()
	if text != "second" {
		t.Fatalf("text = %q, want second", text)
	}
	s.HideSpinner()
}

func TestSpinnerNonPositiveTimeoutUsesDefault(t *testing.T) {
	s := newSpinnerService(io.Discard)
	s.ShowSpinner(WithHideAfter(0))
	if !s.SpinnerShown() {
		t.Fatal("spinner should be shown")
	}
	// The default deadline is 30s; nothing should fire quickly.
	time.Sleep(20 * time.Millisecond)
	if !s.SpinnerShown() {
		t.Fatal("spinner should not auto-hide before the default deadline")
	}
	s.HideSpinner()
}

func TestSpinnerNonTTYPrintsSingleLine(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerService(&buf)

	s.ShowSpinner(WithSpinnerText("Working"))
	s.HideSpinner()

	out := buf.String()
	if !strings.Contains(out, "Working") {
		t.Fatalf("output %q should contain the text", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("non-TTY output should be a single line, got %q", out)
	}
}

func TestServicesDoNotInterfere(t *testing.T) {
	a := newSpinnerService(io.Discard)
	b := newSpinnerService(io.Discard)

	a.ShowSpinner()
	if b.SpinnerShown() {
		t.Fatal("spinner state must be per service")
	}
	b.HideSpinner()
	if !a.SpinnerShown() {
		t.Fatal("hiding one service must not hide another")
	}
	a.HideSpinner()
}
