package dialog

import (
	"context"
	"fmt"
	"os"
)

// Alert shows body text with a confirm action and, with WithCancel, a
// cancel action. It resolves OutcomeConfirmed when the confirm action
// is chosen and OutcomeDismissed when the user cancels or closes the
// surface without acting.
func (s *Service) Alert(ctx context.Context, body string, opts ...Option) (Outcome, error) {
	req := newRequest(KindAlert, body)
	req.title = "Alert"
	req.confirmLabel = "OK"
	for _, opt := range opts {
		opt(req)
	}

	if req.body == "" {
		return OutcomeDismissed, precondition("alert", "empty body")
	}
	if req.showCancel && req.cancelLabel == "" {
		req.cancelLabel = "Cancel"
	}

	ok, err := s.presenter.Confirm(ctx, ConfirmRequest{
		ID:          req.id,
		Title:       req.title,
		Body:        s.renderBody(req),
		Affirmative: req.confirmLabel,
		Negative:    req.cancelLabel,
		ShowCancel:  req.showCancel,
	})
	if err != nil {
		if dismissed(err) {
			return OutcomeDismissed, nil
		}
		return OutcomeDismissed, fmt.Errorf("alert %s: %w", req.id, err)
	}
	if !ok {
		return OutcomeDismissed, nil
	}
	return OutcomeConfirmed, nil
}

// renderBody runs the body through glamour when Markdown was
// requested, falling back to the raw text if rendering fails.
func (s *Service) renderBody(req *request) string {
	if !req.markdown {
		return req.body
	}
	rendered, err := renderMarkdown(req.body)
	if err != nil {
		if s.debug {
			fmt.Fprintf(os.Stderr, "dialog: markdown render failed for %s: %v\n", req.id, err)
		}
		return req.body
	}
	return rendered
}
