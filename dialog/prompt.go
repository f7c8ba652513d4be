package dialog

import (
	"context"
	"fmt"
)

// Prompt shows a single-line text field seeded empty. It returns the
// edited value and true when the user confirms; on dismissal it
// returns "" and false. The placeholder is a display hint and is
// never returned as data, so confirming an untouched field yields the
// empty string.
func (s *Service) Prompt(ctx context.Context, body string, opts ...Option) (string, bool, error) {
	req := newRequest(KindPrompt, body)
	req.title = "Attention"
	req.placeholder = "Write something"
	for _, opt := range opts {
		opt(req)
	}

	if req.body == "" {
		return "", false, precondition("prompt", "empty body")
	}

	value, err := s.presenter.Input(ctx, InputRequest{
		ID:          req.id,
		Title:       req.title,
		Body:        s.renderBody(req),
		Placeholder: req.placeholder,
		Masked:      req.masked,
	})
	if err != nil {
		if dismissed(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("prompt %s: %w", req.id, err)
	}
	return value, true, nil
}
