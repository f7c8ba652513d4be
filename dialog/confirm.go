package dialog

import (
	"context"
	"fmt"
)

// Action is one button in a multi-action confirm: a label and the
// callback to run when it is chosen.
type Action struct {
	Label string
	Run   func()
}

// ConfirmMulti renders one button per action, in order. Choosing a
// button closes the surface and runs exactly that action's callback;
// dismissal runs none. An empty action list is a precondition
// failure, never a default button.
func (s *Service) ConfirmMulti(ctx context.Context, body, title string, actions []Action, opts ...Option) (Outcome, error) {
	req := newRequest(KindConfirm, body)
	req.title = title
	for _, opt := range opts {
		opt(req)
	}

	if req.body == "" {
		return OutcomeDismissed, precondition("confirm", "empty body")
	}
	if req.title == "" {
		return OutcomeDismissed, precondition("confirm", "empty title")
	}
	if len(actions) == 0 {
		return OutcomeDismissed, precondition("confirm", "no actions")
	}
	labels := make([]string, len(actions))
	for i, a := range actions {
		if a.Label == "" {
			return OutcomeDismissed, precondition("confirm", "action %d has no label", i)
		}
		labels[i] = a.Label
	}

	idx, err := s.presenter.Choose(ctx, ChooseRequest{
		ID:      req.id,
		Title:   req.title,
		Body:    s.renderBody(req),
		Labels:  labels,
		Initial: 0,
	})
	if err != nil {
		if dismissed(err) {
			return OutcomeDismissed, nil
		}
		return OutcomeDismissed, fmt.Errorf("confirm %s: %w", req.id, err)
	}
	if idx < 0 || idx >= len(actions) {
		return OutcomeDismissed, fmt.Errorf("confirm %s: presenter chose index %d of %d", req.id, idx, len(actions))
	}

	if actions[idx].Run != nil {
		actions[idx].Run()
	}
	return OutcomeConfirmed, nil
}
