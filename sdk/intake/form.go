package intake

import (
	"context"
	"fmt"
	"strings"
)

// FormState tracks where a submission is in its lifecycle.
type FormState string

const (
	FormStateIdle              FormState = "idle"
	FormStateValidated         FormState = "validated"
	FormStateAwaitingFollowups FormState = "awaiting_followups"
	FormStateFinalizing        FormState = "finalizing"
	FormStateDone              FormState = "done"
)

// SubmitResult reports the outcome of a successful submission.
type SubmitResult struct {
	UserID         uint
	TimeToSubmitMS int64
	LogTable       int
	AIUsed         bool
	Final          *ImprovedTicket
}

// Form drives the ticket submission flow: validate the fields, ask the
// server whether follow-up questions are needed, collect answers one at
// a time through the Prompter, then finalize or submit directly.
type Form struct {
	client   *Client
	session  *Session
	prompter Prompter
	state    FormState
}

// NewForm creates an idle form bound to a session and a prompter.
func NewForm(client *Client, session *Session, prompter Prompter) *Form {
	return &Form{
		client:   client,
		session:  session,
		prompter: prompter,
		state:    FormStateIdle,
	}
}

// State returns the current lifecycle state.
func (f *Form) State() FormState {
	return f.state
}

// Session returns the session the form is bound to.
func (f *Form) Session() *Session {
	return f.session
}

// Submit runs the whole submission flow for the given category and
// description.
//
// On any failure the in-progress operation aborts, no partial state is
// committed and the session keeps its confirmation, so the user can
// retry from the top. On success both the form and the session reset,
// forcing a fresh draft-start before the next submission.
func (f *Form) Submit(ctx context.Context, inquiry, description string) (*SubmitResult, error) {
	if !f.session.Confirmed() {
		return nil, newValidationError("identity not confirmed, start a draft first")
	}

	inquiry = strings.TrimSpace(inquiry)
	if inquiry == "" {
		return nil, newValidationError("please select a category")
	}
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return nil, newValidationError("please enter a description")
	}
	f.state = FormStateValidated

	userID := f.session.UserID()
	title := inquiry
	composed := "Kategori: " + inquiry + "\n\n" + trimmed

	followups, err := f.client.RequestFollowups(ctx, userID, title, composed)
	if err != nil {
		f.state = FormStateIdle
		return nil, err
	}

	if !followups.NeedsFollowup {
		ticket, err := f.client.CreateTicket(ctx, userID, title, composed)
		if err != nil {
			f.state = FormStateIdle
			return nil, err
		}

		f.finish()
		return &SubmitResult{
			UserID:         ticket.UserID,
			TimeToSubmitMS: ticket.TimeToSubmitMS,
		}, nil
	}

	f.state = FormStateAwaitingFollowups
	answers := make(map[string]string, len(followups.Questions))
	for _, q := range followups.Questions {
		answer, err := f.prompter.Prompt(q)
		if err != nil {
			f.state = FormStateIdle
			return nil, fmt.Errorf("prompt answer: %w", err)
		}
		answers[q.ID] = strings.TrimSpace(answer)
	}

	f.state = FormStateFinalizing
	final, err := f.client.Finalize(ctx, userID, answers)
	if err != nil {
		f.state = FormStateIdle
		return nil, err
	}

	f.finish()
	return &SubmitResult{
		UserID:         final.UserID,
		TimeToSubmitMS: final.TimeToSubmitMS,
		LogTable:       final.LogTable,
		AIUsed:         true,
		Final:          final.Final,
	}, nil
}

// finish marks the flow done and resets the session, so the next
// submission must start from a fresh draft.
func (f *Form) finish() {
	f.state = FormStateDone
	f.session.Reset()
}

// Reset returns the form to its initial idle state.
func (f *Form) Reset() {
	f.state = FormStateIdle
}
