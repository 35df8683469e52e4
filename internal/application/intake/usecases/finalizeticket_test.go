package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickform/internal/domain/draft"
	"tickform/internal/domain/ticket"
	"tickform/internal/shared/errors"
)

func draftWithContent(t *testing.T, userID uint, logTable int, startedAt time.Time) *draft.Draft {
	t.Helper()
	d := activeDraft(t, userID, logTable, startedAt)
	require.NoError(t, d.AttachContent("Login", "Kategori: Login\n\ncant login"))
	return d
}

func TestFinalizeTicketUseCase_Execute_Success(t *testing.T) {
	startedAt := time.Now().Add(-90 * time.Second)
	d := draftWithContent(t, 7, 3, startedAt)
	answers := map[string]string{"q1": "yes", "q2": "since Monday"}

	var saved *ticket.Ticket
	var updated *draft.Draft

	draftRepo := &mockDraftRepo{
		findActiveFunc: func(_ context.Context, _ uint) (*draft.Draft, error) {
			return d, nil
		},
		updateFunc: func(_ context.Context, d *draft.Draft) error {
			updated = d
			return nil
		},
	}
	ticketRepo := &mockTicketRepo{
		saveFunc: func(_ context.Context, tk *ticket.Ticket) error {
			tk.SetID(21)
			saved = tk
			return nil
		},
	}
	assistant := &mockAssistant{
		improveFunc: func(_ context.Context, title, description string, gotAnswers map[string]string) (*ImprovedTicket, error) {
			assert.Equal(t, "Login", title)
			assert.Equal(t, answers, gotAnswers)
			return &ImprovedTicket{
				ImprovedDescription: "User cannot log in since Monday after a password change.",
				CategoryGuess:       "account",
				UrgencyGuess:        "high",
			}, nil
		},
	}

	uc := NewFinalizeTicketUseCase(draftRepo, ticketRepo, assistant, &mockTxRunner{}, noopLogger{})

	result, err := uc.Execute(context.Background(), FinalizeTicketCommand{UserID: 7, Answers: answers})

	require.NoError(t, err)
	assert.Equal(t, uint(21), result.TicketID)
	assert.Equal(t, 3, result.LogTable)
	assert.GreaterOrEqual(t, result.TimeToSubmitMS, int64(90000))
	require.NotNil(t, result.Final)
	assert.Equal(t, "account", result.Final.CategoryGuess)

	require.NotNil(t, saved)
	assert.True(t, saved.AIUsed())
	assert.Equal(t, "User cannot log in since Monday after a password change.", saved.Description())

	require.NotNil(t, updated)
	assert.False(t, updated.IsActive())
	assert.Equal(t, answers, updated.Answers())
	// The answer turn counts on top of the question turn.
	assert.Equal(t, 1, updated.AITurns())
}

func TestFinalizeTicketUseCase_Execute_EmptyAnswers(t *testing.T) {
	uc := NewFinalizeTicketUseCase(&mockDraftRepo{}, &mockTicketRepo{}, &mockAssistant{}, &mockTxRunner{}, noopLogger{})

	result, err := uc.Execute(context.Background(), FinalizeTicketCommand{UserID: 7})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestFinalizeTicketUseCase_Execute_NoDraftContent(t *testing.T) {
	// Active draft exists but followups were never requested, so there is no
	// stored title/description to finalize from.
	d := activeDraft(t, 7, 1, time.Now())
	draftRepo := &mockDraftRepo{
		findActiveFunc: func(_ context.Context, _ uint) (*draft.Draft, error) {
			return d, nil
		},
	}

	uc := NewFinalizeTicketUseCase(draftRepo, &mockTicketRepo{}, &mockAssistant{}, &mockTxRunner{}, noopLogger{})

	result, err := uc.Execute(context.Background(), FinalizeTicketCommand{
		UserID:  7,
		Answers: map[string]string{"q1": "yes"},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestFinalizeTicketUseCase_Execute_AssistantFailureIsUpstream(t *testing.T) {
	d := draftWithContent(t, 7, 1, time.Now())
	draftRepo := &mockDraftRepo{
		findActiveFunc: func(_ context.Context, _ uint) (*draft.Draft, error) {
			return d, nil
		},
	}
	assistant := &mockAssistant{
		improveFunc: func(_ context.Context, _, _ string, _ map[string]string) (*ImprovedTicket, error) {
			return nil, fmt.Errorf("model overloaded")
		},
	}

	uc := NewFinalizeTicketUseCase(draftRepo, &mockTicketRepo{}, assistant, &mockTxRunner{}, noopLogger{})

	result, err := uc.Execute(context.Background(), FinalizeTicketCommand{
		UserID:  7,
		Answers: map[string]string{"q1": "yes"},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsUpstreamError(err))

	// The draft must stay active so the user can retry.
	assert.True(t, d.IsActive())
}

func TestFinalizeTicketUseCase_Execute_TransactionFailure(t *testing.T) {
	d := draftWithContent(t, 7, 1, time.Now())
	draftRepo := &mockDraftRepo{
		findActiveFunc: func(_ context.Context, _ uint) (*draft.Draft, error) {
			return d, nil
		},
	}

	uc := NewFinalizeTicketUseCase(draftRepo, &mockTicketRepo{}, &mockAssistant{}, &mockTxRunner{err: fmt.Errorf("disk full")}, noopLogger{})

	result, err := uc.Execute(context.Background(), FinalizeTicketCommand{
		UserID:  7,
		Answers: map[string]string{"q1": "yes"},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
