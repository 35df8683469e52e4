package intake

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPrompter returns canned answers and records the questions it saw.
type recordingPrompter struct {
	answers map[string]string
	asked   []Question
}

func (p *recordingPrompter) Prompt(q Question) (string, error) {
	p.asked = append(p.asked, q)
	return p.answers[q.ID], nil
}

func confirmedSession(t *testing.T, fs *fakeServer) *Session {
	t.Helper()
	session := NewSession(fs.client())
	_, err := session.ConfirmIdentity(context.Background(), "user7", 3)
	require.NoError(t, err)
	return session
}

func TestForm_Submit_DirectPath(t *testing.T) {
	fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request, body map[string]any) {
		switch r.URL.Path {
		case "/api/draft/start":
			writeSuccess(w, http.StatusOK, map[string]any{})
		case "/api/ai/followups":
			writeSuccess(w, http.StatusOK, map[string]any{"needs_followup": false})
		case "/api/tickets":
			writeSuccess(w, http.StatusCreated, map[string]any{"user_id": 7, "time_to_submit_ms": 42000})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	session := confirmedSession(t, fs)
	prompter := &recordingPrompter{}
	form := NewForm(fs.client(), session, prompter)

	result, err := form.Submit(context.Background(), "Billing", "  late fee  ")

	require.NoError(t, err)
	assert.Equal(t, int64(42000), result.TimeToSubmitMS)
	assert.False(t, result.AIUsed)

	// No prompts on the direct path, exactly one ticket-creation call.
	assert.Empty(t, prompter.asked)
	creates := fs.callsTo("/api/tickets")
	require.Len(t, creates, 1)
	assert.Equal(t, "Billing", creates[0].body["title"])
	assert.Equal(t, "Kategori: Billing\n\nlate fee", creates[0].body["description"])
	assert.Empty(t, fs.callsTo("/api/ai/finalize"))

	// Success resets the session: a new draft-start is required.
	assert.False(t, session.Confirmed())
	assert.Equal(t, FormStateDone, form.State())
}

func TestForm_Submit_FollowupPath(t *testing.T) {
	fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request, body map[string]any) {
		switch r.URL.Path {
		case "/api/draft/start":
			writeSuccess(w, http.StatusOK, map[string]any{})
		case "/api/ai/followups":
			writeSuccess(w, http.StatusOK, map[string]any{
				"needs_followup": true,
				"questions": []map[string]any{
					{"id": "q1", "type": "yes_no", "question": "Can you still log in?"},
					{"id": "q2", "type": "multiple_choice", "question": "Which browser?", "choices": []string{"Chrome", "Firefox"}},
					{"id": "q3", "type": "free_text", "question": "When did this start?"},
				},
			})
		case "/api/ai/finalize":
			writeSuccess(w, http.StatusCreated, map[string]any{
				"user_id":           7,
				"time_to_submit_ms": 90000,
				"log_table":         3,
				"final":             map[string]any{"improved_description": "User cannot log in."},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	session := confirmedSession(t, fs)
	prompter := &recordingPrompter{answers: map[string]string{
		"q1": "yes",
		"q2": "Chrome",
		"q3": "  since Monday  ",
	}}
	form := NewForm(fs.client(), session, prompter)

	result, err := form.Submit(context.Background(), "Login", "cant login")

	require.NoError(t, err)
	assert.Equal(t, int64(90000), result.TimeToSubmitMS)
	assert.Equal(t, 3, result.LogTable)
	assert.True(t, result.AIUsed)
	require.NotNil(t, result.Final)

	// All three questions prompted, in order.
	require.Len(t, prompter.asked, 3)
	assert.Equal(t, "q1", prompter.asked[0].ID)
	assert.Equal(t, "q2", prompter.asked[1].ID)
	assert.Equal(t, "q3", prompter.asked[2].ID)

	// Answers keyed by question id, trimmed, one entry per question.
	finalizes := fs.callsTo("/api/ai/finalize")
	require.Len(t, finalizes, 1)
	answers, ok := finalizes[0].body["answers"].(map[string]any)
	require.True(t, ok)
	require.Len(t, answers, 3)
	assert.Equal(t, "since Monday", answers["q3"])

	// No direct ticket creation on the follow-up path.
	assert.Empty(t, fs.callsTo("/api/tickets"))
	assert.False(t, session.Confirmed())
}

func TestForm_Submit_DeclinedAnswersAreEmptyStrings(t *testing.T) {
	fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request, body map[string]any) {
		switch r.URL.Path {
		case "/api/draft/start":
			writeSuccess(w, http.StatusOK, map[string]any{})
		case "/api/ai/followups":
			writeSuccess(w, http.StatusOK, map[string]any{
				"needs_followup": true,
				"questions": []map[string]any{
					{"id": "q1", "type": "free_text", "question": "When did this start?"},
				},
			})
		case "/api/ai/finalize":
			answers := body["answers"].(map[string]any)
			assert.Equal(t, "", answers["q1"])
			writeSuccess(w, http.StatusCreated, map[string]any{"time_to_submit_ms": 1000, "log_table": 1})
		}
	})

	session := confirmedSession(t, fs)
	form := NewForm(fs.client(), session, PrompterFunc(func(q Question) (string, error) {
		return "", nil
	}))

	_, err := form.Submit(context.Background(), "Login", "cant login")
	require.NoError(t, err)
	require.Len(t, fs.callsTo("/api/ai/finalize"), 1)
}

func TestForm_Submit_RejectedWithoutNetwork(t *testing.T) {
	tests := []struct {
		name        string
		confirm     bool
		inquiry     string
		description string
	}{
		{"not confirmed", false, "Billing", "late fee"},
		{"no category", true, "  ", "late fee"},
		{"blank description", true, "Billing", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request, body map[string]any) {
				if r.URL.Path != "/api/draft/start" {
					t.Fatalf("unexpected call to %s", r.URL.Path)
				}
				writeSuccess(w, http.StatusOK, map[string]any{})
			})

			session := NewSession(fs.client())
			if tt.confirm {
				_, err := session.ConfirmIdentity(context.Background(), "user7", 0)
				require.NoError(t, err)
			}
			form := NewForm(fs.client(), session, &recordingPrompter{})

			result, err := form.Submit(context.Background(), tt.inquiry, tt.description)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Empty(t, fs.callsTo("/api/ai/followups"))
		})
	}
}

func TestForm_Submit_BackendFailureKeepsSession(t *testing.T) {
	fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request, body map[string]any) {
		switch r.URL.Path {
		case "/api/draft/start":
			writeSuccess(w, http.StatusOK, map[string]any{})
		case "/api/ai/followups":
			writeError(w, http.StatusBadGateway, "upstream", "follow-up generation failed")
		}
	})

	session := confirmedSession(t, fs)
	form := NewForm(fs.client(), session, &recordingPrompter{})

	result, err := form.Submit(context.Background(), "Login", "cant login")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, KindBackend, KindOf(err))

	// The user can retry from the top without re-confirming.
	assert.True(t, session.Confirmed())
	assert.Equal(t, FormStateIdle, form.State())
}

func TestForm_Submit_PrompterFailureAborts(t *testing.T) {
	fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request, body map[string]any) {
		switch r.URL.Path {
		case "/api/draft/start":
			writeSuccess(w, http.StatusOK, map[string]any{})
		case "/api/ai/followups":
			writeSuccess(w, http.StatusOK, map[string]any{
				"needs_followup": true,
				"questions": []map[string]any{
					{"id": "q1", "type": "free_text", "question": "When?"},
				},
			})
		case "/api/ai/finalize":
			t.Fatal("finalize should not be called after a prompter failure")
		}
	})

	session := confirmedSession(t, fs)
	form := NewForm(fs.client(), session, PrompterFunc(func(q Question) (string, error) {
		return "", fmt.Errorf("stdin closed")
	}))

	result, err := form.Submit(context.Background(), "Login", "cant login")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, session.Confirmed())
}
