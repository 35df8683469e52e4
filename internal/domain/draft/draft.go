package draft

import (
	"fmt"
	"time"

	vo "tickform/internal/domain/draft/valueobjects"
)

// Draft is the server-side timing session opened when a user confirms
// identity. One draft exists per user; starting a new one replaces the old.
type Draft struct {
	userID      uint
	state       vo.DraftState
	title       string
	description string
	questions   []Question
	answers     map[string]string
	aiTurns     int
	logTable    int
	startedAt   time.Time
	submittedAt *time.Time
}

const (
	MinUserID = 1
	MaxUserID = 99

	MinLogTable = 1
	MaxLogTable = 5
)

func NewDraft(userID uint, logTable int, startedAt time.Time) (*Draft, error) {
	if userID < MinUserID || userID > MaxUserID {
		return nil, fmt.Errorf("user ID must be between %d and %d", MinUserID, MaxUserID)
	}
	if logTable < MinLogTable || logTable > MaxLogTable {
		return nil, fmt.Errorf("log table must be between %d and %d", MinLogTable, MaxLogTable)
	}
	if startedAt.IsZero() {
		return nil, fmt.Errorf("start time is required")
	}

	return &Draft{
		userID:    userID,
		state:     vo.StateDraft,
		logTable:  logTable,
		startedAt: startedAt,
	}, nil
}

func ReconstructDraft(
	userID uint,
	state vo.DraftState,
	title string,
	description string,
	questions []Question,
	answers map[string]string,
	aiTurns int,
	logTable int,
	startedAt time.Time,
	submittedAt *time.Time,
) (*Draft, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !state.IsValid() {
		return nil, fmt.Errorf("invalid draft state: %s", state)
	}

	if answers == nil {
		answers = make(map[string]string)
	}

	return &Draft{
		userID:      userID,
		state:       state,
		title:       title,
		description: description,
		questions:   questions,
		answers:     answers,
		aiTurns:     aiTurns,
		logTable:    logTable,
		startedAt:   startedAt,
		submittedAt: submittedAt,
	}, nil
}

func (d *Draft) UserID() uint {
	return d.userID
}

func (d *Draft) State() vo.DraftState {
	return d.state
}

func (d *Draft) Title() string {
	return d.title
}

func (d *Draft) Description() string {
	return d.description
}

func (d *Draft) Questions() []Question {
	questionsCopy := make([]Question, len(d.questions))
	copy(questionsCopy, d.questions)
	return questionsCopy
}

func (d *Draft) Answers() map[string]string {
	answersCopy := make(map[string]string, len(d.answers))
	for k, v := range d.answers {
		answersCopy[k] = v
	}
	return answersCopy
}

func (d *Draft) AITurns() int {
	return d.aiTurns
}

func (d *Draft) LogTable() int {
	return d.logTable
}

func (d *Draft) StartedAt() time.Time {
	return d.startedAt
}

func (d *Draft) SubmittedAt() *time.Time {
	return d.submittedAt
}

func (d *Draft) IsActive() bool {
	return d.state.IsActive()
}

// HasContent reports whether the user's original title and description have
// been stored on the draft, which finalization depends on.
func (d *Draft) HasContent() bool {
	return d.title != "" && d.description != ""
}

// AttachContent stores what the user typed so a later finalize call can use it.
func (d *Draft) AttachContent(title, description string) error {
	if !d.state.IsActive() {
		return fmt.Errorf("cannot attach content to a %s draft", d.state)
	}
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if description == "" {
		return fmt.Errorf("description is required")
	}

	d.title = title
	d.description = description
	return nil
}

// RecordQuestions stores AI-generated follow-up questions and counts the turn.
func (d *Draft) RecordQuestions(questions []Question) error {
	if !d.state.IsActive() {
		return fmt.Errorf("cannot record questions on a %s draft", d.state)
	}
	if len(questions) == 0 {
		return fmt.Errorf("at least one question is required")
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return err
		}
	}

	d.questions = questions
	d.aiTurns++
	return nil
}

// Submit marks the draft as submitted. Answers may be nil for the direct
// (non-AI) submission path.
func (d *Draft) Submit(answers map[string]string, at time.Time) error {
	if !d.state.CanTransitionTo(vo.StateSubmitted) {
		return fmt.Errorf("cannot submit a %s draft", d.state)
	}

	if answers != nil {
		d.answers = answers
		d.aiTurns++
	}

	d.state = vo.StateSubmitted
	d.submittedAt = &at
	return nil
}

// Abandon marks the draft as abandoned. The client never calls this; it
// exists for a server-side sweeper to assign the terminal state.
func (d *Draft) Abandon() error {
	if !d.state.CanTransitionTo(vo.StateAbandoned) {
		return fmt.Errorf("cannot abandon a %s draft", d.state)
	}
	d.state = vo.StateAbandoned
	return nil
}

// TimeToSubmit returns elapsed time between draft start and the given moment.
func (d *Draft) TimeToSubmit(at time.Time) time.Duration {
	return at.Sub(d.startedAt)
}
