package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"tickform/internal/domain/draft"
	vo "tickform/internal/domain/draft/valueobjects"
	"tickform/internal/infrastructure/persistence/models"
)

// DraftMapper handles the conversion between Draft domain entities and
// persistence models.
type DraftMapper interface {
	ToModel(d *draft.Draft) (*models.TicketDraftModel, error)
	ToDomain(model *models.TicketDraftModel) (*draft.Draft, error)
}

type DraftMapperImpl struct{}

func NewDraftMapper() DraftMapper {
	return &DraftMapperImpl{}
}

func (m *DraftMapperImpl) ToModel(d *draft.Draft) (*models.TicketDraftModel, error) {
	model := &models.TicketDraftModel{
		UserID:           d.UserID(),
		State:            d.State().String(),
		DraftTitle:       d.Title(),
		DraftDescription: d.Description(),
		AITurns:          d.AITurns(),
		LogTable:         d.LogTable(),
		StartedAt:        d.StartedAt().UnixMilli(),
	}

	if questions := d.Questions(); len(questions) > 0 {
		data, err := json.Marshal(questions)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal questions: %w", err)
		}
		model.AIQuestions = data
	}

	if answers := d.Answers(); len(answers) > 0 {
		data, err := json.Marshal(answers)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal answers: %w", err)
		}
		model.AIAnswers = data
	}

	if submittedAt := d.SubmittedAt(); submittedAt != nil {
		ts := submittedAt.UnixMilli()
		model.SubmittedAt = &ts
	}

	return model, nil
}

func (m *DraftMapperImpl) ToDomain(model *models.TicketDraftModel) (*draft.Draft, error) {
	var questions []draft.Question
	if len(model.AIQuestions) > 0 {
		if err := json.Unmarshal(model.AIQuestions, &questions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
		}
	}

	answers := make(map[string]string)
	if len(model.AIAnswers) > 0 {
		if err := json.Unmarshal(model.AIAnswers, &answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
	}

	var submittedAt *time.Time
	if model.SubmittedAt != nil {
		t := time.UnixMilli(*model.SubmittedAt)
		submittedAt = &t
	}

	return draft.ReconstructDraft(
		model.UserID,
		vo.DraftState(model.State),
		model.DraftTitle,
		model.DraftDescription,
		questions,
		answers,
		model.AITurns,
		model.LogTable,
		time.UnixMilli(model.StartedAt),
		submittedAt,
	)
}
