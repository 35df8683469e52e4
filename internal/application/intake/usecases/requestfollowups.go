package usecases

import (
	"context"
	"strings"

	"tickform/internal/domain/draft"
	"tickform/internal/shared/errors"
	"tickform/internal/shared/logger"
)

type RequestFollowupsCommand struct {
	UserID      uint
	Title       string
	Description string
}

type RequestFollowupsResult struct {
	NeedsFollowup bool
	Questions     []draft.Question
}

// RequestFollowupsUseCase stores the user's draft content and decides whether
// the AI collaborator should ask clarifying questions before finalization.
type RequestFollowupsUseCase struct {
	draftRepo DraftRepository
	assistant Assistant
	logger    logger.Interface
	// minDescriptionChars overrides the triage threshold; zero uses default.
	minDescriptionChars int
}

func NewRequestFollowupsUseCase(
	draftRepo DraftRepository,
	assistant Assistant,
	logger logger.Interface,
	minDescriptionChars int,
) *RequestFollowupsUseCase {
	return &RequestFollowupsUseCase{
		draftRepo:           draftRepo,
		assistant:           assistant,
		logger:              logger,
		minDescriptionChars: minDescriptionChars,
	}
}

func (uc *RequestFollowupsUseCase) Execute(ctx context.Context, cmd RequestFollowupsCommand) (*RequestFollowupsResult, error) {
	title := strings.TrimSpace(cmd.Title)
	description := strings.TrimSpace(cmd.Description)

	if cmd.UserID < draft.MinUserID || cmd.UserID > draft.MaxUserID {
		return nil, errors.NewValidationError("user_id must be an integer between 1 and 99")
	}
	if title == "" || description == "" {
		return nil, errors.NewValidationError("title and description required")
	}

	d, err := uc.draftRepo.FindActiveByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load draft", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load draft")
	}
	if d == nil {
		return nil, errors.NewValidationError("no active draft for this user, confirm identity first")
	}

	// Persist what the user typed so finalize can use it later.
	if err := d.AttachContent(title, description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.draftRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to store draft content", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to store draft content")
	}

	if !NeedsFollowup(description, uc.minDescriptionChars) {
		uc.logger.Debugw("description detailed enough, skipping follow-ups", "user_id", cmd.UserID)
		return &RequestFollowupsResult{NeedsFollowup: false}, nil
	}

	questions, err := uc.assistant.GenerateFollowups(ctx, title, description)
	if err != nil {
		uc.logger.Errorw("assistant follow-up generation failed", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewUpstreamError("follow-up generation failed", err.Error())
	}

	if err := d.RecordQuestions(questions); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.draftRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to store follow-up questions", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to store follow-up questions")
	}

	uc.logger.Infow("follow-up questions generated",
		"user_id", cmd.UserID,
		"count", len(questions),
		"ai_turns", d.AITurns())

	return &RequestFollowupsResult{
		NeedsFollowup: true,
		Questions:     questions,
	}, nil
}
