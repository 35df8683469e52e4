package usecases

import (
	"context"
	"fmt"
	"time"

	"tickform/internal/domain/draft"
	"tickform/internal/domain/user"
	"tickform/internal/shared/errors"
	"tickform/internal/shared/logger"
)

type StartDraftCommand struct {
	UserID uint
	// LogTable selects the ticket partition (1-5). Zero means default.
	LogTable int
}

type StartDraftResult struct {
	UserID    uint
	StartedAt time.Time
}

// StartDraftUseCase opens (or resets) the timed draft session for a user.
// Starting a draft for a user that already has one replaces the old row,
// clearing any stored content and AI state.
type StartDraftUseCase struct {
	draftRepo DraftRepository
	userRepo  UserRepository
	logger    logger.Interface
	now       func() time.Time
}

func NewStartDraftUseCase(
	draftRepo DraftRepository,
	userRepo UserRepository,
	logger logger.Interface,
) *StartDraftUseCase {
	return &StartDraftUseCase{
		draftRepo: draftRepo,
		userRepo:  userRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *StartDraftUseCase) Execute(ctx context.Context, cmd StartDraftCommand) (*StartDraftResult, error) {
	if cmd.UserID < draft.MinUserID || cmd.UserID > draft.MaxUserID {
		return nil, errors.NewValidationError(
			fmt.Sprintf("user_id must be an integer between %d and %d", draft.MinUserID, draft.MaxUserID))
	}

	logTable := cmd.LogTable
	if logTable == 0 {
		logTable = draft.MinLogTable
	}
	if logTable < draft.MinLogTable || logTable > draft.MaxLogTable {
		return nil, errors.NewValidationError(
			fmt.Sprintf("table must be an integer between %d and %d", draft.MinLogTable, draft.MaxLogTable))
	}

	u, err := user.NewUser(cmd.UserID, fmt.Sprintf("user%d", cmd.UserID))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Ensure(ctx, u); err != nil {
		uc.logger.Errorw("failed to ensure user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to record user")
	}

	startedAt := uc.now()
	d, err := draft.NewDraft(cmd.UserID, logTable, startedAt)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.draftRepo.Upsert(ctx, d); err != nil {
		uc.logger.Errorw("failed to upsert draft", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to start draft")
	}

	uc.logger.Infow("draft started", "user_id", cmd.UserID, "log_table", logTable)

	return &StartDraftResult{
		UserID:    cmd.UserID,
		StartedAt: startedAt,
	}, nil
}
