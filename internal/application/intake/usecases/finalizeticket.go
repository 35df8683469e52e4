package usecases

import (
	"context"
	"time"

	"tickform/internal/domain/draft"
	"tickform/internal/domain/ticket"
	"tickform/internal/shared/errors"
	"tickform/internal/shared/logger"
)

type FinalizeTicketCommand struct {
	UserID  uint
	Answers map[string]string
}

type FinalizeTicketResult struct {
	TicketID       uint
	UserID         uint
	TimeToSubmitMS int64
	LogTable       int
	Final          *ImprovedTicket
}

// FinalizeTicketUseCase turns a draft with collected follow-up answers into a
// submitted ticket: the AI collaborator rewrites the description, the ticket
// is stored with ai_used set, and the draft transitions to submitted.
type FinalizeTicketUseCase struct {
	draftRepo  DraftRepository
	ticketRepo TicketRepository
	assistant  Assistant
	tx         TransactionRunner
	logger     logger.Interface
	now        func() time.Time
}

func NewFinalizeTicketUseCase(
	draftRepo DraftRepository,
	ticketRepo TicketRepository,
	assistant Assistant,
	tx TransactionRunner,
	logger logger.Interface,
) *FinalizeTicketUseCase {
	return &FinalizeTicketUseCase{
		draftRepo:  draftRepo,
		ticketRepo: ticketRepo,
		assistant:  assistant,
		tx:         tx,
		logger:     logger,
		now:        time.Now,
	}
}

func (uc *FinalizeTicketUseCase) Execute(ctx context.Context, cmd FinalizeTicketCommand) (*FinalizeTicketResult, error) {
	if cmd.UserID < draft.MinUserID || cmd.UserID > draft.MaxUserID {
		return nil, errors.NewValidationError("user_id must be an integer between 1 and 99")
	}
	if len(cmd.Answers) == 0 {
		return nil, errors.NewValidationError("answers must be a non-empty object")
	}

	d, err := uc.draftRepo.FindActiveByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load draft", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load draft")
	}
	if d == nil || !d.HasContent() {
		return nil, errors.NewValidationError("no draft content found, submit the form first")
	}

	final, err := uc.assistant.ImproveTicket(ctx, d.Title(), d.Description(), cmd.Answers)
	if err != nil {
		uc.logger.Errorw("assistant finalize failed", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewUpstreamError("ticket finalization failed", err.Error())
	}

	submittedAt := uc.now()
	timeToSubmit := d.TimeToSubmit(submittedAt)

	newTicket, err := ticket.NewTicket(
		cmd.UserID,
		d.Title(),
		final.ImprovedDescription,
		timeToSubmit,
		true,
		d.LogTable(),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := d.Submit(cmd.Answers, submittedAt); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}
		return uc.draftRepo.Update(txCtx, d)
	})
	if err != nil {
		uc.logger.Errorw("failed to store finalized ticket", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to store finalized ticket")
	}

	uc.logger.Infow("ticket finalized with AI",
		"ticket_id", newTicket.ID(),
		"user_id", cmd.UserID,
		"partition", newTicket.Partition(),
		"ai_turns", d.AITurns(),
		"time_to_submit_ms", timeToSubmit.Milliseconds())

	return &FinalizeTicketResult{
		TicketID:       newTicket.ID(),
		UserID:         cmd.UserID,
		TimeToSubmitMS: timeToSubmit.Milliseconds(),
		LogTable:       d.LogTable(),
		Final:          final,
	}, nil
}
