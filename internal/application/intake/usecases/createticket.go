package usecases

import (
	"context"
	"strings"
	"time"

	"tickform/internal/domain/draft"
	"tickform/internal/domain/ticket"
	"tickform/internal/shared/errors"
	"tickform/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID      uint
	Title       string
	Description string
}

type CreateTicketResult struct {
	TicketID       uint
	UserID         uint
	TimeToSubmitMS int64
}

// CreateTicketUseCase handles the direct (non-AI) submission path. It
// requires an active draft so elapsed time can be measured, and closes the
// draft once the ticket is stored.
type CreateTicketUseCase struct {
	draftRepo  DraftRepository
	ticketRepo TicketRepository
	tx         TransactionRunner
	logger     logger.Interface
	now        func() time.Time
}

func NewCreateTicketUseCase(
	draftRepo DraftRepository,
	ticketRepo TicketRepository,
	tx TransactionRunner,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		draftRepo:  draftRepo,
		ticketRepo: ticketRepo,
		tx:         tx,
		logger:     logger,
		now:        time.Now,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
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

	submittedAt := uc.now()
	timeToSubmit := d.TimeToSubmit(submittedAt)

	newTicket, err := ticket.NewTicket(cmd.UserID, title, description, timeToSubmit, false, d.LogTable())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := d.Submit(nil, submittedAt); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}
		return uc.draftRepo.Update(txCtx, d)
	})
	if err != nil {
		uc.logger.Errorw("failed to store ticket", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to store ticket")
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"user_id", cmd.UserID,
		"partition", newTicket.Partition(),
		"time_to_submit_ms", timeToSubmit.Milliseconds())

	return &CreateTicketResult{
		TicketID:       newTicket.ID(),
		UserID:         cmd.UserID,
		TimeToSubmitMS: timeToSubmit.Milliseconds(),
	}, nil
}
