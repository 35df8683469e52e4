package usecases

import (
	"context"

	"tickform/internal/shared/errors"
	"tickform/internal/shared/logger"
)

const defaultListLimit = 100

type ListTicketsQuery struct {
	Limit int
}

type TicketSummary struct {
	ID             uint   `json:"id"`
	UserID         uint   `json:"user_id"`
	Title          string `json:"title"`
	TimeToSubmitMS int64  `json:"time_to_submit_ms"`
	AIUsed         bool   `json:"ai_used"`
	Status         string `json:"status"`
	Partition      int    `json:"partition"`
}

type ListTicketsResult struct {
	Tickets []TicketSummary
}

type ListTicketsUseCase struct {
	ticketRepo TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	limit := query.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	tickets, err := uc.ticketRepo.ListRecent(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	summaries := make([]TicketSummary, len(tickets))
	for i, t := range tickets {
		summaries[i] = TicketSummary{
			ID:             t.ID(),
			UserID:         t.UserID(),
			Title:          t.Title(),
			TimeToSubmitMS: t.TimeToSubmit().Milliseconds(),
			AIUsed:         t.AIUsed(),
			Status:         t.Status().String(),
			Partition:      t.Partition(),
		}
	}

	return &ListTicketsResult{Tickets: summaries}, nil
}
