package intake

import (
	"tickform/internal/application/intake/usecases"
	"tickform/internal/domain/draft"
)

type StartDraftRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	Table  int  `json:"table"`
}

func (r *StartDraftRequest) ToCommand() usecases.StartDraftCommand {
	return usecases.StartDraftCommand{
		UserID:   r.UserID,
		LogTable: r.Table,
	}
}

type StartDraftResponse struct {
	UserID uint `json:"user_id"`
}

type CreateTicketRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
	}
}

type CreateTicketResponse struct {
	UserID         uint  `json:"user_id"`
	TimeToSubmitMS int64 `json:"time_to_submit_ms"`
}

type FollowupsRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
}

func (r *FollowupsRequest) ToCommand() usecases.RequestFollowupsCommand {
	return usecases.RequestFollowupsCommand{
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
	}
}

type FollowupsResponse struct {
	NeedsFollowup bool             `json:"needs_followup"`
	Questions     []draft.Question `json:"questions,omitempty"`
}

type FinalizeRequest struct {
	UserID  uint              `json:"user_id" binding:"required"`
	Answers map[string]string `json:"answers" binding:"required"`
}

func (r *FinalizeRequest) ToCommand() usecases.FinalizeTicketCommand {
	return usecases.FinalizeTicketCommand{
		UserID:  r.UserID,
		Answers: r.Answers,
	}
}

type FinalizeResponse struct {
	UserID         uint                    `json:"user_id"`
	TimeToSubmitMS int64                   `json:"time_to_submit_ms"`
	LogTable       int                     `json:"log_table"`
	Final          *usecases.ImprovedTicket `json:"final"`
}

type ListTicketsResponse struct {
	Tickets []usecases.TicketSummary `json:"tickets"`
}
