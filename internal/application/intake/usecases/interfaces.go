package usecases

import (
	"context"

	"tickform/internal/domain/draft"
	"tickform/internal/domain/ticket"
	"tickform/internal/domain/user"
)

// DraftRepository persists draft sessions, one row per user.
type DraftRepository interface {
	// Upsert inserts a fresh draft or replaces the existing row for the
	// draft's user.
	Upsert(ctx context.Context, d *draft.Draft) error
	// FindActiveByUserID returns the user's draft if it is in the active
	// state, or nil when no active draft exists.
	FindActiveByUserID(ctx context.Context, userID uint) (*draft.Draft, error)
	Update(ctx context.Context, d *draft.Draft) error
}

// TicketRepository persists submitted tickets.
type TicketRepository interface {
	Save(ctx context.Context, t *ticket.Ticket) error
	ListRecent(ctx context.Context, limit int) ([]*ticket.Ticket, error)
}

// UserRepository records known form users.
type UserRepository interface {
	// Ensure inserts the user if not present; existing rows are left alone.
	Ensure(ctx context.Context, u *user.User) error
}

// ImprovedTicket is the AI collaborator's rewrite of a draft into a final
// ticket, plus best-effort triage metadata.
type ImprovedTicket struct {
	ImprovedDescription string   `json:"improved_description"`
	CategoryGuess       string   `json:"category_guess"`
	UrgencyGuess        string   `json:"urgency_guess"`
	MissingInfo         []string `json:"missing_info"`
}

// Assistant is the opaque AI capability: given ticket content it produces
// follow-up questions or a final improved description.
type Assistant interface {
	GenerateFollowups(ctx context.Context, title, description string) ([]draft.Question, error)
	ImproveTicket(ctx context.Context, title, description string, answers map[string]string) (*ImprovedTicket, error)
}

// TransactionRunner runs a function within a storage transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type StartDraftExecutor interface {
	Execute(ctx context.Context, cmd StartDraftCommand) (*StartDraftResult, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type RequestFollowupsExecutor interface {
	Execute(ctx context.Context, cmd RequestFollowupsCommand) (*RequestFollowupsResult, error)
}

type FinalizeTicketExecutor interface {
	Execute(ctx context.Context, cmd FinalizeTicketCommand) (*FinalizeTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
