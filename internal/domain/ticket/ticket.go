package ticket

import (
	"fmt"
	"time"

	"tickform/internal/domain/draft"
	vo "tickform/internal/domain/ticket/valueobjects"
)

// Ticket is a submitted support ticket. Immutable from the client's
// perspective once created.
type Ticket struct {
	id           uint
	userID       uint
	title        string
	description  string
	timeToSubmit time.Duration
	aiUsed       bool
	status       vo.TicketStatus
	partition    int
	createdAt    time.Time
}

func NewTicket(
	userID uint,
	title string,
	description string,
	timeToSubmit time.Duration,
	aiUsed bool,
	partition int,
) (*Ticket, error) {
	if userID < draft.MinUserID || userID > draft.MaxUserID {
		return nil, fmt.Errorf("user ID must be between %d and %d", draft.MinUserID, draft.MaxUserID)
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if timeToSubmit < 0 {
		return nil, fmt.Errorf("time to submit cannot be negative")
	}
	if partition < draft.MinLogTable || partition > draft.MaxLogTable {
		return nil, fmt.Errorf("partition must be between %d and %d", draft.MinLogTable, draft.MaxLogTable)
	}

	return &Ticket{
		userID:       userID,
		title:        title,
		description:  description,
		timeToSubmit: timeToSubmit,
		aiUsed:       aiUsed,
		status:       vo.StatusOpen,
		partition:    partition,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructTicket(
	id uint,
	userID uint,
	title string,
	description string,
	timeToSubmit time.Duration,
	aiUsed bool,
	status vo.TicketStatus,
	partition int,
	createdAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:           id,
		userID:       userID,
		title:        title,
		description:  description,
		timeToSubmit: timeToSubmit,
		aiUsed:       aiUsed,
		status:       status,
		partition:    partition,
		createdAt:    createdAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) UserID() uint {
	return t.userID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) TimeToSubmit() time.Duration {
	return t.timeToSubmit
}

func (t *Ticket) AIUsed() bool {
	return t.aiUsed
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Partition() int {
	return t.partition
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}
