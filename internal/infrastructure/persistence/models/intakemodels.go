package models

import "gorm.io/datatypes"

type UserModel struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"size:50;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// TicketDraftModel holds one active draft per user; user_id is the primary
// key, so a new draft-start replaces the prior row.
type TicketDraftModel struct {
	UserID           uint           `gorm:"primaryKey"`
	State            string         `gorm:"size:20;not null;index"`
	DraftTitle       string         `gorm:"size:200"`
	DraftDescription string         `gorm:"type:text"`
	AIQuestions      datatypes.JSON `gorm:"column:ai_questions"`
	AIAnswers        datatypes.JSON `gorm:"column:ai_answers"`
	AITurns          int            `gorm:"column:ai_turns;not null;default:0"`
	LogTable         int            `gorm:"not null;default:1"`
	StartedAt        int64          `gorm:"not null"`
	SubmittedAt      *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketDraftModel) TableName() string {
	return "ticket_drafts"
}

// TicketModel stores submitted tickets in a single table. LogTable is the
// explicit partition column (1-5) that replaces the prototype's five
// structurally identical tickets_N tables.
type TicketModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"not null;index"`
	Title          string `gorm:"size:200;not null"`
	Description    string `gorm:"type:text;not null"`
	TimeToSubmitMS int64  `gorm:"column:time_to_submit_ms;not null"`
	AIUsed         bool   `gorm:"column:ai_used;not null;default:false"`
	Status         string `gorm:"size:20;not null;index"`
	LogTable       int    `gorm:"not null;index;default:1"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
