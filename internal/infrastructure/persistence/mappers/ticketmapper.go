package mappers

import (
	"time"

	"tickform/internal/domain/ticket"
	vo "tickform/internal/domain/ticket/valueobjects"
	"tickform/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:             t.ID(),
		UserID:         t.UserID(),
		Title:          t.Title(),
		Description:    t.Description(),
		TimeToSubmitMS: t.TimeToSubmit().Milliseconds(),
		AIUsed:         t.AIUsed(),
		Status:         t.Status().String(),
		LogTable:       t.Partition(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.Title,
		model.Description,
		time.Duration(model.TimeToSubmitMS)*time.Millisecond,
		model.AIUsed,
		vo.TicketStatus(model.Status),
		model.LogTable,
		time.UnixMilli(model.CreatedAt),
	)
}
