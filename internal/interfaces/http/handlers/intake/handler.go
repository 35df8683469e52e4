package intake

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tickform/internal/application/intake/usecases"
	"tickform/internal/shared/errors"
	"tickform/internal/shared/logger"
	"tickform/internal/shared/utils"
)

type IntakeHandler struct {
	startDraftUC       usecases.StartDraftExecutor
	createTicketUC     usecases.CreateTicketExecutor
	requestFollowupsUC usecases.RequestFollowupsExecutor
	finalizeTicketUC   usecases.FinalizeTicketExecutor
	listTicketsUC      usecases.ListTicketsExecutor
	logger             logger.Interface
}

func NewIntakeHandler(
	startDraftUC usecases.StartDraftExecutor,
	createTicketUC usecases.CreateTicketExecutor,
	requestFollowupsUC usecases.RequestFollowupsExecutor,
	finalizeTicketUC usecases.FinalizeTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
) *IntakeHandler {
	return &IntakeHandler{
		startDraftUC:       startDraftUC,
		createTicketUC:     createTicketUC,
		requestFollowupsUC: requestFollowupsUC,
		finalizeTicketUC:   finalizeTicketUC,
		listTicketsUC:      listTicketsUC,
		logger:             logger.NewLogger(),
	}
}

// Ping handles GET /api/ping
func (h *IntakeHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// StartDraft handles POST /api/draft/start
func (h *IntakeHandler) StartDraft(c *gin.Context) {
	var req StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for start draft", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.startDraftUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", StartDraftResponse{UserID: result.UserID})
}

// CreateTicket handles POST /api/tickets
func (h *IntakeHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, CreateTicketResponse{
		UserID:         result.UserID,
		TimeToSubmitMS: result.TimeToSubmitMS,
	}, "Ticket created successfully")
}

// ListTickets handles GET /api/tickets
func (h *IntakeHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ListTicketsResponse{Tickets: result.Tickets})
}

// RequestFollowups handles POST /api/ai/followups
func (h *IntakeHandler) RequestFollowups(c *gin.Context) {
	var req FollowupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for followups", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.requestFollowupsUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", FollowupsResponse{
		NeedsFollowup: result.NeedsFollowup,
		Questions:     result.Questions,
	})
}

// FinalizeTicket handles POST /api/ai/finalize
func (h *IntakeHandler) FinalizeTicket(c *gin.Context) {
	var req FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for finalize", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.finalizeTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, FinalizeResponse{
		UserID:         result.UserID,
		TimeToSubmitMS: result.TimeToSubmitMS,
		LogTable:       result.LogTable,
		Final:          result.Final,
	}, "Ticket finalized successfully")
}
