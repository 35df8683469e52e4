package intake

// QuestionType identifies how a follow-up question should be answered.
type QuestionType string

const (
	QuestionTypeYesNo          QuestionType = "yes_no"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeFreeText       QuestionType = "free_text"
)

// Question is a clarifying question produced by the AI collaborator.
type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Question string       `json:"question"`
	Choices  []string     `json:"choices,omitempty"`
	Required bool         `json:"required"`
}

// ImprovedTicket is the AI-rewritten ticket returned by finalization.
type ImprovedTicket struct {
	ImprovedDescription string   `json:"improved_description"`
	CategoryGuess       string   `json:"category_guess"`
	UrgencyGuess        string   `json:"urgency_guess"`
	MissingInfo         []string `json:"missing_info,omitempty"`
}

// DraftStartResult is the response of a draft-start request.
type DraftStartResult struct {
	UserID uint `json:"user_id"`
}

// TicketResult is the response of a direct ticket creation.
type TicketResult struct {
	UserID         uint  `json:"user_id"`
	TimeToSubmitMS int64 `json:"time_to_submit_ms"`
}

// FollowupsResult is the response of a follow-up determination request.
type FollowupsResult struct {
	NeedsFollowup bool       `json:"needs_followup"`
	Questions     []Question `json:"questions,omitempty"`
}

// FinalizeResult is the response of a finalize request.
type FinalizeResult struct {
	UserID         uint            `json:"user_id"`
	TimeToSubmitMS int64           `json:"time_to_submit_ms"`
	LogTable       int             `json:"log_table"`
	Final          *ImprovedTicket `json:"final"`
}

// TicketSummary is a single entry of the ticket listing.
type TicketSummary struct {
	ID             uint   `json:"id"`
	UserID         uint   `json:"user_id"`
	Title          string `json:"title"`
	TimeToSubmitMS int64  `json:"time_to_submit_ms"`
	AIUsed         bool   `json:"ai_used"`
	Status         string `json:"status"`
	Partition      int    `json:"partition"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type apiResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Error   *apiError `json:"error,omitempty"`
	Data    any       `json:"data,omitempty"`
}
