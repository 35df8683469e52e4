package draft

import "fmt"

type QuestionType string

const (
	QuestionTypeYesNo          QuestionType = "yes_no"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeFreeText       QuestionType = "free_text"
)

func (qt QuestionType) IsValid() bool {
	switch qt {
	case QuestionTypeYesNo, QuestionTypeMultipleChoice, QuestionTypeFreeText:
		return true
	}
	return false
}

// Question is a clarifying question produced by the AI collaborator when the
// initial ticket description is judged insufficient. Choices is empty for
// anything other than multiple choice.
type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Question string       `json:"question"`
	Choices  []string     `json:"choices"`
	Required bool         `json:"required"`
}

func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question id is required")
	}
	if !q.Type.IsValid() {
		return fmt.Errorf("invalid question type: %s", q.Type)
	}
	if q.Question == "" {
		return fmt.Errorf("question text is required")
	}
	if q.Type != QuestionTypeMultipleChoice && len(q.Choices) > 0 {
		return fmt.Errorf("choices are only allowed for multiple choice questions")
	}
	return nil
}
