package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{
			"valid yes/no",
			Question{ID: "q1", Type: QuestionTypeYesNo, Question: "Can you still log in?"},
			false,
		},
		{
			"valid multiple choice",
			Question{ID: "q2", Type: QuestionTypeMultipleChoice, Question: "Which browser?", Choices: []string{"Chrome", "Firefox"}},
			false,
		},
		{
			"valid free text",
			Question{ID: "q3", Type: QuestionTypeFreeText, Question: "When did this start?", Required: true},
			false,
		},
		{
			"missing id",
			Question{Type: QuestionTypeFreeText, Question: "When?"},
			true,
		},
		{
			"unknown type",
			Question{ID: "q1", Type: "rating", Question: "How bad?"},
			true,
		},
		{
			"missing text",
			Question{ID: "q1", Type: QuestionTypeFreeText},
			true,
		},
		{
			"choices on free text",
			Question{ID: "q1", Type: QuestionTypeFreeText, Question: "When?", Choices: []string{"today"}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
