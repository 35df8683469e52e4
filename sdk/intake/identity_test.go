package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserID(t *testing.T) {
	tests := []struct {
		input string
		want  uint
	}{
		{"user1", 1},
		{"user7", 7},
		{"user99", 99},
		{"USER42", 42},
		{"  User7  ", 7},
		{"\tuser10\n", 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUserID(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUserID_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"user0",
		"user00",
		"user100",
		"user999",
		"admin1",
		"user1x",
		"xuser1",
		"user",
		"user 7",
		"7",
		"user-1",
		"user1.5",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := ParseUserID(input)
			assert.Zero(t, got)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}
