package usecases

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsFollowup(t *testing.T) {
	long := strings.Repeat("the vpn drops every 20 minutes on the office wifi ", 7)

	tests := []struct {
		name        string
		description string
		minChars    int
		want        bool
	}{
		{"short description", "printer broken", 0, true},
		{"empty description", "", 0, true},
		{"long and specific", long, 0, false},
		{"long but vague phrase", long + " it is just not working", 0, true},
		{"vague phrase case insensitive", long + " I CANT LOGIN anymore", 0, true},
		{"custom threshold passes short text", "printer 3F jams on duplex", 10, false},
		{"custom threshold still too short", "broken", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsFollowup(tt.description, tt.minChars))
		})
	}
}
