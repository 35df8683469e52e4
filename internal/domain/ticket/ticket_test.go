package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "tickform/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket(7, "Billing", "Kategori: Billing\n\nlate fee", 42*time.Second, false, 3)
	require.NoError(t, err)

	assert.Equal(t, uint(0), tk.ID())
	assert.Equal(t, uint(7), tk.UserID())
	assert.Equal(t, "Billing", tk.Title())
	assert.Equal(t, 42*time.Second, tk.TimeToSubmit())
	assert.False(t, tk.AIUsed())
	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Equal(t, 3, tk.Partition())
	assert.False(t, tk.CreatedAt().IsZero())
}

func TestNewTicket_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		userID       uint
		title        string
		description  string
		timeToSubmit time.Duration
		partition    int
	}{
		{"user id out of range", 100, "Billing", "late fee", 0, 1},
		{"empty title", 7, "", "late fee", 0, 1},
		{"title too long", 7, strings.Repeat("x", 201), "late fee", 0, 1},
		{"empty description", 7, "Billing", "", 0, 1},
		{"description too long", 7, "Billing", strings.Repeat("x", 5001), 0, 1},
		{"negative elapsed time", 7, "Billing", "late fee", -time.Second, 1},
		{"partition zero", 7, "Billing", "late fee", 0, 0},
		{"partition too large", 7, "Billing", "late fee", 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.userID, tt.title, tt.description, tt.timeToSubmit, false, tt.partition)
			assert.Nil(t, tk)
			assert.Error(t, err)
		})
	}
}

func TestTicket_SetID(t *testing.T) {
	tk, err := NewTicket(7, "Billing", "late fee", 0, false, 1)
	require.NoError(t, err)

	require.NoError(t, tk.SetID(11))
	assert.Equal(t, uint(11), tk.ID())

	assert.Error(t, tk.SetID(12))
	assert.Equal(t, uint(11), tk.ID())
}

func TestReconstructTicket(t *testing.T) {
	createdAt := time.Now().Add(-time.Hour)

	tk, err := ReconstructTicket(11, 7, "Login", "cannot log in", 90*time.Second, true, vo.StatusClosed, 2, createdAt)
	require.NoError(t, err)

	assert.Equal(t, uint(11), tk.ID())
	assert.True(t, tk.AIUsed())
	assert.Equal(t, vo.StatusClosed, tk.Status())
	assert.Equal(t, createdAt, tk.CreatedAt())
}

func TestReconstructTicket_Invalid(t *testing.T) {
	_, err := ReconstructTicket(0, 7, "Login", "d", 0, false, vo.StatusOpen, 1, time.Now())
	assert.Error(t, err)

	_, err = ReconstructTicket(11, 7, "Login", "d", 0, false, "resolved", 1, time.Now())
	assert.Error(t, err)
}
