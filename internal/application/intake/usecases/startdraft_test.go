package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickform/internal/domain/draft"
	"tickform/internal/domain/user"
	"tickform/internal/shared/errors"
)

func TestStartDraftUseCase_Execute_Success(t *testing.T) {
	var upserted *draft.Draft
	var ensured *user.User

	draftRepo := &mockDraftRepo{
		upsertFunc: func(_ context.Context, d *draft.Draft) error {
			upserted = d
			return nil
		},
	}
	userRepo := &mockUserRepo{
		ensureFunc: func(_ context.Context, u *user.User) error {
			ensured = u
			return nil
		},
	}

	uc := NewStartDraftUseCase(draftRepo, userRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), StartDraftCommand{UserID: 7, LogTable: 3})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.UserID)
	assert.False(t, result.StartedAt.IsZero())

	require.NotNil(t, upserted)
	assert.Equal(t, uint(7), upserted.UserID())
	assert.Equal(t, 3, upserted.LogTable())
	assert.True(t, upserted.IsActive())

	require.NotNil(t, ensured)
	assert.Equal(t, "user7", ensured.Username())
}

func TestStartDraftUseCase_Execute_DefaultsLogTable(t *testing.T) {
	var upserted *draft.Draft
	draftRepo := &mockDraftRepo{
		upsertFunc: func(_ context.Context, d *draft.Draft) error {
			upserted = d
			return nil
		},
	}

	uc := NewStartDraftUseCase(draftRepo, &mockUserRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), StartDraftCommand{UserID: 1})

	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, draft.MinLogTable, upserted.LogTable())
}

func TestStartDraftUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		cmd  StartDraftCommand
	}{
		{"user id zero", StartDraftCommand{UserID: 0}},
		{"user id too large", StartDraftCommand{UserID: 100}},
		{"log table too large", StartDraftCommand{UserID: 7, LogTable: 6}},
		{"log table negative", StartDraftCommand{UserID: 7, LogTable: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draftRepo := &mockDraftRepo{
				upsertFunc: func(_ context.Context, _ *draft.Draft) error {
					t.Fatal("upsert should not be called")
					return nil
				},
			}
			uc := NewStartDraftUseCase(draftRepo, &mockUserRepo{}, noopLogger{})

			result, err := uc.Execute(context.Background(), tt.cmd)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestStartDraftUseCase_Execute_RepoFailure(t *testing.T) {
	draftRepo := &mockDraftRepo{
		upsertFunc: func(_ context.Context, _ *draft.Draft) error {
			return fmt.Errorf("connection refused")
		},
	}
	uc := NewStartDraftUseCase(draftRepo, &mockUserRepo{}, noopLogger{})

	result, err := uc.Execute(context.Background(), StartDraftCommand{UserID: 7})

	assert.Nil(t, result)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
