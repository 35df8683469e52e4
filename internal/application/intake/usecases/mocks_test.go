package usecases

import (
	"context"

	"tickform/internal/domain/draft"
	"tickform/internal/domain/ticket"
	"tickform/internal/domain/user"
	"tickform/internal/shared/logger"
)

type mockDraftRepo struct {
	upsertFunc     func(ctx context.Context, d *draft.Draft) error
	findActiveFunc func(ctx context.Context, userID uint) (*draft.Draft, error)
	updateFunc     func(ctx context.Context, d *draft.Draft) error
}

func (m *mockDraftRepo) Upsert(ctx context.Context, d *draft.Draft) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, d)
	}
	return nil
}

func (m *mockDraftRepo) FindActiveByUserID(ctx context.Context, userID uint) (*draft.Draft, error) {
	if m.findActiveFunc != nil {
		return m.findActiveFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockDraftRepo) Update(ctx context.Context, d *draft.Draft) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, d)
	}
	return nil
}

type mockTicketRepo struct {
	saveFunc       func(ctx context.Context, t *ticket.Ticket) error
	listRecentFunc func(ctx context.Context, limit int) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepo) ListRecent(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	if m.listRecentFunc != nil {
		return m.listRecentFunc(ctx, limit)
	}
	return nil, nil
}

type mockUserRepo struct {
	ensureFunc func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepo) Ensure(ctx context.Context, u *user.User) error {
	if m.ensureFunc != nil {
		return m.ensureFunc(ctx, u)
	}
	return nil
}

type mockAssistant struct {
	generateFunc func(ctx context.Context, title, description string) ([]draft.Question, error)
	improveFunc  func(ctx context.Context, title, description string, answers map[string]string) (*ImprovedTicket, error)
}

func (m *mockAssistant) GenerateFollowups(ctx context.Context, title, description string) ([]draft.Question, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, title, description)
	}
	return nil, nil
}

func (m *mockAssistant) ImproveTicket(ctx context.Context, title, description string, answers map[string]string) (*ImprovedTicket, error) {
	if m.improveFunc != nil {
		return m.improveFunc(ctx, title, description, answers)
	}
	return &ImprovedTicket{}, nil
}

// mockTxRunner runs the function directly, without a real transaction.
type mockTxRunner struct {
	err error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) With(args ...any) logger.Interface               { return noopLogger{} }
func (noopLogger) Named(name string) logger.Interface              { return noopLogger{} }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
