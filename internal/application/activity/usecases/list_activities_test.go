package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dunner/internal/domain/activity"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
)

type mockActivityRepository struct {
	AppendFunc         func(ctx context.Context, e *activity.Entry) error
	ListFunc           func(ctx context.Context, filter activity.ListFilter, offset, limit int) ([]*activity.Entry, int64, error)
	LatestByTicketFunc func(ctx context.Context, ticketID uint) (*activity.Entry, error)
}

func (m *mockActivityRepository) Append(ctx context.Context, e *activity.Entry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, e)
	}
	return nil
}

func (m *mockActivityRepository) List(ctx context.Context, filter activity.ListFilter, offset, limit int) ([]*activity.Entry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockActivityRepository) LatestByTicket(ctx context.Context, ticketID uint) (*activity.Entry, error) {
	if m.LatestByTicketFunc != nil {
		return m.LatestByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestLogger() logger.Interface {
	return noopLogger{}
}

func TestListActivitiesUseCase_Execute(t *testing.T) {
	ticketID := uint(42)
	entry := activity.ReconstructEntry(
		1,
		activity.TypeColorChange,
		&ticketID,
		"Changed color of invoice INV-100 from none to red",
		map[string]interface{}{"invoice_ref": "INV-100", "new_color": "red"},
		7,
		time.Now(),
	)

	var gotFilter activity.ListFilter
	var gotOffset, gotLimit int
	repo := &mockActivityRepository{
		ListFunc: func(ctx context.Context, filter activity.ListFilter, offset, limit int) ([]*activity.Entry, int64, error) {
			gotFilter = filter
			gotOffset = offset
			gotLimit = limit
			return []*activity.Entry{entry}, 1, nil
		},
	}

	uc := NewListActivitiesUseCase(repo, newTestLogger())
	result, err := uc.Execute(context.Background(), ListActivitiesQuery{
		TicketID:     42,
		ActivityType: "color_change",
		Page:         2,
		PageSize:     10,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), gotFilter.TicketID)
	assert.Equal(t, activity.TypeColorChange, gotFilter.EntryType)
	assert.Equal(t, 10, gotOffset)
	assert.Equal(t, 10, gotLimit)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, uint(1), result.Entries[0].EntryID)
	assert.Equal(t, "color_change", result.Entries[0].EntryType)
	require.NotNil(t, result.Entries[0].TicketID)
	assert.Equal(t, uint(42), *result.Entries[0].TicketID)
	assert.Equal(t, "INV-100", result.Entries[0].Metadata["invoice_ref"])
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 2, result.Page)
}

func TestListActivitiesUseCase_InvalidTypeFilter(t *testing.T) {
	uc := NewListActivitiesUseCase(&mockActivityRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), ListActivitiesQuery{
		ActivityType: "deleted",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListActivitiesUseCase_DefaultsPagination(t *testing.T) {
	var gotOffset, gotLimit int
	repo := &mockActivityRepository{
		ListFunc: func(ctx context.Context, filter activity.ListFilter, offset, limit int) ([]*activity.Entry, int64, error) {
			gotOffset = offset
			gotLimit = limit
			return nil, 0, nil
		},
	}

	uc := NewListActivitiesUseCase(repo, newTestLogger())
	result, err := uc.Execute(context.Background(), ListActivitiesQuery{})

	require.NoError(t, err)
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, 20, gotLimit)
	assert.Empty(t, result.Entries)
	assert.Equal(t, 1, result.Page)
}

func TestListActivitiesUseCase_RepositoryError(t *testing.T) {
	repo := &mockActivityRepository{
		ListFunc: func(ctx context.Context, filter activity.ListFilter, offset, limit int) ([]*activity.Entry, int64, error) {
			return nil, 0, context.DeadlineExceeded
		},
	}

	uc := NewListActivitiesUseCase(repo, newTestLogger())
	_, err := uc.Execute(context.Background(), ListActivitiesQuery{})

	require.Error(t, err)
	assert.True(t, errors.IsInternalError(err))
}
