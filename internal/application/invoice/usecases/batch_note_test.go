package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dunner/internal/domain/activity"
	"dunner/internal/domain/invoice"
	"dunner/internal/domain/reminder"
	"dunner/internal/shared/errors"
)

func invoiceLookup(refs ...string) func(ctx context.Context, lookup []string) ([]*invoice.Invoice, error) {
	return func(ctx context.Context, lookup []string) ([]*invoice.Invoice, error) {
		known := make(map[string]bool, len(refs))
		for _, r := range refs {
			known[r] = true
		}
		var out []*invoice.Invoice
		for _, r := range lookup {
			if known[r] {
				out = append(out, invoiceFixture(r, nil))
			}
		}
		return out, nil
	}
}

func newBatchNoteUseCase(
	invoiceRepo *mockInvoiceRepository,
	assignmentRepo *mockAssignmentRepository,
	memoRepo *mockMemoRepository,
	reminderRepo *mockReminderRepository,
	activityRepo *mockActivityRepository,
) *BatchNoteUseCase {
	return NewBatchNoteUseCase(invoiceRepo, assignmentRepo, memoRepo, reminderRepo, activityRepo, &mockTxManager{}, noopLogger{})
}

func TestBatchNote_MemosOnly(t *testing.T) {
	var savedMemos []*invoice.Memo
	var entries []*activity.Entry
	remindersSaved := false

	invoiceRepo := &mockInvoiceRepository{FindByRefsFunc: invoiceLookup("INV-1", "INV-2")}
	memoRepo := &mockMemoRepository{
		SaveBatchFunc: func(ctx context.Context, memos []*invoice.Memo) error {
			savedMemos = memos
			return nil
		},
	}
	reminderRepo := &mockReminderRepository{
		CreateBatchFunc: func(ctx context.Context, reminders []*reminder.Reminder) error {
			remindersSaved = true
			return nil
		},
	}
	activityRepo := &mockActivityRepository{
		AppendFunc: func(ctx context.Context, e *activity.Entry) error {
			entries = append(entries, e)
			return nil
		},
	}

	uc := newBatchNoteUseCase(invoiceRepo, &mockAssignmentRepository{}, memoRepo, reminderRepo, activityRepo)

	result, err := uc.Execute(context.Background(), BatchNoteCommand{
		InvoiceRefs: []string{"INV-1", "INV-2"},
		NoteText:    "left voicemail",
		CreatedBy:   7,
	})
	require.NoError(t, err)

	assert.Contains(t, result.BatchID, "bn_")
	assert.Equal(t, 2, result.MemoCount)
	assert.Equal(t, 0, result.ReminderCount)
	assert.Nil(t, result.ReminderAt)
	assert.False(t, remindersSaved, "no reminder requested, none written")

	require.Len(t, savedMemos, 2)
	assert.Equal(t, "left voicemail", savedMemos[0].Content())
	assert.Equal(t, result.BatchID, savedMemos[0].BatchID())
	assert.Equal(t, result.BatchID, savedMemos[1].BatchID())

	require.Len(t, entries, 1, "batch writes exactly one activity entry")
	assert.Equal(t, activity.TypeMemoAdded, entries[0].EntryType())
	assert.Equal(t, result.BatchID, entries[0].Metadata()["batch_id"])
	_, hasReminderAt := entries[0].Metadata()["reminder_at"]
	assert.False(t, hasReminderAt)
}

func TestBatchNote_WithReminder(t *testing.T) {
	var savedReminders []*reminder.Reminder
	var entry *activity.Entry

	invoiceRepo := &mockInvoiceRepository{FindByRefsFunc: invoiceLookup("INV-1", "INV-2")}
	reminderRepo := &mockReminderRepository{
		CreateBatchFunc: func(ctx context.Context, reminders []*reminder.Reminder) error {
			savedReminders = reminders
			return nil
		},
	}
	activityRepo := &mockActivityRepository{
		AppendFunc: func(ctx context.Context, e *activity.Entry) error {
			entry = e
			return nil
		},
	}

	uc := newBatchNoteUseCase(invoiceRepo, &mockAssignmentRepository{}, &mockMemoRepository{}, reminderRepo, activityRepo)

	result, err := uc.Execute(context.Background(), BatchNoteCommand{
		InvoiceRefs:  []string{"INV-1", "INV-2"},
		NoteText:     "promised payment",
		WithReminder: true,
		ReminderDate: "2025-02-14",
		ReminderTime: "09:30",
		SendEmail:    true,
		CreatedBy:    7,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.ReminderCount)
	require.NotNil(t, result.ReminderAt)

	expected := time.Date(2025, 2, 14, 9, 30, 0, 0, time.Local)
	assert.True(t, result.ReminderAt.Equal(expected))

	require.Len(t, savedReminders, 2)
	assert.Equal(t, "Follow up invoice INV-1", savedReminders[0].Title())
	assert.Equal(t, "Follow up invoice INV-2", savedReminders[1].Title())
	assert.Equal(t, "promised payment", savedReminders[0].Message())
	assert.True(t, savedReminders[0].RemindAt().Equal(expected))
	assert.True(t, savedReminders[0].SendEmail())
	assert.Equal(t, reminder.StatusPending, savedReminders[0].Status())

	require.NotNil(t, entry)
	assert.Equal(t, expected.Format(time.RFC3339), entry.Metadata()["reminder_at"])
}

func TestBatchNote_TicketIDsPropagated(t *testing.T) {
	var savedMemos []*invoice.Memo

	invoiceRepo := &mockInvoiceRepository{FindByRefsFunc: invoiceLookup("INV-1", "INV-2")}
	assignmentRepo := &mockAssignmentRepository{
		GetByRefFunc: func(ctx context.Context, invoiceRef string) (*invoice.Assignment, error) {
			if invoiceRef == "INV-1" {
				return invoice.NewAssignment(invoiceRef, 9, 7)
			}
			return nil, nil
		},
	}
	memoRepo := &mockMemoRepository{
		SaveBatchFunc: func(ctx context.Context, memos []*invoice.Memo) error {
			savedMemos = memos
			return nil
		},
	}

	uc := newBatchNoteUseCase(invoiceRepo, assignmentRepo, memoRepo, &mockReminderRepository{}, &mockActivityRepository{})

	_, err := uc.Execute(context.Background(), BatchNoteCommand{
		InvoiceRefs: []string{"INV-1", "INV-2"},
		NoteText:    "note",
		CreatedBy:   7,
	})
	require.NoError(t, err)

	require.Len(t, savedMemos, 2)
	require.NotNil(t, savedMemos[0].TicketID())
	assert.Equal(t, uint(9), *savedMemos[0].TicketID())
	assert.Nil(t, savedMemos[1].TicketID())
}

func TestBatchNote_MissingInvoice(t *testing.T) {
	memosSaved := false

	invoiceRepo := &mockInvoiceRepository{FindByRefsFunc: invoiceLookup("INV-1")}
	memoRepo := &mockMemoRepository{
		SaveBatchFunc: func(ctx context.Context, memos []*invoice.Memo) error {
			memosSaved = true
			return nil
		},
	}

	uc := newBatchNoteUseCase(invoiceRepo, &mockAssignmentRepository{}, memoRepo, &mockReminderRepository{}, &mockActivityRepository{})

	_, err := uc.Execute(context.Background(), BatchNoteCommand{
		InvoiceRefs: []string{"INV-1", "INV-404"},
		NoteText:    "note",
		CreatedBy:   7,
	})
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "INV-404")
	assert.False(t, memosSaved)
}

func TestBatchNote_ReminderFailureAbortsMemos(t *testing.T) {
	invoiceRepo := &mockInvoiceRepository{FindByRefsFunc: invoiceLookup("INV-1")}
	reminderRepo := &mockReminderRepository{
		CreateBatchFunc: func(ctx context.Context, reminders []*reminder.Reminder) error {
			return assert.AnError
		},
	}
	activityWritten := false
	activityRepo := &mockActivityRepository{
		AppendFunc: func(ctx context.Context, e *activity.Entry) error {
			activityWritten = true
			return nil
		},
	}

	uc := newBatchNoteUseCase(invoiceRepo, &mockAssignmentRepository{}, &mockMemoRepository{}, reminderRepo, activityRepo)

	_, err := uc.Execute(context.Background(), BatchNoteCommand{
		InvoiceRefs:  []string{"INV-1"},
		NoteText:     "note",
		WithReminder: true,
		ReminderDate: "2025-02-14",
		ReminderTime: "09:30",
		CreatedBy:    7,
	})
	require.Error(t, err)
	assert.False(t, activityWritten, "failed reminder write aborts the whole batch")
}

func TestBatchNote_Validation(t *testing.T) {
	uc := newBatchNoteUseCase(&mockInvoiceRepository{}, &mockAssignmentRepository{}, &mockMemoRepository{}, &mockReminderRepository{}, &mockActivityRepository{})

	tests := []struct {
		name string
		cmd  BatchNoteCommand
	}{
		{name: "empty selection", cmd: BatchNoteCommand{NoteText: "note", CreatedBy: 7}},
		{name: "blank note", cmd: BatchNoteCommand{InvoiceRefs: []string{"INV-1"}, NoteText: "  ", CreatedBy: 7}},
		{name: "reminder missing date", cmd: BatchNoteCommand{InvoiceRefs: []string{"INV-1"}, NoteText: "note", WithReminder: true, ReminderTime: "09:30", CreatedBy: 7}},
		{name: "reminder missing time", cmd: BatchNoteCommand{InvoiceRefs: []string{"INV-1"}, NoteText: "note", WithReminder: true, ReminderDate: "2025-02-14", CreatedBy: 7}},
		{name: "missing user", cmd: BatchNoteCommand{InvoiceRefs: []string{"INV-1"}, NoteText: "note"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestBatchNote_BadTimestampRejected(t *testing.T) {
	uc := newBatchNoteUseCase(&mockInvoiceRepository{}, &mockAssignmentRepository{}, &mockMemoRepository{}, &mockReminderRepository{}, &mockActivityRepository{})

	_, err := uc.Execute(context.Background(), BatchNoteCommand{
		InvoiceRefs:  []string{"INV-1"},
		NoteText:     "note",
		WithReminder: true,
		ReminderDate: "14.02.2025",
		ReminderTime: "09:30",
		CreatedBy:    7,
	})
	assert.True(t, errors.IsValidationError(err))
}
