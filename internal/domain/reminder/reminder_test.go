package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReminder(t *testing.T) {
	remindAt := time.Now().Add(24 * time.Hour)
	r, err := NewReminder("INV-1", nil, 7, "Follow up INV-1", "call customer", remindAt, true)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, r.Status())
	assert.Nil(t, r.TriggeredAt())
	assert.Equal(t, "INV-1", r.InvoiceRef())
	assert.True(t, r.SendEmail())
}

func TestNewReminder_Validation(t *testing.T) {
	remindAt := time.Now().Add(time.Hour)

	_, err := NewReminder("", nil, 7, "title", "", remindAt, false)
	assert.Error(t, err)

	_, err = NewReminder("INV-1", nil, 7, "  ", "", remindAt, false)
	assert.Error(t, err)

	_, err = NewReminder("INV-1", nil, 7, "title", "", time.Time{}, false)
	assert.Error(t, err)
}

func TestReminder_IsDue(t *testing.T) {
	now := time.Now()
	r, err := NewReminder("INV-1", nil, 7, "title", "", now.Add(-time.Minute), false)
	require.NoError(t, err)

	assert.True(t, r.IsDue(now))
	assert.False(t, r.IsDue(now.Add(-2*time.Minute)))
}

func TestReminder_MarkTriggered(t *testing.T) {
	r, err := NewReminder("INV-1", nil, 7, "title", "", time.Now(), false)
	require.NoError(t, err)

	require.NoError(t, r.MarkTriggered())
	assert.Equal(t, StatusTriggered, r.Status())
	require.NotNil(t, r.TriggeredAt())

	err = r.MarkTriggered()
	assert.Error(t, err)

	assert.False(t, r.IsDue(time.Now().Add(time.Hour)))
}
