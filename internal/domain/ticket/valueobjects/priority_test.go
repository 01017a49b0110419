package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPriority(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Priority
		wantErr bool
	}{
		{name: "low", input: "low", want: PriorityLow},
		{name: "medium", input: "medium", want: PriorityMedium},
		{name: "high", input: "high", want: PriorityHigh},
		{name: "urgent", input: "urgent", want: PriorityUrgent},
		{name: "invalid", input: "critical", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPriority(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriority_IsUrgent(t *testing.T) {
	assert.True(t, PriorityUrgent.IsUrgent())
	assert.False(t, PriorityHigh.IsUrgent())
}

func TestNewTicketType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TicketType
		wantErr bool
	}{
		{name: "overdue payment", input: "overdue_payment", want: TypeOverduePayment},
		{name: "partial payment", input: "partial_payment", want: TypePartialPayment},
		{name: "chargeback", input: "chargeback", want: TypeChargeback},
		{name: "settlement", input: "settlement", want: TypeSettlement},
		{name: "invalid", input: "refund", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTicketType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
