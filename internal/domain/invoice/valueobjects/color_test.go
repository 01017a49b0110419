package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "red", input: "red", want: ColorRed},
		{name: "yellow", input: "yellow", want: ColorYellow},
		{name: "green", input: "green", want: ColorGreen},
		{name: "invalid", input: "blue", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorNames(t *testing.T) {
	assert.Equal(t, []string{"red", "yellow", "green"}, ColorNames())
}
