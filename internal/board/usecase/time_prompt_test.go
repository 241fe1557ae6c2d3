package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldPromptForTime(t *testing.T) {
	tests := []struct {
		name      string
		oldColumn string
		newColumn string
		want      bool
	}{
		{"progress to verifying", "In Progress", "Verifying", true},
		{"progress to done", "In Progress", "Done", true},
		{"case insensitive", "in progress", "VERIFYING", true},
		{"partial column names", "Dev Progress", "Verifying QA", true},
		{"progress to other column", "In Progress", "QA", false},
		{"todo to verifying", "Todo", "Verifying", false},
		{"no previous column", "", "Verifying", false},
		{"no target column", "In Progress", "", false},
		{"todo to done", "Todo", "Done", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldPromptForTime(tt.oldColumn, tt.newColumn))
		})
	}
}
