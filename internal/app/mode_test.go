package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode(t *testing.T) {
	tests := []struct {
		mode     Mode
		name     string
		captures bool
	}{
		{ModeBrowsing, "Browsing", false},
		{ModeSearching, "Searching", true},
		{ModeCreating, "Creating", true},
		{ModeEditing, "Editing", true},
		{ModeConfirmingDelete, "ConfirmingDelete", true},
		{ModeExiting, "Exiting", false},
		{Mode(99), "Unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.mode.String())
			assert.Equal(t, tt.captures, tt.mode.Captures())
		})
	}
}
