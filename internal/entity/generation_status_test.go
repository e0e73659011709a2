package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGenerationStatus(t *testing.T) {
	status, ok := ParseGenerationStatus("  GENERATING ")
	assert.True(t, ok)
	assert.Equal(t, GenerationStatusGenerating, status)

	_, ok = ParseGenerationStatus("queued")
	assert.False(t, ok)

	_, ok = ParseGenerationStatus("")
	assert.False(t, ok)
}

func TestGenerationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from GenerationStatus
		to   GenerationStatus
		want bool
	}{
		{GenerationStatusPending, GenerationStatusGenerating, true},
		{GenerationStatusPending, GenerationStatusFailed, true},
		{GenerationStatusGenerating, GenerationStatusSucceeded, true},
		{GenerationStatusGenerating, GenerationStatusPending, true},
		{GenerationStatusSucceeded, GenerationStatusPending, true},
		{GenerationStatusSucceeded, GenerationStatusFailed, false},
		{GenerationStatusFailed, GenerationStatusSucceeded, false},
		{GenerationStatusFailed, GenerationStatusGenerating, true},
		{GenerationStatusSucceeded, GenerationStatusSucceeded, true},
		{GenerationStatus("queued"), GenerationStatusSucceeded, true},
		{GenerationStatusPending, GenerationStatus("queued"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestGenerationStatus_IsTerminal(t *testing.T) {
	assert.True(t, GenerationStatusSucceeded.IsTerminal())
	assert.True(t, GenerationStatusFailed.IsTerminal())
	assert.False(t, GenerationStatusPending.IsTerminal())
	assert.False(t, GenerationStatusGenerating.IsTerminal())
}
