package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateSourceRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CandidateSource
	}{
		{
			name:     "job portal with sub-option",
			input:    "Job Portal - Dice",
			expected: CandidateSource{Kind: "Job Portal", Detail: "Dice"},
		},
		{
			name:     "sourcing with person",
			input:    "Sourcing - Jane Smith",
			expected: CandidateSource{Kind: "Sourcing", Detail: "Jane Smith"},
		},
		{
			name:     "plain referral",
			input:    "Referral",
			expected: CandidateSource{Kind: "Referral"},
		},
		{
			name:     "empty",
			input:    "",
			expected: CandidateSource{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseCandidateSource(tt.input)
			assert.Equal(t, tt.expected, parsed)
			assert.Equal(t, tt.input, parsed.String())
		})
	}
}

func TestSourceNeedsDetail(t *testing.T) {
	assert.True(t, SourceNeedsDetail("Job Portal"))
	assert.True(t, SourceNeedsDetail("Social Media"))
	assert.True(t, SourceNeedsDetail("Sourcing"))
	assert.False(t, SourceNeedsDetail("Referral"))
	assert.False(t, SourceNeedsDetail(""))
}
