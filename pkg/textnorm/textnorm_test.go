package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "lower-cases",
			input: "Apple Juice",
			want:  "apple juice",
		},
		{
			name:  "strips punctuation",
			input: "I want milk, please!",
			want:  "i want milk please",
		},
		{
			name:  "collapses whitespace runs",
			input: "  whole   wheat \t bread  ",
			want:  "whole wheat bread",
		},
		{
			name:  "punctuation only",
			input: " ?!. ",
			want:  "",
		},
		{
			name:  "keeps digits and underscores",
			input: "Cola_330ml (6-pack)",
			want:  "cola_330ml 6pack",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Milk!",
		"  Orange   JUICE, 1L. ",
		"already clean",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "Clean must be idempotent for %q", in)
	}
}
