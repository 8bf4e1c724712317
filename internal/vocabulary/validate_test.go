package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    []Problem
	}{
		{
			name:    "valid entries",
			entries: []Entry{{Original: "hello"}, {Original: "help"}},
		},
		{
			name:    "no entries",
			entries: nil,
		},
		{
			name:    "blank original",
			entries: []Entry{{Original: "hello"}, {Original: "  ", Translation: "пусто"}},
			want: []Problem{
				{Kind: ProblemBlankOriginal, Index: 1, Message: "original is empty"},
			},
		},
		{
			name:    "case-insensitive duplicate",
			entries: []Entry{{Original: "Hello"}, {Original: "help"}, {Original: "hello "}},
			want: []Problem{
				{Kind: ProblemDuplicate, Index: 2, Message: `"hello" duplicates entry 0`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.entries))
		})
	}
}
