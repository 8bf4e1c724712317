package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/vocup/internal/testutil"
	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNewValidateCommand(t *testing.T) {
	cmd := newValidateCommand()

	assert.Equal(t, "validate", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestDisplayProblems(t *testing.T) {
	tests := []struct {
		name     string
		problems []vocabulary.Problem
		want     []string
	}{
		{
			name: "no problems",
			want: []string{"All 3 entries are valid!"},
		},
		{
			name: "blank original",
			problems: []vocabulary.Problem{
				{Kind: vocabulary.ProblemBlankOriginal, Index: 1, Message: "original is empty"},
			},
			want: []string{"blank original (1):", "  - entry 1: original is empty", "Total problems: 1"},
		},
		{
			name: "duplicates are grouped",
			problems: []vocabulary.Problem{
				{Kind: vocabulary.ProblemDuplicate, Index: 1, Message: `"Hello" duplicates entry 0`},
				{Kind: vocabulary.ProblemBlankOriginal, Index: 2, Message: "original is empty"},
			},
			want: []string{"blank original (1):", "duplicate (1):", `entry 1: "Hello" duplicates entry 0`, "Total problems: 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			displayProblems(&buf, 3, tt.problems)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		entries []vocabulary.Entry
		want    string
		wantErr bool
	}{
		{
			name:    "valid data",
			entries: testutil.SampleEntries(),
			want:    "All 3 entries are valid!",
		},
		{
			name: "invalid data",
			entries: []vocabulary.Entry{
				{Original: "hello"},
				{Original: "HELLO"},
				{Original: " "},
			},
			want:    "Total problems: 2",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := testutil.SetupTestConfig(t, tmpDir)
			testutil.CreateDataFile(t, tmpDir, tt.entries...)

			out, err := runCommand(t, "--config", configPath, "validate")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, out, tt.want)
		})
	}
}
