package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/vocup/internal/testutil"
)

func TestNewExportCommand(t *testing.T) {
	cmd := newExportCommand()

	assert.Equal(t, "export", cmd.Use)
	formatFlag := cmd.Flags().Lookup("format")
	if assert.NotNil(t, formatFlag) {
		assert.Equal(t, "markdown", formatFlag.DefValue)
		assert.Equal(t, "format", formatFlag.Value.Type())
	}
	assert.NotNil(t, cmd.Flags().Lookup("output"))
	assert.NotNil(t, cmd.Flags().Lookup("title"))
}

func TestExportCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOut  []string
		wantFile string
		wantBody []string
		wantErr  bool
	}{
		{
			name:    "markdown to stdout",
			args:    []string{"--output", "-"},
			wantOut: []string{"# Vocabulary", "## 1. hello", "**привет**", "- She said hello."},
		},
		{
			name:    "yaml to stdout",
			args:    []string{"--format", "YAML", "-o", "-", "--title", "ignored"},
			wantOut: []string{"- original: hello", "  translation: привет"},
		},
		{
			name:     "markdown to the export directory",
			args:     []string{"--title", "My words"},
			wantOut:  []string{"Exported 3 entries to "},
			wantFile: filepath.Join("outputs", "vocabulary.md"),
			wantBody: []string{"# My words", "## 3. pocket dictionary"},
		},
		{
			name:     "extension is appended",
			args:     []string{"-f", "yaml", "-o", "{{tmp}}/out/words"},
			wantFile: filepath.Join("out", "words.yml"),
			wantBody: []string{"original: help"},
		},
		{
			name:    "pdf can not be streamed",
			args:    []string{"--format", "pdf", "--output", "-"},
			wantErr: true,
		},
		{
			name:    "unknown format",
			args:    []string{"--format", "docx"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := testutil.SetupTestConfig(t, tmpDir)
			testutil.CreateDataFile(t, tmpDir, testutil.SampleEntries()...)

			args := []string{"--config", configPath, "export"}
			for _, arg := range tt.args {
				if arg == "{{tmp}}/out/words" {
					arg = filepath.Join(tmpDir, "out", "words")
				}
				args = append(args, arg)
			}
			out, err := runCommand(t, args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
			if tt.wantFile == "" {
				return
			}
			body, err := os.ReadFile(filepath.Join(tmpDir, tt.wantFile))
			require.NoError(t, err)
			for _, want := range tt.wantBody {
				assert.Contains(t, string(body), want)
			}
		})
	}
}

func TestExportConvertCommand(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr bool
	}{
		{
			name:    "converts markdown",
			file:    "words.md",
			content: "# Words\n\n## 1. hello\n",
		},
		{
			name:    "rejects other extensions",
			file:    "words.txt",
			content: "hello",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, tt.file)
			writeFile(t, path, tt.content)

			out, err := runCommand(t, "export", "convert", path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "PDF written to ")
			assert.FileExists(t, filepath.Join(tmpDir, "words.pdf"))
		})
	}
}
