package vocabulary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRepository_Load(t *testing.T) {
	tests := []struct {
		name     string
		contents *string
		want     []Entry
		wantErr  error
	}{
		{
			name: "missing file yields empty list",
			want: []Entry{},
		},
		{
			name:     "reads entries in order",
			contents: ptr(`[{"original": "hello", "translation": "привет", "transcription": "həˈləʊ", "examples": "Hello!\nHello there."}, {"original": "help", "translation": "", "transcription": "", "examples": ""}]`),
			want: []Entry{
				{Original: "hello", Translation: "привет", Transcription: "həˈləʊ", Examples: "Hello!\nHello there."},
				{Original: "help"},
			},
		},
		{
			name:     "null document yields empty list",
			contents: ptr(`null`),
			want:     []Entry{},
		},
		{
			name:     "malformed document",
			contents: ptr(`[{"original": `),
			wantErr:  &DataParseError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data", "data.json")
			if tt.contents != nil {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
				require.NoError(t, os.WriteFile(path, []byte(*tt.contents), 0644))
			}

			got, err := NewJSONRepository(path).Load(context.Background())
			if tt.wantErr != nil {
				var parseErr *DataParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, path, parseErr.Path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONRepository_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "data.json")
	repository := NewJSONRepository(path)

	entries := []Entry{
		{Original: "hello", Translation: "привет", Transcription: "həˈləʊ", Examples: "Hello!\nA & B <c>"},
	}
	require.NoError(t, repository.Save(context.Background(), entries))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[
    {
        "original": "hello",
        "translation": "привет",
        "transcription": "həˈləʊ",
        "examples": "Hello!\nA & B <c>"
    }
]`, string(contents))
}

func TestJSONRepository_SaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, NewJSONRepository(path).Save(context.Background(), nil))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(contents))
}

func TestJSONRepository_SaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0644))

	err := NewJSONRepository(filepath.Join(blocker, "data.json")).Save(context.Background(), []Entry{{Original: "a"}})
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
}

func TestJSONRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	repository := NewJSONRepository(path)
	entries := []Entry{
		{Original: "pocket dictionary", Translation: "карманный словарь", Transcription: "ˈpɒkɪt ˈdɪkʃənəri", Examples: "I always carry a pocket dictionary."},
		{Original: "Hello", Translation: "こんにちは"},
		{Original: "help", Examples: "Help me!\n\nPlease help."},
	}

	require.NoError(t, repository.Save(context.Background(), entries))
	got, err := repository.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func ptr[T any](v T) *T {
	return &v
}
