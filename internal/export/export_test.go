package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/vocup/internal/assets"
	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

func newTestExporter(t *testing.T) *Exporter {
	t.Helper()
	tmpl, err := assets.ParseVocabularyTemplate("")
	require.NoError(t, err)
	return NewExporter(tmpl)
}

var testData = assets.VocabularyTemplate{
	Title: "Vocabulary",
	Entries: []vocabulary.Entry{
		{Original: "hello", Translation: "привет", Transcription: "həˈləʊ", Examples: "Hello, world\nShe said hello."},
		{Original: "apple", Translation: "яблоко"},
	},
}

func TestFormat_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    Format
		wantErr bool
	}{
		{value: "yaml", want: FormatYAML},
		{value: "Markdown", want: FormatMarkdown},
		{value: "pdf", want: FormatPDF},
		{value: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var got Format
			err := got.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, string(tt.want), got.String())
			assert.Equal(t, "format", got.Type())
		})
	}
}

func TestExporter_Write(t *testing.T) {
	t.Run("yaml keeps every field", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTestExporter(t).Write(&buf, FormatYAML, testData))

		var got []vocabulary.Entry
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, testData.Entries, got)
		assert.Contains(t, buf.String(), "- original: hello\n")
	})

	t.Run("yaml of no entries is an empty list", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTestExporter(t).Write(&buf, FormatYAML, assets.VocabularyTemplate{}))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTestExporter(t).Write(&buf, FormatMarkdown, testData))
		assert.Contains(t, buf.String(), "# Vocabulary\n")
		assert.Contains(t, buf.String(), "## 1. hello\n")
		assert.Contains(t, buf.String(), "- She said hello.\n")
		assert.Contains(t, buf.String(), "## 2. apple\n")
	})

	t.Run("pdf needs a file", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, newTestExporter(t).Write(&buf, FormatPDF, testData))
	})
}

func TestExporter_WriteFile(t *testing.T) {
	tests := []struct {
		format     Format
		wantPrefix string
	}{
		{format: FormatYAML, wantPrefix: "- original: hello"},
		{format: FormatMarkdown, wantPrefix: "# Vocabulary"},
		{format: FormatPDF, wantPrefix: "%PDF"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			data := testData
			if tt.format == FormatPDF {
				// the core PDF fonts only cover Latin-1
				data.Entries = []vocabulary.Entry{{Original: "hello", Translation: "a greeting"}}
			}

			path := filepath.Join(t.TempDir(), "outputs", "vocabulary"+tt.format.Extension())
			got, err := newTestExporter(t).WriteFile(path, tt.format, data)
			require.NoError(t, err)

			content, err := os.ReadFile(got)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(content, []byte(tt.wantPrefix)), "content: %s", content[:min(len(content), 40)])
		})
	}
}
