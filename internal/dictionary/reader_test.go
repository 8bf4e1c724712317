package dictionary

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/at-ishikawa/vocup/internal/dictionary/rapidapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Lookup(t *testing.T) {
	tests := []struct {
		name              string
		word              string
		cached            string
		handler           func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantPronunciation string
		wantExamples      []string
		wantErr           bool
	}{
		{
			name: "fetches from the API",
			word: "hello",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/words/hello", r.URL.Path)
				assert.Equal(t, "words.example.com", r.Header.Get("x-rapidapi-host"))
				assert.Equal(t, "secret", r.Header.Get("x-rapidapi-key"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"word": "hello", "pronunciation": {"all": "həˈloʊ"}, "results": [{"definition": "a greeting", "partOfSpeech": "noun", "examples": ["say hello"]}]}`))
			},
			wantPronunciation: "həˈloʊ",
			wantExamples:      []string{"say hello"},
		},
		{
			name:   "serves from the cache",
			word:   "hello",
			cached: `{"word": "hello", "pronunciation": "hɛˈloʊ"}`,
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				t.Error("unexpected API call")
			},
			wantPronunciation: "hɛˈloʊ",
		},
		{
			name: "API error",
			word: "nonexistentword",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"success": false, "message": "word not found"}`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.handler(t, w, r)
			}))
			defer server.Close()

			cacheDir := t.TempDir()
			reader := NewReader(cacheDir, Config{
				RapidAPIHost: "words.example.com",
				RapidAPIKey:  "secret",
				BaseURL:      server.URL,
			})
			if tt.cached != "" {
				require.NoError(t, os.WriteFile(reader.fileCache.filePath(tt.word), []byte(tt.cached), 0644))
			}

			got, err := reader.Lookup(context.Background(), tt.word)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPronunciation, got.Pronunciation.All)
			assert.Equal(t, tt.wantExamples, got.Examples(0))
		})
	}
}

func TestReader_Show(t *testing.T) {
	reader := NewReader(t.TempDir(), Config{RapidAPIHost: "words.example.com"})
	var buf bytes.Buffer

	err := reader.Show(&buf, rapidapi.Response{
		Word:    "run",
		Results: []rapidapi.Result{{PartOfSpeech: "verb", Definition: "move fast"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "run\n1: [verb] move fast\n", buf.String())
}
