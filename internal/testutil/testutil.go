// Package testutil provides shared test helpers for creating config files and data fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

// SetupTestConfig creates a minimal config file pointing every path into tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"data", "dictionaries", "outputs"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`data:
  file: %s
storage:
  backend: json
dictionaries:
  rapidapi:
    cache_directory: %s
outputs:
  export_directory: %s
`,
		DataFilePath(tmpDir),
		filepath.Join(tmpDir, "dictionaries"),
		filepath.Join(tmpDir, "outputs"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DataFilePath returns where SetupTestConfig places the data file.
func DataFilePath(tmpDir string) string {
	return filepath.Join(tmpDir, "data", "data.json")
}

// CreateDataFile writes entries as the data file configured by SetupTestConfig.
func CreateDataFile(t *testing.T, tmpDir string, entries ...vocabulary.Entry) string {
	t.Helper()

	if entries == nil {
		entries = []vocabulary.Entry{}
	}
	content, err := vocabulary.MarshalJSON(entries)
	require.NoError(t, err)

	path := DataFilePath(tmpDir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

// SampleEntries returns a small list of entries used across command tests.
func SampleEntries() []vocabulary.Entry {
	return []vocabulary.Entry{
		{Original: "hello", Translation: "привет", Transcription: "həˈləʊ", Examples: "Hello, how are you?\nShe said hello."},
		{Original: "help", Translation: "помощь", Transcription: "help", Examples: "Can you help me?"},
		{Original: "pocket dictionary", Translation: "карманный словарь", Transcription: "ˈpɒkɪt ˈdɪkʃənəri", Examples: ""},
	}
}
