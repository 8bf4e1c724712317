package dictionary

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileCache keeps one raw JSON response per looked-up word.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (cache *FileCache) filePath(word string) string {
	name := strings.ReplaceAll(strings.ToLower(word), string(filepath.Separator), "_")
	return filepath.Join(cache.rootDir, name+".json")
}

// cache returns the stored response for word, calling fetch and storing its
// result on a miss. A failed write still returns the fetched contents.
func (cache *FileCache) cache(word string, fetch func() ([]byte, error)) ([]byte, error) {
	contents, err := cache.read(word)
	if err == nil {
		slog.Default().Debug("dictionary cache hit", slog.String("word", word))
		return contents, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cache.read > %w", err)
	}

	contents, err = fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch(%s) > %w", word, err)
	}

	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return contents, fmt.Errorf("os.MkdirAll(%s) > %w", cache.rootDir, err)
	}
	if err := os.WriteFile(cache.filePath(word), contents, 0644); err != nil {
		return contents, fmt.Errorf("os.WriteFile > %w", err)
	}
	return contents, nil
}

func (cache *FileCache) read(word string) ([]byte, error) {
	contents, err := os.ReadFile(cache.filePath(word))
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}
	return contents, nil
}
