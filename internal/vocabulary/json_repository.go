package vocabulary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const jsonIndent = "    "

// JSONRepository stores entries as an indented JSON array in a single file.
type JSONRepository struct {
	path string
}

// NewJSONRepository creates a JSONRepository for the file at path.
func NewJSONRepository(path string) *JSONRepository {
	return &JSONRepository{path: path}
}

// Path returns the data file path.
func (r *JSONRepository) Path() string {
	return r.path
}

// Load reads the data file. A missing file yields an empty list.
func (r *JSONRepository) Load(_ context.Context) ([]Entry, error) {
	contents, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, &IOError{Op: "read", Path: r.path, Err: err}
	}

	var entries []Entry
	if err := json.Unmarshal(contents, &entries); err != nil {
		return nil, &DataParseError{Path: r.path, Err: err}
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Save overwrites the data file with entries, creating parent directories as needed.
func (r *JSONRepository) Save(_ context.Context, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	contents, err := MarshalJSON(entries)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return &IOError{Op: "create directory for", Path: r.path, Err: err}
	}
	if err := os.WriteFile(r.path, contents, 0644); err != nil {
		return &IOError{Op: "write", Path: r.path, Err: err}
	}
	return nil
}

// MarshalJSON encodes entries with 4-space indentation and literal non-ASCII text.
func MarshalJSON(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", jsonIndent)
	if err := encoder.Encode(entries); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
