// Package export writes the vocabulary as YAML, markdown, or PDF documents.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/vocup/internal/assets"
	"github.com/at-ishikawa/vocup/internal/pdf"
	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

// Format is an export format. It implements pflag.Value.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

var formats = []Format{FormatYAML, FormatMarkdown, FormatPDF}

func (f *Format) String() string {
	return string(*f)
}

func (f *Format) Set(value string) error {
	for _, format := range formats {
		if strings.EqualFold(value, string(format)) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q: must be one of yaml, markdown, pdf", value)
}

func (f *Format) Type() string {
	return "format"
}

// Extension returns the file extension including the leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yml"
	case FormatMarkdown:
		return ".md"
	case FormatPDF:
		return ".pdf"
	}
	return ""
}

// Exporter renders entries in every supported format.
type Exporter struct {
	markdown *template.Template
}

// NewExporter creates an Exporter rendering markdown with markdownTemplate.
func NewExporter(markdownTemplate *template.Template) *Exporter {
	return &Exporter{
		markdown: markdownTemplate,
	}
}

// Write renders data to w. PDF is only written to files.
func (e *Exporter) Write(w io.Writer, format Format, data assets.VocabularyTemplate) error {
	switch format {
	case FormatYAML:
		return writeYAML(w, data.Entries)
	case FormatMarkdown:
		if err := e.markdown.Execute(w, data); err != nil {
			return fmt.Errorf("markdown.Execute() > %w", err)
		}
		return nil
	}
	return fmt.Errorf("format %q can not be written to a stream", format)
}

// WriteFile renders data to path and returns the written file path.
func (e *Exporter) WriteFile(path string, format Format, data assets.VocabularyTemplate) (string, error) {
	if format == FormatPDF {
		var markdown bytes.Buffer
		if err := e.Write(&markdown, FormatMarkdown, data); err != nil {
			return "", err
		}
		written, err := pdf.Render(markdown.Bytes(), path)
		if err != nil {
			return "", fmt.Errorf("pdf.Render(%s) > %w", path, err)
		}
		return written, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := e.Write(file, format, data); err != nil {
		return "", err
	}
	return path, nil
}

func writeYAML(w io.Writer, entries []vocabulary.Entry) error {
	if entries == nil {
		entries = []vocabulary.Entry{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("yaml.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("yaml.Close() > %w", err)
	}
	return nil
}
