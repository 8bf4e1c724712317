// Package assets holds the embedded templates used to export vocabulary.
package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

const vocabularyTemplateName = "vocabulary.md.go.tmpl"

//go:embed templates/vocabulary.md.go.tmpl
var fallbackVocabularyTemplate string

// VocabularyTemplate is the data rendered by the markdown template.
type VocabularyTemplate struct {
	Title   string
	Entries []vocabulary.Entry
}

// ParseVocabularyTemplate parses the template at templatePath, or the embedded
// one when the path is empty, missing, or invalid.
func ParseVocabularyTemplate(templatePath string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"inc": func(i int) int {
			return i + 1
		},
	}

	if templatePath != "" {
		tmpl, err := template.New(filepath.Base(templatePath)).
			Funcs(funcMap).
			ParseFiles(templatePath)
		if err == nil {
			return tmpl, nil
		}
		if !os.IsNotExist(err) {
			slog.Default().Warn("failed to parse a template, using the embedded one",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(vocabularyTemplateName).
		Funcs(funcMap).
		Parse(fallbackVocabularyTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
