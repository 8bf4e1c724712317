package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/at-ishikawa/vocup/internal/dictionary/rapidapi"
	"github.com/at-ishikawa/vocup/internal/inference"
	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

//go:generate mockgen -source=autofill.go -destination=../mocks/editor/mock_autofill.go -package=mock_editor

// Autofiller completes empty hint fields of an entry.
// On failure it still returns the entry with whatever it could fill.
type Autofiller interface {
	Autofill(ctx context.Context, entry vocabulary.Entry) (vocabulary.Entry, error)
}

// DictionaryLookuper looks a word up in a dictionary.
type DictionaryLookuper interface {
	Lookup(ctx context.Context, expression string) (rapidapi.Response, error)
}

// DictionaryAutofiller fills the transcription and examples from a dictionary.
type DictionaryAutofiller struct {
	lookuper    DictionaryLookuper
	maxExamples int
}

// NewDictionaryAutofiller creates a DictionaryAutofiller keeping at most maxExamples examples.
func NewDictionaryAutofiller(lookuper DictionaryLookuper, maxExamples int) *DictionaryAutofiller {
	return &DictionaryAutofiller{
		lookuper:    lookuper,
		maxExamples: maxExamples,
	}
}

func (a *DictionaryAutofiller) Autofill(ctx context.Context, entry vocabulary.Entry) (vocabulary.Entry, error) {
	if entry.Transcription != "" && entry.Examples != "" {
		return entry, nil
	}

	response, err := a.lookuper.Lookup(ctx, strings.ToLower(entry.Original))
	if err != nil {
		return entry, fmt.Errorf("lookuper.Lookup(%s) > %w", entry.Original, err)
	}
	if entry.Transcription == "" {
		entry.Transcription = response.Pronunciation.All
	}
	if entry.Examples == "" {
		entry.Examples = strings.Join(response.Examples(a.maxExamples), "\n")
	}
	return entry, nil
}

// TranslationAutofiller fills the translation with a machine translation.
type TranslationAutofiller struct {
	client         inference.Client
	targetLanguage string
}

// NewTranslationAutofiller creates a TranslationAutofiller translating into targetLanguage.
func NewTranslationAutofiller(client inference.Client, targetLanguage string) *TranslationAutofiller {
	return &TranslationAutofiller{
		client:         client,
		targetLanguage: targetLanguage,
	}
}

func (a *TranslationAutofiller) Autofill(ctx context.Context, entry vocabulary.Entry) (vocabulary.Entry, error) {
	if entry.Translation != "" {
		return entry, nil
	}

	response, err := a.client.Translate(ctx, inference.TranslateRequest{
		Expression:     entry.Original,
		Examples:       entry.ExampleLines(),
		TargetLanguage: a.targetLanguage,
	})
	if err != nil {
		return entry, fmt.Errorf("client.Translate(%s) > %w", entry.Original, err)
	}
	entry.Translation = response.Translation
	if entry.Transcription == "" {
		entry.Transcription = response.Transcription
	}
	return entry, nil
}

// Autofillers runs several autofillers in order. A failing one is skipped
// and the remaining ones still run; the failures are joined.
type Autofillers []Autofiller

func (fillers Autofillers) Autofill(ctx context.Context, entry vocabulary.Entry) (vocabulary.Entry, error) {
	var errs []error
	for _, filler := range fillers {
		filled, err := filler.Autofill(ctx, entry)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entry = filled
	}
	return entry, errors.Join(errs...)
}
