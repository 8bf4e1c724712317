// Package inference defines the machine-translation client used to suggest hints for new entries.
package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	Translate(ctx context.Context, params TranslateRequest) (TranslateResponse, error)
}

// TranslateRequest asks for a translation of one vocabulary expression
type TranslateRequest struct {
	Expression     string   `json:"expression"`
	Examples       []string `json:"examples,omitempty"`
	TargetLanguage string   `json:"target_language"`
}

// TranslateResponse is the suggested translation and pronunciation
type TranslateResponse struct {
	Expression    string `json:"expression"`
	Translation   string `json:"translation"`
	Transcription string `json:"transcription"`
}

const (
	DefaultMaxRetryAttempts = 3
)
