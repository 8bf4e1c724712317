// Package dictionary looks words up in WordsAPI and caches the responses on disk.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/at-ishikawa/vocup/internal/dictionary/rapidapi"
	"github.com/go-resty/resty/v2"
)

type Reader struct {
	config    Config
	client    *resty.Client
	fileCache *FileCache
}

type Config struct {
	RapidAPIHost string
	RapidAPIKey  string
	// BaseURL overrides https://<RapidAPIHost>.
	BaseURL string
}

func NewReader(cacheDirectory string, config Config) *Reader {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://" + config.RapidAPIHost
	}
	return &Reader{
		config:    config,
		client:    resty.New().SetBaseURL(baseURL),
		fileCache: NewFileCache(cacheDirectory),
	}
}

func (r *Reader) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	res, err := r.client.R().
		SetContext(ctx).
		SetHeader("x-rapidapi-host", r.config.RapidAPIHost).
		SetHeader("x-rapidapi-key", r.config.RapidAPIKey).
		Get("/words/" + url.PathEscape(word))
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}

// Lookup returns the dictionary response for word, from the cache when possible.
func (r *Reader) Lookup(ctx context.Context, word string) (rapidapi.Response, error) {
	var resp rapidapi.Response
	contents, err := r.fileCache.cache(word, func() ([]byte, error) {
		return r.lookupAPI(ctx, word)
	})
	if err != nil {
		return resp, fmt.Errorf("fileCache.cache > %w", err)
	}
	if err := json.Unmarshal(contents, &resp); err != nil {
		return resp, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return resp, nil
}

// Show writes a human-readable summary of response.
func (r *Reader) Show(w io.Writer, response rapidapi.Response) error {
	_, err := io.WriteString(w, response.Summary())
	return err
}
