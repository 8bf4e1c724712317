package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/vocup/internal/inference"
	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const defaultBaseURL = "https://api.openai.com/v1"

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// incomplete responses
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// 5xx and rate limiting
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

// Translate implements the inference.Client interface
func (client *Client) Translate(
	ctx context.Context,
	params inference.TranslateRequest,
) (inference.TranslateResponse, error) {
	var result inference.TranslateResponse
	if err := retry.Do(
		func() error {
			response, err := client.translate(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				slog.Default().Warn("retrying a translation",
					"expression", params.Expression,
					"error", err)
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.TranslateResponse{}, err
	}
	return result, nil
}

func (client *Client) getRequestBody(args inference.TranslateRequest) (ChatCompletionRequest, error) {
	systemPrompt := fmt.Sprintf(`You are a bilingual dictionary for language learners.

Translate the given expression into %s.
Use the examples, when given, to pick the sense the learner needs.

Return ONLY a JSON object:
{"expression": "<expression as given>", "translation": "<short translation>", "transcription": "<IPA pronunciation of the expression, without slashes>"}

Keep the translation short: a word or a comma-separated list of at most three alternatives.
No text outside the JSON.`, args.TargetLanguage)

	userContent, err := json.Marshal(args)
	if err != nil {
		return ChatCompletionRequest{}, fmt.Errorf("json.Marshal > %w", err)
	}

	return ChatCompletionRequest{
		Model: client.model,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: string(userContent)},
		},
		Temperature: 0.2,
	}, nil
}

func (client *Client) translate(
	ctx context.Context,
	args inference.TranslateRequest,
) (inference.TranslateResponse, error) {
	if strings.TrimSpace(args.Expression) == "" {
		return inference.TranslateResponse{}, fmt.Errorf("expression is empty")
	}

	requestBody, err := client.getRequestBody(args)
	if err != nil {
		return inference.TranslateResponse{}, fmt.Errorf("getRequestBody > %w", err)
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.TranslateResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.TranslateResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return inference.TranslateResponse{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return inference.TranslateResponse{}, fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"request", requestBody,
		"response", responseBody,
	)

	var decoded inference.TranslateResponse
	if err := json.Unmarshal([]byte(extractJSONObject(content)), &decoded); err != nil {
		return inference.TranslateResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	if decoded.Expression == "" {
		decoded.Expression = args.Expression
	}
	decoded.Transcription = strings.Trim(decoded.Transcription, "/")
	return decoded, nil
}

// extractJSONObject returns the first complete top-level JSON object in content,
// dropping any text or code fences around it.
func extractJSONObject(content string) string {
	start := -1
	depth := 0
	inString := false
	escapeNext := false

	for i, ch := range content {
		if escapeNext {
			escapeNext = false
			continue
		}
		if ch == '\\' && inString {
			escapeNext = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			if start == -1 {
				start = i
			}
			depth++
		case '}':
			if start == -1 {
				continue
			}
			depth--
			if depth == 0 {
				return content[start : i+1]
			}
		}
	}
	return content
}
