package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
)

// Provider error classes. Handlers map these to user-facing failures;
// transient errors are retried before surfacing.
var (
	ErrTransient = errors.New("transient provider error")
	ErrFatal     = errors.New("fatal provider error")
)

// OpenRouterEndpoint is the chat completions endpoint of the model gateway.
const OpenRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// DefaultModels is the fallback order, best writing quality first.
var DefaultModels = []string{
	"anthropic/claude-3.5-sonnet",
	"openai/gpt-4-turbo",
	"google/gemini-2.5-pro-exp-03-25",
	"meta-llama/llama-4-scout",
}

// CompleteParams are the sampling parameters for one completion call.
type CompleteParams struct {
	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// OpenRouterFacade sends chat completions to OpenRouter, falling back
// through a model list and retrying transient failures with backoff.
type OpenRouterFacade struct {
	client      *http.Client
	apiKey      string
	endpoint    string
	models      []string
	maxAttempts int
	backoff     time.Duration
}

// NewOpenRouterFacade creates a facade with the default endpoint and model list.
func NewOpenRouterFacade(apiKey string) *OpenRouterFacade {
	return &OpenRouterFacade{
		client:      &http.Client{Timeout: 60 * time.Second},
		apiKey:      apiKey,
		endpoint:    OpenRouterEndpoint,
		models:      DefaultModels,
		maxAttempts: 2,
		backoff:     500 * time.Millisecond,
	}
}

// NewOpenRouterFacadeWithEndpoint creates a facade against a custom endpoint,
// used by tests.
func NewOpenRouterFacadeWithEndpoint(apiKey, endpoint string, models []string) *OpenRouterFacade {
	f := NewOpenRouterFacade(apiKey)
	f.endpoint = endpoint
	if len(models) > 0 {
		f.models = models
	}
	f.backoff = 0
	return f
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	MaxTokens        int           `json:"max_tokens"`
	Temperature      float64       `json:"temperature"`
	TopP             float64       `json:"top_p"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
	PresencePenalty  float64       `json:"presence_penalty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompts through the model fallback list and returns the
// generated text. Transient failures (timeouts, rate limits, 5xx) are retried
// with bounded backoff per model; fatal failures (bad credentials, malformed
// request) propagate immediately.
func (f *OpenRouterFacade) Complete(ctx context.Context, systemPrompt, userPrompt string, params CompleteParams) (string, error) {
	if f.apiKey == "" {
		return "", fmt.Errorf("%w: OPENROUTER_API_KEY is not configured", ErrFatal)
	}

	var lastErr error
	for _, model := range f.models {
		for attempt := 0; attempt < f.maxAttempts; attempt++ {
			if attempt > 0 {
				select {
				case <-ctx.Done():
					return "", fmt.Errorf("%w: %v", ErrTransient, ctx.Err())
				case <-time.After(f.backoff * time.Duration(attempt)):
				}
			}

			text, err := f.complete(ctx, model, systemPrompt, userPrompt, params)
			if err == nil {
				return text, nil
			}
			if errors.Is(err, ErrFatal) {
				return "", err
			}

			logger.Log.Warnw("completion attempt failed", "model", model, "attempt", attempt, "error", err)
			lastErr = err
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("%w: no models configured", ErrTransient)
	}
	return "", lastErr
}

func (f *OpenRouterFacade) complete(ctx context.Context, model, systemPrompt, userPrompt string, params CompleteParams) (string, error) {
	payload := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:        params.MaxTokens,
		Temperature:      params.Temperature,
		TopP:             params.TopP,
		FrequencyPenalty: params.FrequencyPenalty,
		PresencePenalty:  params.PresencePenalty,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFatal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFatal, err)
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "https://linky-app.local")
	req.Header.Set("X-Title", "Linky Content Generator")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransient, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusBadRequest:
		return "", fmt.Errorf("%w: status %d from %s", ErrFatal, resp.StatusCode, model)
	default:
		// 429 and 5xx are retryable
		return "", fmt.Errorf("%w: status %d from %s", ErrTransient, resp.StatusCode, model)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransient, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransient, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices from %s", ErrTransient, model)
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
