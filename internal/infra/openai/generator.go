package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"slopbowl-service/internal/app"
	"slopbowl-service/internal/domain"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultTemperature = 1.2
	defaultMaxTokens   = 300
	defaultTimeout     = 20 * time.Second
)

// Config holds the generation-service settings. BaseURL is overridable for
// tests and proxies.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// Generator calls the OpenAI chat-completions API and parses the reply into a
// roast triple. It implements app.Generator; every failure surfaces as an
// error for the service layer to downgrade to the static fallback.
type Generator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

func NewGenerator(cfg Config) *Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Generator{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
	}
}

func (g *Generator) Generate(ctx context.Context, req app.GenerateRequest) (domain.Roast, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(req),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		return domain.Roast{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.Roast{}, domain.ErrEmptyCompletion
	}
	return parseRoast(req.Category, resp.Choices[0].Message.Content)
}

// parseRoast decodes the model reply into the three required fields. A reply
// missing any field is treated as a failed call, never a partial result.
func parseRoast(category domain.Category, content string) (domain.Roast, error) {
	blob, err := extractJSONObject(content)
	if err != nil {
		return domain.Roast{}, fmt.Errorf("extract roast json: %w", err)
	}

	var out struct {
		Roast        string `json:"roast"`
		SecretWeapon string `json:"secretWeapon"`
		Blurb        string `json:"blurb"`
	}
	if err := json.Unmarshal([]byte(blob), &out); err != nil {
		return domain.Roast{}, fmt.Errorf("parse roast json: %w", err)
	}

	roast := domain.Roast{
		Category:     category,
		Roast:        strings.TrimSpace(out.Roast),
		SecretWeapon: strings.TrimSpace(out.SecretWeapon),
		Blurb:        strings.TrimSpace(out.Blurb),
	}
	if roast.Roast == "" || roast.SecretWeapon == "" || roast.Blurb == "" {
		return domain.Roast{}, domain.ErrIncompleteRoast
	}
	return roast, nil
}

// extractJSONObject pulls the first balanced JSON object out of the reply,
// tolerating markdown fences or prose around it.
func extractJSONObject(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.ErrEmptyCompletion
	}

	start := strings.Index(raw, "{")
	if start < 0 {
		return "", fmt.Errorf("no json object start found")
	}

	inString := false
	escape := false
	depth := 0
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unterminated json object")
}
