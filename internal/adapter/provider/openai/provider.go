// Package openai generates vocabulary definitions with any OpenAI-compatible
// chat completions endpoint.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/internal/provider"
)

const systemPrompt = "You are a vocabulary tutor backend. Answer with a single JSON object."

// Provider requests a JSON-object chat completion for every word.
type Provider struct {
	client    *openai.Client
	model     string
	maxTokens int
	log       *slog.Logger
}

// NewProvider creates a Provider. A nil httpClient keeps the library default.
func NewProvider(cfg provider.GeneratorConfig, httpClient *http.Client, logger *slog.Logger) *Provider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	if httpClient != nil {
		config.HTTPClient = httpClient
	}
	return &Provider{
		client:    openai.NewClientWithConfig(config),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "openai"),
	}
}

// GenerateDefinition asks the model for a definition of word and parses the
// answer strictly.
func (p *Provider) GenerateDefinition(ctx context.Context, word string) (*provider.Definition, error) {
	p.log.DebugContext(ctx, "openai request", slog.String("word", word), slog.String("model", p.model))

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: provider.DefinitionPrompt(word)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: chat completion for %q: %w", word, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: %w: no choices for %q", domain.ErrMalformedResponse, word)
	}

	def, err := provider.ParseDefinition(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	return def, nil
}
