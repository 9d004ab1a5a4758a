// Package anthropic generates vocabulary definitions with the Claude
// Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/internal/provider"
)

// Provider sends the shared definition prompt as a single user message.
type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewProvider creates a Provider. Extra request options are appended after
// the ones derived from cfg.
func NewProvider(cfg provider.GeneratorConfig, logger *slog.Logger, opts ...option.RequestOption) *Provider {
	base := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}
	return &Provider{
		client:    anthropic.NewClient(append(base, opts...)...),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		log:       logger.With("adapter", "anthropic"),
	}
}

// GenerateDefinition asks Claude for a definition of word and parses the
// answer strictly.
func (p *Provider) GenerateDefinition(ctx context.Context, word string) (*provider.Definition, error) {
	p.log.DebugContext(ctx, "anthropic request", slog.String("word", word), slog.String("model", p.model))

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(provider.DefinitionPrompt(word))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic: api call for %q: %w", word, err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("anthropic: %w: empty response for %q", domain.ErrMalformedResponse, word)
	}

	def, err := provider.ParseDefinition(msg.Content[0].Text)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}
	return def, nil
}
