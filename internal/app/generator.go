package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/viovio/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/viovio/internal/adapter/provider/gemini"
	"github.com/heartmarshall/viovio/internal/adapter/provider/openai"
	"github.com/heartmarshall/viovio/internal/config"
	"github.com/heartmarshall/viovio/internal/provider"
)

type definitionGenerator interface {
	GenerateDefinition(ctx context.Context, word string) (*provider.Definition, error)
}

// newGenerator builds the definition generator selected by cfg.Provider.
func newGenerator(cfg config.LLMConfig, logger *slog.Logger) (definitionGenerator, error) {
	gc := provider.GeneratorConfig{
		APIKey:    cfg.APIKey,
		Model:     cfg.DefaultModel(),
		BaseURL:   cfg.BaseURL,
		MaxTokens: cfg.MaxTokens,
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case config.LLMProviderGemini:
		return gemini.NewProvider(gc, httpClient, logger), nil
	case config.LLMProviderAnthropic:
		return anthropic.NewProvider(gc, logger, option.WithRequestTimeout(cfg.Timeout)), nil
	case config.LLMProviderOpenAI:
		return openai.NewProvider(gc, httpClient, logger), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
