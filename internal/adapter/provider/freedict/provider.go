package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/viovio/internal/provider"
)

// DefaultBaseURL is the public dictionaryapi.dev endpoint for English words.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

const retryDelay = 500 * time.Millisecond

// Provider fetches pronunciation data from the free dictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty baseURL selects DefaultBaseURL.
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "freedict"),
	}
}

// FetchPronunciation looks up the transcription and audio of word.
// The word is queried in lowercase. Returns nil, nil if the word is not
// found (HTTP 404) or the response carries no phonetic data.
func (p *Provider) FetchPronunciation(ctx context.Context, word string) (*provider.Pronunciation, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	resp, err := p.doWithRetry(ctx, reqURL, word)
	if err != nil {
		p.log.WarnContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}

	result := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Bool("found", result != nil),
	)

	return result, nil
}

// doWithRetry executes a GET with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, reqURL, word string) (*http.Response, error) {
	resp, err := p.get(ctx, reqURL)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "freedict retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return p.get(ctx, reqURL)
}

func (p *Provider) get(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return p.httpClient.Do(req)
}

// mapAPIResponse picks the pronunciation of the first entry: the first
// phonetic that has text and the first that has audio. The entry-level
// phonetic field is the fallback for the transcription.
func mapAPIResponse(entries []apiEntry) *provider.Pronunciation {
	if len(entries) == 0 {
		return nil
	}
	entry := entries[0]

	var pron provider.Pronunciation
	for _, ph := range entry.Phonetics {
		if pron.Transcription == "" && ph.Text != "" {
			pron.Transcription = ph.Text
		}
		if pron.AudioURL == nil && ph.Audio != "" {
			a := ph.Audio
			pron.AudioURL = &a
			pron.Region = inferRegion(a)
		}
	}
	if pron.Transcription == "" {
		pron.Transcription = entry.Phonetic
	}

	if pron.Transcription == "" && pron.AudioURL == nil {
		return nil
	}
	return &pron
}

// inferRegion attempts to determine the pronunciation region from the audio URL.
func inferRegion(audioURL string) *string {
	lower := strings.ToLower(audioURL)
	if strings.Contains(lower, "-us.") || strings.Contains(lower, "-us-") {
		r := "US"
		return &r
	}
	if strings.Contains(lower, "-uk.") || strings.Contains(lower, "-uk-") {
		r := "UK"
		return &r
	}
	return nil
}
