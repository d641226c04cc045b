package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/minhngo/englishpal-backend/internal/provider"
)

// Provider fetches word data from the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the given base URL
// (https://api.dictionaryapi.dev/api/v2/entries/en in production, an
// httptest server in tests).
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "freedict"),
	}
}

// Lookup fetches dictionary data for the given word.
// Returns nil, nil if the word is not found (HTTP 404).
func (p *Provider) Lookup(ctx context.Context, word string) (*provider.DictionaryResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
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
		slog.Int("status", resp.StatusCode),
		slog.Int("definitions", len(result.Definitions)),
	)

	return result, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

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

	time.Sleep(500 * time.Millisecond)

	resp, err = p.httpClient.Do(req)
	return resp, err
}

// mapAPIResponse converts the API entries into a provider.DictionaryResult.
// Multiple entries (different etymologies) are merged: definitions are
// concatenated, and the first phonetic with text (and the first with audio)
// win.
func mapAPIResponse(entries []apiEntry) *provider.DictionaryResult {
	result := &provider.DictionaryResult{
		Definitions: []provider.DefinitionResult{},
	}

	if len(entries) == 0 {
		return result
	}

	result.Word = entries[0].Word

	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			pos := meaning.PartOfSpeech
			for _, def := range meaning.Definitions {
				d := provider.DefinitionResult{Text: def.Definition}
				if pos != "" {
					posCopy := pos
					d.PartOfSpeech = &posCopy
				}
				if def.Example != "" {
					ex := def.Example
					d.Example = &ex
				}
				result.Definitions = append(result.Definitions, d)
			}
		}

		for _, ph := range entry.Phonetics {
			if result.Phonetic == nil && ph.Text != "" {
				t := ph.Text
				result.Phonetic = &t
			}
			if result.AudioURL == nil && ph.Audio != "" {
				a := ph.Audio
				result.AudioURL = &a
			}
		}
	}

	return result
}
