// Package gemini translates English text to Vietnamese through the Gemini
// generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Translator calls the Gemini API. With an empty API key the translator is
// disabled: Translate returns an empty string and no error, so the feature
// degrades instead of failing.
type Translator struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewTranslator creates a Translator. baseURL is the API root without a
// trailing slash (https://generativelanguage.googleapis.com/v1beta in
// production, an httptest server in tests).
func NewTranslator(apiKey, baseURL, model string, timeout time.Duration, logger *slog.Logger) *Translator {
	return &Translator{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "gemini"),
	}
}

// Enabled reports whether an API key is configured.
func (t *Translator) Enabled() bool {
	return t.apiKey != ""
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Translate returns the Vietnamese translation of English text. The reply is
// trimmed and stripped of surrounding quotes the model sometimes adds.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	if !t.Enabled() {
		return "", nil
	}

	prompt := "Translate the following English text to Vietnamese. " +
		"Reply with only the translation, nothing else.\n\n" + text

	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", t.baseURL, t.model, t.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.log.ErrorContext(ctx, "gemini request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.log.ErrorContext(ctx, "gemini unexpected status",
			slog.Int("status", resp.StatusCode),
		)
		return "", fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("gemini: decode json: %w", err)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	return cleanReply(gr.Candidates[0].Content.Parts[0].Text), nil
}

// cleanReply trims whitespace and one layer of surrounding quotes.
func cleanReply(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return strings.TrimSpace(s)
}
