package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/minhngo/englishpal-backend/internal/provider"
	"github.com/minhngo/englishpal-backend/internal/service/vocabulary"
)

type dictionaryService interface {
	Lookup(ctx context.Context, text string) (*provider.DictionaryResult, error)
	Translate(ctx context.Context, text string) (*vocabulary.TranslateResult, error)
}

// DictionaryHandler serves dictionary lookup and translation endpoints.
type DictionaryHandler struct {
	svc dictionaryService
	log *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(svc dictionaryService, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{svc: svc, log: logger.With("handler", "dictionary")}
}

type definitionResponse struct {
	Text         string  `json:"text"`
	PartOfSpeech *string `json:"partOfSpeech,omitempty"`
	Example      *string `json:"example,omitempty"`
}

type lookupResponse struct {
	Word        string               `json:"word"`
	Phonetic    *string              `json:"phonetic,omitempty"`
	AudioURL    *string              `json:"audioUrl,omitempty"`
	Definitions []definitionResponse `json:"definitions"`
}

type translateRequest struct {
	Text string `json:"text"`
}

type translateResponse struct {
	Translation string `json:"translation"`
	Enabled     bool   `json:"enabled"`
}

// Lookup handles GET /api/dictionary/{word}.
func (h *DictionaryHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")

	result, err := h.svc.Lookup(r.Context(), word)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	defs := make([]definitionResponse, 0, len(result.Definitions))
	for _, d := range result.Definitions {
		defs = append(defs, definitionResponse{
			Text:         d.Text,
			PartOfSpeech: d.PartOfSpeech,
			Example:      d.Example,
		})
	}

	writeJSON(w, http.StatusOK, lookupResponse{
		Word:        result.Word,
		Phonetic:    result.Phonetic,
		AudioURL:    result.AudioURL,
		Definitions: defs,
	})
}

// Translate handles POST /api/translate.
func (h *DictionaryHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Translate(r.Context(), req.Text)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		Translation: result.Translation,
		Enabled:     result.Enabled,
	})
}
