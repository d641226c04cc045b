package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/internal/service/vocabulary"
)

type vocabularyService interface {
	CreateWord(ctx context.Context, input vocabulary.CreateWordInput) (*domain.Word, error)
	GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	ListWords(ctx context.Context, input vocabulary.ListInput) ([]*domain.Word, error)
	UpdateWord(ctx context.Context, input vocabulary.UpdateWordInput) (*domain.Word, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
	ReviewWord(ctx context.Context, input vocabulary.ReviewInput) (*domain.Word, error)

	CreatePhrase(ctx context.Context, input vocabulary.CreatePhraseInput) (*domain.Phrase, error)
	GetPhrase(ctx context.Context, phraseID uuid.UUID) (*domain.Phrase, error)
	ListPhrases(ctx context.Context, input vocabulary.ListInput) ([]*domain.Phrase, error)
	UpdatePhrase(ctx context.Context, input vocabulary.UpdatePhraseInput) (*domain.Phrase, error)
	DeletePhrase(ctx context.Context, phraseID uuid.UUID) error
	ReviewPhrase(ctx context.Context, input vocabulary.ReviewInput) (*domain.Phrase, error)

	Stats(ctx context.Context) (*vocabulary.StatsResult, error)
}

// VocabularyHandler serves word and phrase REST endpoints.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

type createWordRequest struct {
	Word         string  `json:"word"`
	Definition   string  `json:"definition"`
	DefinitionVI *string `json:"definitionVi"`
	Phonetic     *string `json:"phonetic"`
	AudioURL     *string `json:"audioUrl"`
	TopicID      *string `json:"topicId"`
}

type updateWordRequest struct {
	Word         *string `json:"word"`
	Definition   *string `json:"definition"`
	DefinitionVI *string `json:"definitionVi"`
	Phonetic     *string `json:"phonetic"`
	AudioURL     *string `json:"audioUrl"`
	TopicID      *string `json:"topicId"`
	Status       *string `json:"status"`
}

type wordResponse struct {
	ID           string    `json:"id"`
	Word         string    `json:"word"`
	Definition   string    `json:"definition"`
	DefinitionVI *string   `json:"definitionVi,omitempty"`
	Phonetic     *string   `json:"phonetic,omitempty"`
	AudioURL     *string   `json:"audioUrl,omitempty"`
	TopicID      *string   `json:"topicId,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type createPhraseRequest struct {
	Phrase          string  `json:"phrase"`
	Meaning         string  `json:"meaning"`
	MeaningVI       *string `json:"meaningVi"`
	ExampleSentence *string `json:"exampleSentence"`
	Phonetic        *string `json:"phonetic"`
	AudioURL        *string `json:"audioUrl"`
	TopicID         *string `json:"topicId"`
}

type updatePhraseRequest struct {
	Phrase          *string `json:"phrase"`
	Meaning         *string `json:"meaning"`
	MeaningVI       *string `json:"meaningVi"`
	ExampleSentence *string `json:"exampleSentence"`
	Phonetic        *string `json:"phonetic"`
	AudioURL        *string `json:"audioUrl"`
	TopicID         *string `json:"topicId"`
	Status          *string `json:"status"`
}

type phraseResponse struct {
	ID              string    `json:"id"`
	Phrase          string    `json:"phrase"`
	Meaning         string    `json:"meaning"`
	MeaningVI       *string   `json:"meaningVi,omitempty"`
	ExampleSentence *string   `json:"exampleSentence,omitempty"`
	Phonetic        *string   `json:"phonetic,omitempty"`
	AudioURL        *string   `json:"audioUrl,omitempty"`
	TopicID         *string   `json:"topicId,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type reviewRequest struct {
	Knew bool `json:"knew"`
}

type vocabStatsResponse struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Learning  int `json:"learning"`
	Reviewing int `json:"reviewing"`
	Mastered  int `json:"mastered"`
}

type statsResponse struct {
	Words   vocabStatsResponse `json:"words"`
	Phrases vocabStatsResponse `json:"phrases"`
}

// CreateWord handles POST /api/words.
func (h *VocabularyHandler) CreateWord(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, err := parseOptionalUUID(req.TopicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	word, err := h.svc.CreateWord(r.Context(), vocabulary.CreateWordInput{
		Text:         req.Word,
		Definition:   req.Definition,
		DefinitionVI: req.DefinitionVI,
		Phonetic:     req.Phonetic,
		AudioURL:     req.AudioURL,
		TopicID:      topicID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(word))
}

// GetWord handles GET /api/words/{id}.
func (h *VocabularyHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	word, err := h.svc.GetWord(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// ListWords handles GET /api/words?topicId=&status=.
func (h *VocabularyHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	input, err := listInputFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	words, err := h.svc.ListWords(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]wordResponse, 0, len(words))
	for _, word := range words {
		resp = append(resp, toWordResponse(word))
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateWord handles PATCH /api/words/{id}.
func (h *VocabularyHandler) UpdateWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var req updateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, err := parseOptionalUUID(req.TopicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	word, err := h.svc.UpdateWord(r.Context(), vocabulary.UpdateWordInput{
		WordID:       id,
		Text:         req.Word,
		Definition:   req.Definition,
		DefinitionVI: req.DefinitionVI,
		Phonetic:     req.Phonetic,
		AudioURL:     req.AudioURL,
		TopicID:      topicID,
		Status:       statusPtr(req.Status),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// DeleteWord handles DELETE /api/words/{id}.
func (h *VocabularyHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	if err := h.svc.DeleteWord(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReviewWord handles POST /api/words/{id}/review.
func (h *VocabularyHandler) ReviewWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.svc.ReviewWord(r.Context(), vocabulary.ReviewInput{ID: id, Knew: req.Knew})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// CreatePhrase handles POST /api/phrases.
func (h *VocabularyHandler) CreatePhrase(w http.ResponseWriter, r *http.Request) {
	var req createPhraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, err := parseOptionalUUID(req.TopicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	phrase, err := h.svc.CreatePhrase(r.Context(), vocabulary.CreatePhraseInput{
		Text:            req.Phrase,
		Meaning:         req.Meaning,
		MeaningVI:       req.MeaningVI,
		ExampleSentence: req.ExampleSentence,
		Phonetic:        req.Phonetic,
		AudioURL:        req.AudioURL,
		TopicID:         topicID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPhraseResponse(phrase))
}

// GetPhrase handles GET /api/phrases/{id}.
func (h *VocabularyHandler) GetPhrase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid phrase id")
		return
	}

	phrase, err := h.svc.GetPhrase(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPhraseResponse(phrase))
}

// ListPhrases handles GET /api/phrases?topicId=&status=.
func (h *VocabularyHandler) ListPhrases(w http.ResponseWriter, r *http.Request) {
	input, err := listInputFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	phrases, err := h.svc.ListPhrases(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]phraseResponse, 0, len(phrases))
	for _, phrase := range phrases {
		resp = append(resp, toPhraseResponse(phrase))
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdatePhrase handles PATCH /api/phrases/{id}.
func (h *VocabularyHandler) UpdatePhrase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid phrase id")
		return
	}

	var req updatePhraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, err := parseOptionalUUID(req.TopicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	phrase, err := h.svc.UpdatePhrase(r.Context(), vocabulary.UpdatePhraseInput{
		PhraseID:        id,
		Text:            req.Phrase,
		Meaning:         req.Meaning,
		MeaningVI:       req.MeaningVI,
		ExampleSentence: req.ExampleSentence,
		Phonetic:        req.Phonetic,
		AudioURL:        req.AudioURL,
		TopicID:         topicID,
		Status:          statusPtr(req.Status),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPhraseResponse(phrase))
}

// DeletePhrase handles DELETE /api/phrases/{id}.
func (h *VocabularyHandler) DeletePhrase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid phrase id")
		return
	}

	if err := h.svc.DeletePhrase(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReviewPhrase handles POST /api/phrases/{id}/review.
func (h *VocabularyHandler) ReviewPhrase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid phrase id")
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	phrase, err := h.svc.ReviewPhrase(r.Context(), vocabulary.ReviewInput{ID: id, Knew: req.Knew})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPhraseResponse(phrase))
}

// Stats handles GET /api/stats.
func (h *VocabularyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Words:   toVocabStatsResponse(stats.Words),
		Phrases: toVocabStatsResponse(stats.Phrases),
	})
}

func listInputFromQuery(r *http.Request) (vocabulary.ListInput, error) {
	var input vocabulary.ListInput

	q := r.URL.Query()
	if raw := q.Get("topicId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return input, errInvalidTopicID
		}
		input.TopicID = &id
	}
	if raw := q.Get("status"); raw != "" {
		status := domain.WordStatus(raw)
		input.Status = &status
	}
	return input, nil
}

var errInvalidTopicID = errors.New("invalid topic id")

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func statusPtr(raw *string) *domain.WordStatus {
	if raw == nil {
		return nil
	}
	status := domain.WordStatus(*raw)
	return &status
}

func optionalUUIDString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toWordResponse(w *domain.Word) wordResponse {
	return wordResponse{
		ID:           w.ID.String(),
		Word:         w.Text,
		Definition:   w.Definition,
		DefinitionVI: w.DefinitionVI,
		Phonetic:     w.Phonetic,
		AudioURL:     w.AudioURL,
		TopicID:      optionalUUIDString(w.TopicID),
		Status:       w.Status.String(),
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

func toPhraseResponse(p *domain.Phrase) phraseResponse {
	return phraseResponse{
		ID:              p.ID.String(),
		Phrase:          p.Text,
		Meaning:         p.Meaning,
		MeaningVI:       p.MeaningVI,
		ExampleSentence: p.ExampleSentence,
		Phonetic:        p.Phonetic,
		AudioURL:        p.AudioURL,
		TopicID:         optionalUUIDString(p.TopicID),
		Status:          p.Status.String(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toVocabStatsResponse(s domain.VocabStats) vocabStatsResponse {
	return vocabStatsResponse{
		Total:     s.Total,
		New:       s.New,
		Learning:  s.Learning,
		Reviewing: s.Reviewing,
		Mastered:  s.Mastered,
	}
}
