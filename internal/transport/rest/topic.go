package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/internal/service/topic"
)

type topicService interface {
	CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListTopics(ctx context.Context) ([]*domain.Topic, error)
	UpdateTopic(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, topicID uuid.UUID) error
}

// TopicHandler serves topic REST endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

type createTopicRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
}

type updateTopicRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
}

type topicResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.CreateTopic(r.Context(), topic.CreateTopicInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(t))
}

// Get handles GET /api/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	t, err := h.svc.GetTopic(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// List handles GET /api/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListTopics(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]topicResponse, 0, len(topics))
	for _, t := range topics {
		resp = append(resp, toTopicResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PATCH /api/topics/{id}.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	var req updateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.UpdateTopic(r.Context(), topic.UpdateTopicInput{
		TopicID:     id,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// Delete handles DELETE /api/topics/{id}. Words, phrases and writings in
// the topic are kept and detached.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	if err := h.svc.DeleteTopic(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		Icon:        t.Icon,
		Color:       t.Color,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
