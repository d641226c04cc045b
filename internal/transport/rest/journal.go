package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/internal/service/journal"
)

type journalService interface {
	CreateWriting(ctx context.Context, input journal.CreateWritingInput) (*domain.Writing, error)
	GetWriting(ctx context.Context, writingID uuid.UUID) (*domain.Writing, error)
	ListWritings(ctx context.Context, date *civil.Date) ([]*domain.Writing, error)
	UpdateWriting(ctx context.Context, input journal.UpdateWritingInput) (*domain.Writing, error)
	DeleteWriting(ctx context.Context, writingID uuid.UUID) error
}

// JournalHandler serves journal REST endpoints.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

type createWritingRequest struct {
	Content     string  `json:"content"`
	Title       *string `json:"title"`
	TopicID     *string `json:"topicId"`
	WrittenDate *string `json:"writtenDate"`
}

type updateWritingRequest struct {
	Content     *string `json:"content"`
	Title       *string `json:"title"`
	TopicID     *string `json:"topicId"`
	WrittenDate *string `json:"writtenDate"`
}

type writingResponse struct {
	ID          string    `json:"id"`
	Title       *string   `json:"title,omitempty"`
	Content     string    `json:"content"`
	WordCount   int       `json:"wordCount"`
	TopicID     *string   `json:"topicId,omitempty"`
	WrittenDate string    `json:"writtenDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Create handles POST /api/writings.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWritingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, err := parseOptionalUUID(req.TopicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}
	writtenDate, err := parseOptionalDate(req.WrittenDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid written date, want YYYY-MM-DD")
		return
	}

	writing, err := h.svc.CreateWriting(r.Context(), journal.CreateWritingInput{
		Content:     req.Content,
		Title:       req.Title,
		TopicID:     topicID,
		WrittenDate: writtenDate,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWritingResponse(writing))
}

// Get handles GET /api/writings/{id}.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid writing id")
		return
	}

	writing, err := h.svc.GetWriting(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWritingResponse(writing))
}

// List handles GET /api/writings?date=YYYY-MM-DD.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	var date *civil.Date
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := civil.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
			return
		}
		date = &d
	}

	writings, err := h.svc.ListWritings(r.Context(), date)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]writingResponse, 0, len(writings))
	for _, writing := range writings {
		resp = append(resp, toWritingResponse(writing))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PATCH /api/writings/{id}.
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid writing id")
		return
	}

	var req updateWritingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, err := parseOptionalUUID(req.TopicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}
	writtenDate, err := parseOptionalDate(req.WrittenDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid written date, want YYYY-MM-DD")
		return
	}

	writing, err := h.svc.UpdateWriting(r.Context(), journal.UpdateWritingInput{
		WritingID:   id,
		Content:     req.Content,
		Title:       req.Title,
		TopicID:     topicID,
		WrittenDate: writtenDate,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWritingResponse(writing))
}

// Delete handles DELETE /api/writings/{id}.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid writing id")
		return
	}

	if err := h.svc.DeleteWriting(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseOptionalDate(raw *string) (*civil.Date, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func toWritingResponse(w *domain.Writing) writingResponse {
	return writingResponse{
		ID:          w.ID.String(),
		Title:       w.Title,
		Content:     w.Content,
		WordCount:   w.WordCount,
		TopicID:     optionalUUIDString(w.TopicID),
		WrittenDate: w.WrittenDate.String(),
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
