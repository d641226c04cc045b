package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/internal/service/ielts"
)

type ieltsService interface {
	CreatePlan(ctx context.Context, input ielts.CreatePlanInput) (*domain.IELTSPlan, error)
	GetPlan(ctx context.Context, planID uuid.UUID) (*domain.IELTSPlan, error)
	GetActivePlan(ctx context.Context) (*domain.IELTSPlan, error)
	ListPlans(ctx context.Context) ([]*domain.IELTSPlan, error)
	UpdatePlan(ctx context.Context, input ielts.UpdatePlanInput) (*domain.IELTSPlan, error)
	ActivatePlan(ctx context.Context, planID uuid.UUID) (*domain.IELTSPlan, error)
	DeletePlan(ctx context.Context, planID uuid.UUID) error

	LogSession(ctx context.Context, input ielts.LogSessionInput) (*domain.IELTSSession, error)
	ListSessions(ctx context.Context, planID uuid.UUID) ([]*domain.IELTSSession, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error

	CreateMilestone(ctx context.Context, input ielts.CreateMilestoneInput) (*domain.IELTSMilestone, error)
	ListMilestones(ctx context.Context, planID uuid.UUID) ([]*domain.IELTSMilestone, error)
	DeleteMilestone(ctx context.Context, milestoneID uuid.UUID) error

	Stats(ctx context.Context, planID uuid.UUID) (*domain.IELTSStats, error)
}

// IELTSHandler serves IELTS study tracking REST endpoints.
type IELTSHandler struct {
	svc ieltsService
	log *slog.Logger
}

// NewIELTSHandler creates an IELTSHandler.
func NewIELTSHandler(svc ieltsService, logger *slog.Logger) *IELTSHandler {
	return &IELTSHandler{svc: svc, log: logger.With("handler", "ielts")}
}

type bandScoresPayload struct {
	Listening *float64 `json:"listening"`
	Reading   *float64 `json:"reading"`
	Writing   *float64 `json:"writing"`
	Speaking  *float64 `json:"speaking"`
	Overall   *float64 `json:"overall"`
}

type createPlanRequest struct {
	Name             string             `json:"name"`
	ExamDate         *string            `json:"examDate"`
	TargetScores     *bandScoresPayload `json:"targetScores"`
	CurrentScores    *bandScoresPayload `json:"currentScores"`
	StudyHoursPerDay int                `json:"studyHoursPerDay"`
	Notes            *string            `json:"notes"`
}

type updatePlanRequest struct {
	Name             *string            `json:"name"`
	ExamDate         *string            `json:"examDate"`
	TargetScores     *bandScoresPayload `json:"targetScores"`
	CurrentScores    *bandScoresPayload `json:"currentScores"`
	StudyHoursPerDay *int               `json:"studyHoursPerDay"`
	Notes            *string            `json:"notes"`
}

type planResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	ExamDate         *string           `json:"examDate,omitempty"`
	TargetScores     bandScoresPayload `json:"targetScores"`
	CurrentScores    bandScoresPayload `json:"currentScores"`
	StudyHoursPerDay int               `json:"studyHoursPerDay"`
	Notes            *string           `json:"notes,omitempty"`
	IsActive         bool              `json:"isActive"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

type logSessionRequest struct {
	PlanID          string  `json:"planId"`
	Skill           string  `json:"skill"`
	DurationMinutes int     `json:"durationMinutes"`
	Activity        *string `json:"activity"`
	Notes           *string `json:"notes"`
	Date            *string `json:"date"`
}

type sessionResponse struct {
	ID              string    `json:"id"`
	PlanID          string    `json:"planId"`
	Skill           string    `json:"skill"`
	DurationMinutes int       `json:"durationMinutes"`
	Activity        *string   `json:"activity,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	Date            string    `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
}

type createMilestoneRequest struct {
	PlanID string             `json:"planId"`
	Type   string             `json:"type"`
	Scores *bandScoresPayload `json:"scores"`
	Title  *string            `json:"title"`
	Notes  *string            `json:"notes"`
	Date   *string            `json:"date"`
}

type milestoneResponse struct {
	ID        string            `json:"id"`
	PlanID    string            `json:"planId"`
	Type      string            `json:"type"`
	Scores    bandScoresPayload `json:"scores"`
	Title     *string           `json:"title,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
	Date      string            `json:"date"`
	CreatedAt time.Time         `json:"createdAt"`
}

type ieltsStatsResponse struct {
	TotalMinutes     int            `json:"totalMinutes"`
	MinutesBySkill   map[string]int `json:"minutesBySkill"`
	SessionsThisWeek int            `json:"sessionsThisWeek"`
	CurrentStreak    int            `json:"currentStreak"`
	DaysUntilExam    *int           `json:"daysUntilExam,omitempty"`
}

// CreatePlan handles POST /api/ielts/plans.
func (h *IELTSHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	examDate, err := parseOptionalDate(req.ExamDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exam date, want YYYY-MM-DD")
		return
	}

	p, err := h.svc.CreatePlan(r.Context(), ielts.CreatePlanInput{
		Name:             req.Name,
		ExamDate:         examDate,
		TargetScores:     toBandScores(req.TargetScores),
		CurrentScores:    toBandScores(req.CurrentScores),
		StudyHoursPerDay: req.StudyHoursPerDay,
		Notes:            req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlanResponse(p))
}

// GetPlan handles GET /api/ielts/plans/{id}.
func (h *IELTSHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	p, err := h.svc.GetPlan(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(p))
}

// GetActivePlan handles GET /api/ielts/plans/active.
func (h *IELTSHandler) GetActivePlan(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetActivePlan(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(p))
}

// ListPlans handles GET /api/ielts/plans.
func (h *IELTSHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.svc.ListPlans(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]planResponse, 0, len(plans))
	for _, p := range plans {
		resp = append(resp, toPlanResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdatePlan handles PATCH /api/ielts/plans/{id}.
func (h *IELTSHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	var req updatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	examDate, err := parseOptionalDate(req.ExamDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exam date, want YYYY-MM-DD")
		return
	}

	input := ielts.UpdatePlanInput{
		PlanID:           id,
		Name:             req.Name,
		ExamDate:         examDate,
		StudyHoursPerDay: req.StudyHoursPerDay,
		Notes:            req.Notes,
	}
	if req.TargetScores != nil {
		scores := toBandScores(req.TargetScores)
		input.TargetScores = &scores
	}
	if req.CurrentScores != nil {
		scores := toBandScores(req.CurrentScores)
		input.CurrentScores = &scores
	}

	p, err := h.svc.UpdatePlan(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(p))
}

// ActivatePlan handles POST /api/ielts/plans/{id}/activate.
func (h *IELTSHandler) ActivatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	p, err := h.svc.ActivatePlan(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(p))
}

// DeletePlan handles DELETE /api/ielts/plans/{id}.
func (h *IELTSHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	if err := h.svc.DeletePlan(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// LogSession handles POST /api/ielts/sessions.
func (h *IELTSHandler) LogSession(w http.ResponseWriter, r *http.Request) {
	var req logSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}

	sess, err := h.svc.LogSession(r.Context(), ielts.LogSessionInput{
		PlanID:          planID,
		Skill:           domain.IELTSSkill(req.Skill),
		DurationMinutes: req.DurationMinutes,
		Activity:        req.Activity,
		Notes:           req.Notes,
		Date:            date,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(sess))
}

// ListSessions handles GET /api/ielts/plans/{id}/sessions.
func (h *IELTSHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	sessions, err := h.svc.ListSessions(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]sessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		resp = append(resp, toSessionResponse(sess))
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteSession handles DELETE /api/ielts/sessions/{id}.
func (h *IELTSHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	if err := h.svc.DeleteSession(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateMilestone handles POST /api/ielts/milestones.
func (h *IELTSHandler) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	var req createMilestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}

	m, err := h.svc.CreateMilestone(r.Context(), ielts.CreateMilestoneInput{
		PlanID: planID,
		Type:   domain.MilestoneType(req.Type),
		Scores: toBandScores(req.Scores),
		Title:  req.Title,
		Notes:  req.Notes,
		Date:   date,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMilestoneResponse(m))
}

// ListMilestones handles GET /api/ielts/plans/{id}/milestones.
func (h *IELTSHandler) ListMilestones(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	milestones, err := h.svc.ListMilestones(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]milestoneResponse, 0, len(milestones))
	for _, m := range milestones {
		resp = append(resp, toMilestoneResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteMilestone handles DELETE /api/ielts/milestones/{id}.
func (h *IELTSHandler) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid milestone id")
		return
	}

	if err := h.svc.DeleteMilestone(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/ielts/plans/{id}/stats.
func (h *IELTSHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	stats, err := h.svc.Stats(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	bySkill := make(map[string]int, len(stats.MinutesBySkill))
	for skill, minutes := range stats.MinutesBySkill {
		bySkill[skill.String()] = minutes
	}

	writeJSON(w, http.StatusOK, ieltsStatsResponse{
		TotalMinutes:     stats.TotalMinutes,
		MinutesBySkill:   bySkill,
		SessionsThisWeek: stats.SessionsThisWeek,
		CurrentStreak:    stats.CurrentStreak,
		DaysUntilExam:    stats.DaysUntilExam,
	})
}

func toBandScores(p *bandScoresPayload) domain.BandScores {
	if p == nil {
		return domain.BandScores{}
	}
	return domain.BandScores{
		Listening: p.Listening,
		Reading:   p.Reading,
		Writing:   p.Writing,
		Speaking:  p.Speaking,
		Overall:   p.Overall,
	}
}

func fromBandScores(s domain.BandScores) bandScoresPayload {
	return bandScoresPayload{
		Listening: s.Listening,
		Reading:   s.Reading,
		Writing:   s.Writing,
		Speaking:  s.Speaking,
		Overall:   s.Overall,
	}
}

func toPlanResponse(p *domain.IELTSPlan) planResponse {
	resp := planResponse{
		ID:               p.ID.String(),
		Name:             p.Name,
		TargetScores:     fromBandScores(p.TargetScores),
		CurrentScores:    fromBandScores(p.CurrentScores),
		StudyHoursPerDay: p.StudyHoursPerDay,
		Notes:            p.Notes,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.ExamDate != nil {
		s := p.ExamDate.String()
		resp.ExamDate = &s
	}
	return resp
}

func toSessionResponse(s *domain.IELTSSession) sessionResponse {
	return sessionResponse{
		ID:              s.ID.String(),
		PlanID:          s.PlanID.String(),
		Skill:           s.Skill.String(),
		DurationMinutes: s.DurationMinutes,
		Activity:        s.Activity,
		Notes:           s.Notes,
		Date:            s.Date.String(),
		CreatedAt:       s.CreatedAt,
	}
}

func toMilestoneResponse(m *domain.IELTSMilestone) milestoneResponse {
	return milestoneResponse{
		ID:        m.ID.String(),
		PlanID:    m.PlanID.String(),
		Type:      m.Type.String(),
		Scores:    fromBandScores(m.Scores),
		Title:     m.Title,
		Notes:     m.Notes,
		Date:      m.Date.String(),
		CreatedAt: m.CreatedAt,
	}
}
