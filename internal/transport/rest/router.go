package rest

import "net/http"

// Handlers bundles the handler set mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Topic      *TopicHandler
	Vocabulary *VocabularyHandler
	Journal    *JournalHandler
	IELTS      *IELTSHandler
	Dictionary *DictionaryHandler
}

// NewRouter mounts all REST routes on a ServeMux. Auth enforcement lives in
// the services: handlers pass the request context through and unauthorized
// calls come back as ErrUnauthorized.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)

	mux.HandleFunc("POST /api/topics", h.Topic.Create)
	mux.HandleFunc("GET /api/topics", h.Topic.List)
	mux.HandleFunc("GET /api/topics/{id}", h.Topic.Get)
	mux.HandleFunc("PATCH /api/topics/{id}", h.Topic.Update)
	mux.HandleFunc("DELETE /api/topics/{id}", h.Topic.Delete)

	mux.HandleFunc("POST /api/words", h.Vocabulary.CreateWord)
	mux.HandleFunc("GET /api/words", h.Vocabulary.ListWords)
	mux.HandleFunc("GET /api/words/{id}", h.Vocabulary.GetWord)
	mux.HandleFunc("PATCH /api/words/{id}", h.Vocabulary.UpdateWord)
	mux.HandleFunc("DELETE /api/words/{id}", h.Vocabulary.DeleteWord)
	mux.HandleFunc("POST /api/words/{id}/review", h.Vocabulary.ReviewWord)

	mux.HandleFunc("POST /api/phrases", h.Vocabulary.CreatePhrase)
	mux.HandleFunc("GET /api/phrases", h.Vocabulary.ListPhrases)
	mux.HandleFunc("GET /api/phrases/{id}", h.Vocabulary.GetPhrase)
	mux.HandleFunc("PATCH /api/phrases/{id}", h.Vocabulary.UpdatePhrase)
	mux.HandleFunc("DELETE /api/phrases/{id}", h.Vocabulary.DeletePhrase)
	mux.HandleFunc("POST /api/phrases/{id}/review", h.Vocabulary.ReviewPhrase)

	mux.HandleFunc("GET /api/stats", h.Vocabulary.Stats)

	mux.HandleFunc("GET /api/dictionary/{word}", h.Dictionary.Lookup)
	mux.HandleFunc("POST /api/translate", h.Dictionary.Translate)

	mux.HandleFunc("POST /api/writings", h.Journal.Create)
	mux.HandleFunc("GET /api/writings", h.Journal.List)
	mux.HandleFunc("GET /api/writings/{id}", h.Journal.Get)
	mux.HandleFunc("PATCH /api/writings/{id}", h.Journal.Update)
	mux.HandleFunc("DELETE /api/writings/{id}", h.Journal.Delete)

	mux.HandleFunc("POST /api/ielts/plans", h.IELTS.CreatePlan)
	mux.HandleFunc("GET /api/ielts/plans", h.IELTS.ListPlans)
	mux.HandleFunc("GET /api/ielts/plans/active", h.IELTS.GetActivePlan)
	mux.HandleFunc("GET /api/ielts/plans/{id}", h.IELTS.GetPlan)
	mux.HandleFunc("PATCH /api/ielts/plans/{id}", h.IELTS.UpdatePlan)
	mux.HandleFunc("DELETE /api/ielts/plans/{id}", h.IELTS.DeletePlan)
	mux.HandleFunc("POST /api/ielts/plans/{id}/activate", h.IELTS.ActivatePlan)
	mux.HandleFunc("GET /api/ielts/plans/{id}/sessions", h.IELTS.ListSessions)
	mux.HandleFunc("GET /api/ielts/plans/{id}/milestones", h.IELTS.ListMilestones)
	mux.HandleFunc("GET /api/ielts/plans/{id}/stats", h.IELTS.Stats)
	mux.HandleFunc("POST /api/ielts/sessions", h.IELTS.LogSession)
	mux.HandleFunc("DELETE /api/ielts/sessions/{id}", h.IELTS.DeleteSession)
	mux.HandleFunc("POST /api/ielts/milestones", h.IELTS.CreateMilestone)
	mux.HandleFunc("DELETE /api/ielts/milestones/{id}", h.IELTS.DeleteMilestone)

	return mux
}
