package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/lifetrack/internal/tracker"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *tracker.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Route("/notes", func(r chi.Router) {
		r.Get("/", h.ListNotes)
		r.Post("/", h.CreateNote)
		r.Get("/search", h.SearchNotes)
		r.Get("/{id}", h.GetNote)
		r.Patch("/{id}", h.UpdateNote)
		r.Delete("/{id}", h.DeleteNote)
	})

	r.Route("/habits", func(r chi.Router) {
		r.Get("/", h.ListHabits)
		r.Post("/", h.CreateHabit)
		r.Get("/{id}", h.GetHabit)
		r.Patch("/{id}", h.UpdateHabit)
		r.Delete("/{id}", h.DeleteHabit)
		r.Get("/{id}/logs", h.ListHabitLogs)
	})

	r.Route("/habit-logs", func(r chi.Router) {
		r.Post("/", h.LogHabit)
		r.Get("/date/{date}", h.ListHabitLogsForDate)
		r.Delete("/{id}", h.DeleteHabitLog)
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", h.ListTransactions)
		r.Post("/", h.CreateTransaction)
		r.Get("/{id}", h.GetTransaction)
		r.Patch("/{id}", h.UpdateTransaction)
		r.Delete("/{id}", h.DeleteTransaction)
	})

	r.Route("/checklists", func(r chi.Router) {
		r.Get("/", h.ListChecklists)
		r.Post("/", h.CreateChecklist)
		r.Get("/{id}", h.GetChecklist)
		r.Patch("/{id}", h.UpdateChecklist)
		r.Delete("/{id}", h.DeleteChecklist)
		r.Get("/{id}/items", h.ListChecklistItems)
	})

	r.Route("/checklist-items", func(r chi.Router) {
		r.Get("/{id}", h.GetChecklistItem)
		r.Post("/", h.CreateChecklistItem)
		r.Patch("/{id}", h.UpdateChecklistItem)
		r.Delete("/{id}", h.DeleteChecklistItem)
	})

	r.Route("/goals", func(r chi.Router) {
		r.Get("/", h.ListGoals)
		r.Post("/", h.CreateGoal)
		r.Get("/{id}", h.GetGoal)
		r.Patch("/{id}", h.UpdateGoal)
		r.Delete("/{id}", h.DeleteGoal)
	})

	r.Get("/dashboard/stats", h.DashboardStats)
	r.Get("/notifications", h.Notifications)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
