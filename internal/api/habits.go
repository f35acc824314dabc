package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/lifetrack/internal/models"
)

// ListHabits handles GET /api/habits.
func (h *Handler) ListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := h.svc.Habits(r.Context())
	if err != nil {
		writeError(w, r, "Habit", err)
		return
	}
	writeJSON(w, http.StatusOK, habits)
}

// GetHabit handles GET /api/habits/{id}.
func (h *Handler) GetHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	habit, err := h.svc.Habit(r.Context(), id)
	if err != nil {
		writeError(w, r, "Habit", err)
		return
	}
	writeJSON(w, http.StatusOK, habit)
}

// CreateHabit handles POST /api/habits.
func (h *Handler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var in models.HabitInput
	if !decodeJSON(w, r, &in) {
		return
	}
	habit, err := h.svc.CreateHabit(r.Context(), in)
	if err != nil {
		writeError(w, r, "Habit", err)
		return
	}
	writeJSON(w, http.StatusCreated, habit)
}

// UpdateHabit handles PATCH /api/habits/{id}.
func (h *Handler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var p models.HabitPatch
	if !decodeJSON(w, r, &p) {
		return
	}
	habit, err := h.svc.UpdateHabit(r.Context(), id, p)
	if err != nil {
		writeError(w, r, "Habit", err)
		return
	}
	writeJSON(w, http.StatusOK, habit)
}

// DeleteHabit handles DELETE /api/habits/{id}. The habit's logs go with it.
func (h *Handler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteHabit(r.Context(), id); err != nil {
		writeError(w, r, "Habit", err)
		return
	}
	deleted(w, "Habit")
}

// ListHabitLogs handles GET /api/habits/{id}/logs.
func (h *Handler) ListHabitLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	logs, err := h.svc.HabitLogs(r.Context(), id)
	if err != nil {
		writeError(w, r, "Habit", err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// ListHabitLogsForDate handles GET /api/habit-logs/date/{date}.
func (h *Handler) ListHabitLogsForDate(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.HabitLogsForDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, r, "Habit log", err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// LogHabit handles POST /api/habit-logs.
//
//	@Summary		Record a habit for a day, replacing any earlier log for that day
//	@Description	Recomputes the habit's current and longest streak.
//	@Tags			habits
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.HabitLogInput	true	"Habit, day and outcome"
//	@Success		201		{object}	models.HabitLog
//	@Failure		400		{object}	MessageResponse
//	@Failure		404		{object}	MessageResponse
//	@Security		BearerAuth
//	@Router			/habit-logs [post]
func (h *Handler) LogHabit(w http.ResponseWriter, r *http.Request) {
	var in models.HabitLogInput
	if !decodeJSON(w, r, &in) {
		return
	}
	l, err := h.svc.LogHabit(r.Context(), in)
	if err != nil {
		writeError(w, r, "Habit", err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

// DeleteHabitLog handles DELETE /api/habit-logs/{id}.
func (h *Handler) DeleteHabitLog(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteHabitLog(r.Context(), id); err != nil {
		writeError(w, r, "Habit log", err)
		return
	}
	deleted(w, "Habit log")
}
