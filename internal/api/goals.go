package api

import (
	"net/http"

	"github.com/starford/lifetrack/internal/models"
)

// ListGoals handles GET /api/goals.
//
//	@Summary		List goals, newest first, with computed progress
//	@Tags			goals
//	@Produce		json
//	@Success		200	{array}	GoalResponse
//	@Security		BearerAuth
//	@Router			/goals [get]
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.Goals(r.Context())
	if err != nil {
		writeError(w, r, "Goal", err)
		return
	}
	out := make([]GoalResponse, len(goals))
	for i, g := range goals {
		out[i] = newGoalResponse(g)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetGoal handles GET /api/goals/{id}.
func (h *Handler) GetGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	g, err := h.svc.Goal(r.Context(), id)
	if err != nil {
		writeError(w, r, "Goal", err)
		return
	}
	writeJSON(w, http.StatusOK, newGoalResponse(g))
}

// CreateGoal handles POST /api/goals.
//
//	@Summary		Create a goal
//	@Description	Status defaults to not_started, currentValue to 0 and startDate to now.
//	@Tags			goals
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.GoalInput	true	"Goal to create"
//	@Success		201		{object}	GoalResponse
//	@Failure		400		{object}	MessageResponse
//	@Security		BearerAuth
//	@Router			/goals [post]
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var in models.GoalInput
	if !decodeJSON(w, r, &in) {
		return
	}
	g, err := h.svc.CreateGoal(r.Context(), in)
	if err != nil {
		writeError(w, r, "Goal", err)
		return
	}
	writeJSON(w, http.StatusCreated, newGoalResponse(g))
}

// UpdateGoal handles PATCH /api/goals/{id}.
func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var p models.GoalPatch
	if !decodeJSON(w, r, &p) {
		return
	}
	g, err := h.svc.UpdateGoal(r.Context(), id, p)
	if err != nil {
		writeError(w, r, "Goal", err)
		return
	}
	writeJSON(w, http.StatusOK, newGoalResponse(g))
}

// DeleteGoal handles DELETE /api/goals/{id}.
func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteGoal(r.Context(), id); err != nil {
		writeError(w, r, "Goal", err)
		return
	}
	deleted(w, "Goal")
}
