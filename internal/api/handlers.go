package api

import (
	"net/http"

	"github.com/starford/lifetrack/internal/models"
	"github.com/starford/lifetrack/internal/tracker"
)

// Handler holds API route handlers.
type Handler struct {
	svc *tracker.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *tracker.Service) *Handler {
	return &Handler{svc: svc}
}

func deleted(w http.ResponseWriter, kind string) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: kind + " deleted successfully"})
}

// ListNotes handles GET /api/notes.
//
//	@Summary		List notes, most recently updated first
//	@Tags			notes
//	@Produce		json
//	@Success		200	{array}	models.Note
//	@Security		BearerAuth
//	@Router			/notes [get]
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.Notes(r.Context())
	if err != nil {
		writeError(w, r, "Note", err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// SearchNotes handles GET /api/notes/search?q=.
//
//	@Summary		Case-insensitive substring search over note titles and contents
//	@Tags			notes
//	@Produce		json
//	@Param			q	query		string	true	"Search text"
//	@Success		200	{array}		models.Note
//	@Failure		400	{object}	MessageResponse
//	@Security		BearerAuth
//	@Router			/notes/search [get]
func (h *Handler) SearchNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("Search query is required"))
		return
	}
	notes, err := h.svc.SearchNotes(r.Context(), q)
	if err != nil {
		writeError(w, r, "Note", err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// GetNote handles GET /api/notes/{id}.
//
//	@Summary		Get a note
//	@Tags			notes
//	@Produce		json
//	@Param			id	path		int	true	"Note ID"
//	@Success		200	{object}	models.Note
//	@Failure		404	{object}	MessageResponse
//	@Security		BearerAuth
//	@Router			/notes/{id} [get]
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	n, err := h.svc.Note(r.Context(), id)
	if err != nil {
		writeError(w, r, "Note", err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// CreateNote handles POST /api/notes.
//
//	@Summary		Create a note
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.NoteInput	true	"Note to create"
//	@Success		201		{object}	models.Note
//	@Failure		400		{object}	MessageResponse
//	@Security		BearerAuth
//	@Router			/notes [post]
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var in models.NoteInput
	if !decodeJSON(w, r, &in) {
		return
	}
	n, err := h.svc.CreateNote(r.Context(), in)
	if err != nil {
		writeError(w, r, "Note", err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

// UpdateNote handles PATCH /api/notes/{id}.
//
//	@Summary		Update some fields of a note
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Note ID"
//	@Param			body	body		models.NotePatch	true	"Fields to change"
//	@Success		200		{object}	models.Note
//	@Failure		400		{object}	MessageResponse
//	@Failure		404		{object}	MessageResponse
//	@Security		BearerAuth
//	@Router			/notes/{id} [patch]
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var p models.NotePatch
	if !decodeJSON(w, r, &p) {
		return
	}
	n, err := h.svc.UpdateNote(r.Context(), id, p)
	if err != nil {
		writeError(w, r, "Note", err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// DeleteNote handles DELETE /api/notes/{id}.
//
//	@Summary		Delete a note
//	@Tags			notes
//	@Produce		json
//	@Param			id	path		int	true	"Note ID"
//	@Success		200	{object}	MessageResponse
//	@Failure		404	{object}	MessageResponse
//	@Security		BearerAuth
//	@Router			/notes/{id} [delete]
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		writeError(w, r, "Note", err)
		return
	}
	deleted(w, "Note")
}

// DashboardStats handles GET /api/dashboard/stats.
//
//	@Summary		Cross-entity rollup for the dashboard
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	stats.DashboardStats
//	@Security		BearerAuth
//	@Router			/dashboard/stats [get]
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, "Dashboard", err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// Notifications handles GET /api/notifications.
//
//	@Summary		Reminders about overdue or nearly finished goals and checklists
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{array}	stats.Notification
//	@Security		BearerAuth
//	@Router			/notifications [get]
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	ns, err := h.svc.Notifications(r.Context())
	if err != nil {
		writeError(w, r, "Notification", err)
		return
	}
	writeJSON(w, http.StatusOK, ns)
}
