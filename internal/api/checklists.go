package api

import (
	"net/http"

	"github.com/starford/lifetrack/internal/models"
)

// ListChecklists handles GET /api/checklists. Each checklist carries its items.
func (h *Handler) ListChecklists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.Checklists(r.Context())
	if err != nil {
		writeError(w, r, "Checklist", err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// GetChecklist handles GET /api/checklists/{id}.
func (h *Handler) GetChecklist(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Checklist(r.Context(), id)
	if err != nil {
		writeError(w, r, "Checklist", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateChecklist handles POST /api/checklists.
func (h *Handler) CreateChecklist(w http.ResponseWriter, r *http.Request) {
	var in models.ChecklistInput
	if !decodeJSON(w, r, &in) {
		return
	}
	c, err := h.svc.CreateChecklist(r.Context(), in)
	if err != nil {
		writeError(w, r, "Checklist", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateChecklist handles PATCH /api/checklists/{id}.
func (h *Handler) UpdateChecklist(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var p models.ChecklistPatch
	if !decodeJSON(w, r, &p) {
		return
	}
	c, err := h.svc.UpdateChecklist(r.Context(), id, p)
	if err != nil {
		writeError(w, r, "Checklist", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteChecklist handles DELETE /api/checklists/{id}, removing its items too.
func (h *Handler) DeleteChecklist(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteChecklist(r.Context(), id); err != nil {
		writeError(w, r, "Checklist", err)
		return
	}
	deleted(w, "Checklist")
}

// ListChecklistItems handles GET /api/checklists/{id}/items.
func (h *Handler) ListChecklistItems(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ChecklistItems(r.Context(), id)
	if err != nil {
		writeError(w, r, "Checklist", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) GetChecklistItem(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	it, err := h.svc.ChecklistItem(r.Context(), id)
	if err != nil {
		writeError(w, r, "Checklist item", err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// CreateChecklistItem handles POST /api/checklist-items.
func (h *Handler) CreateChecklistItem(w http.ResponseWriter, r *http.Request) {
	var in models.ChecklistItemInput
	if !decodeJSON(w, r, &in) {
		return
	}
	it, err := h.svc.CreateChecklistItem(r.Context(), in)
	if err != nil {
		writeError(w, r, "Checklist", err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (h *Handler) UpdateChecklistItem(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var p models.ChecklistItemPatch
	if !decodeJSON(w, r, &p) {
		return
	}
	it, err := h.svc.UpdateChecklistItem(r.Context(), id, p)
	if err != nil {
		writeError(w, r, "Checklist item", err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *Handler) DeleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteChecklistItem(r.Context(), id); err != nil {
		writeError(w, r, "Checklist item", err)
		return
	}
	deleted(w, "Checklist item")
}
