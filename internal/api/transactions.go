package api

import (
	"net/http"

	"github.com/starford/lifetrack/internal/models"
)

// ListTransactions handles GET /api/transactions, newest first.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.Transactions(r.Context())
	if err != nil {
		writeError(w, r, "Transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	t, err := h.svc.Transaction(r.Context(), id)
	if err != nil {
		writeError(w, r, "Transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in models.TransactionInput
	if !decodeJSON(w, r, &in) {
		return
	}
	t, err := h.svc.CreateTransaction(r.Context(), in)
	if err != nil {
		writeError(w, r, "Transaction", err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var p models.TransactionPatch
	if !decodeJSON(w, r, &p) {
		return
	}
	t, err := h.svc.UpdateTransaction(r.Context(), id, p)
	if err != nil {
		writeError(w, r, "Transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, r, "Transaction", err)
		return
	}
	deleted(w, "Transaction")
}
