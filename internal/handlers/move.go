package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tasktracker/internal/models"
	"tasktracker/internal/tracker"
)

// moveResponse is returned for every processed drop.
type moveResponse struct {
	Outcome tracker.Outcome `json:"outcome"`
	Error   string          `json:"error,omitempty"`
	Views   tracker.Views   `json:"views"`
}

// Move applies a drag gesture already resolved by the browser to a
// source and destination in the canonical lists.
func (h *Handlers) Move(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var mv models.Move
	if err := json.NewDecoder(r.Body).Decode(&mv); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	outcome, err := h.session.Drop(ctx, mv)
	if err != nil {
		if errors.Is(err, tracker.ErrInvalidLocation) {
			h.respondJSON(w, http.StatusUnprocessableEntity, moveResponse{
				Outcome: outcome,
				Error:   err.Error(),
				Views:   h.session.Snapshot().Views,
			})
			return
		}
		h.respondServerError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, moveResponse{
		Outcome: outcome,
		Views:   h.session.Snapshot().Views,
	})
}
