package handlers

import (
	"net/http"

	"tasktracker/internal/models"
)

// Filter sets the active duration filter from the "duration" field.
func (h *Handlers) Filter(w http.ResponseWriter, r *http.Request) {
	value, err := formValue(r, "duration")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sel, err := models.ParseSelection(value)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.session.SetSelection(r.Context(), sel); err != nil {
		h.respondServerError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.session.Snapshot().Views)
}

// Progress sets whether the first pending task is in progress.
func (h *Handlers) Progress(w http.ResponseWriter, r *http.Request) {
	inProgress, ok := h.readBool(w, r, "in_progress")
	if !ok {
		return
	}

	if err := h.session.SetInProgress(r.Context(), inProgress); err != nil {
		h.respondServerError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.session.Snapshot().Views)
}

// ShowCompleted toggles the completed list.
func (h *Handlers) ShowCompleted(w http.ResponseWriter, r *http.Request) {
	show, ok := h.readBool(w, r, "show_completed")
	if !ok {
		return
	}

	if err := h.session.SetShowCompleted(r.Context(), show); err != nil {
		h.respondServerError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.session.Snapshot().Views)
}

func (h *Handlers) readBool(w http.ResponseWriter, r *http.Request, key string) (bool, bool) {
	value, err := formValue(r, key)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false, false
	}

	b, err := parseBool(value)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid "+key)
		return false, false
	}
	return b, true
}
