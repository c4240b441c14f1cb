package handlers

import (
	"net/http"

	"tasktracker/internal/models"
	"tasktracker/internal/tracker"
)

// HomeData holds data for the home page template.
type HomeData struct {
	Title      string
	Views      tracker.Views
	Selections []models.Selection
}

// Home renders both lists with the filter and progress controls.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	views := h.session.Snapshot().Views

	if v := r.URL.Query().Get("show_completed"); v != "" {
		show, err := parseBool(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid show_completed")
			return
		}
		views.ShowCompleted = show
	}

	data := HomeData{
		Title:      "Task Tracker",
		Views:      views,
		Selections: models.Selections,
	}

	h.render(w, "home.html", data)
}

// Views returns the derived views as JSON.
func (h *Handlers) Views(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.session.Snapshot().Views)
}

// Healthz reports liveness.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
