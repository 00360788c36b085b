// Package api exposes the dashboard view-model over HTTP. The rendering
// layer is a pure consumer of these endpoints; every derived quantity it
// needs is already present in the view bundle.
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"goldboard/internal/export"
	"goldboard/internal/model"
	"goldboard/internal/session"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	session *session.Session
}

// NewHandler creates a new Handler
func NewHandler(s *session.Session) *Handler {
	return &Handler{session: s}
}

// GetDashboard handles GET /dashboard. An optional ?q= narrows the record
// list by product code or name; the rest of the view is unaffected.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	view := h.session.FilteredView(r.URL.Query().Get("q"))
	respondJSON(w, http.StatusOK, view)
}

type selectDateRequest struct {
	Date model.Date `json:"date"`
}

type selectDateResponse struct {
	Requested model.Date `json:"requested"`
	Resolved  model.Date `json:"resolved"`
	Exact     bool       `json:"exact"`
	View      model.View `json:"view"`
}

// SelectDate handles POST /dashboard/date. The requested date is resolved to
// the nearest date with data, so callers may pass any calendar day.
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req selectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}

	resolved, err := h.session.SelectNearest(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, selectDateResponse{
		Requested: req.Date,
		Resolved:  resolved,
		Exact:     resolved == req.Date,
		View:      h.session.View(),
	})
}

type moveResponse struct {
	Moved bool       `json:"moved"`
	View  model.View `json:"view"`
}

// Next handles POST /dashboard/next: move to the adjacent older date.
// A boundary no-op still returns the (unchanged) view.
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	moved := h.session.Next()
	respondJSON(w, http.StatusOK, moveResponse{Moved: moved, View: h.session.View()})
}

// Previous handles POST /dashboard/previous: move to the adjacent newer date.
func (h *Handler) Previous(w http.ResponseWriter, r *http.Request) {
	moved := h.session.Previous()
	respondJSON(w, http.StatusOK, moveResponse{Moved: moved, View: h.session.View()})
}

// Export handles GET /dashboard/export: the current view as an xlsx workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	view := h.session.View()
	f, err := export.Workbook(view)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="gold-prices-%s.xlsx"`, view.Date))
	if err := f.Write(w); err != nil {
		log.Printf("[ERROR] write export: %v", err)
	}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
