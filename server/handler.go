package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mindmate-ai/mindmate/history"
	"github.com/mindmate-ai/mindmate/mindmate"
)

// Reasoner is the slice of the core client the handler needs.
// *mindmate.Client satisfies it; tests stub it.
type Reasoner interface {
	Solve(ctx context.Context, req mindmate.ReasoningRequest) mindmate.ReasoningResult
}

// Handler handles HTTP requests for the reasoning API.
type Handler struct {
	client Reasoner
	store  history.Store
	detail mindmate.DetailLevel
}

// NewHandler creates a new Handler instance.
func NewHandler(client Reasoner, store history.Store, detail mindmate.DetailLevel) *Handler {
	return &Handler{client: client, store: store, detail: detail}
}

// Router builds the chi router for the API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/v1/solve", h.Solve)
	r.Get("/v1/history", h.ListHistory)
	r.Get("/v1/history/{id}", h.GetHistory)
	r.Get("/v1/history/{id}/report", h.DownloadReport)
	r.Get("/healthz", h.Health)

	return r
}

// solveRequest is the POST /v1/solve body.
type solveRequest struct {
	Problem string `json:"problem"`
	Model   string `json:"model,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// solveResponse echoes the solved record, including its history id.
type solveResponse struct {
	ID      string   `json:"id"`
	Problem string   `json:"problem"`
	Steps   []string `json:"steps"`
	Answer  string   `json:"answer"`
}

// Solve handles POST /v1/solve: runs the think-then-answer flow and appends
// the outcome to the history store.
func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Problem) == "" {
		h.sendError(w, http.StatusBadRequest, "problem must not be empty")
		return
	}

	detail := h.detail
	if req.Detail != "" {
		d, err := parseDetail(req.Detail)
		if err != nil {
			h.sendError(w, http.StatusBadRequest, err.Error())
			return
		}
		detail = d
	}

	res := h.client.Solve(r.Context(), mindmate.ReasoningRequest{
		Problem: req.Problem,
		Model:   req.Model,
		Detail:  detail,
	})

	rec, err := h.store.Add(r.Context(), history.Record{
		Problem: res.Problem,
		Steps:   res.Steps,
		Answer:  res.Answer,
	})
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.sendJSON(w, http.StatusOK, solveResponse{
		ID:      rec.ID,
		Problem: rec.Problem,
		Steps:   rec.Steps,
		Answer:  rec.Answer,
	})
}

// ListHistory handles GET /v1/history.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context())
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []history.Record{}
	}
	h.sendJSON(w, http.StatusOK, records)
}

// GetHistory handles GET /v1/history/{id}.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	rec, err := h.lookup(w, r)
	if rec == nil || err != nil {
		return
	}
	h.sendJSON(w, http.StatusOK, rec)
}

// DownloadReport handles GET /v1/history/{id}/report: serves the flat text
// report as a plain-text attachment.
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	rec, err := h.lookup(w, r)
	if rec == nil || err != nil {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="thinking_report.txt"`)
	_ = mindmate.WriteReport(w, mindmate.ReasoningResult{
		Problem: rec.Problem,
		Steps:   rec.Steps,
		Answer:  rec.Answer,
	})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*history.Record, error) {
	id := chi.URLParam(r, "id")
	rec, err := h.store.Get(r.Context(), id)
	if errors.Is(err, history.ErrNotFound) {
		h.sendError(w, http.StatusNotFound, "record not found")
		return nil, err
	}
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, err.Error())
		return nil, err
	}
	return rec, nil
}

func (h *Handler) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) sendError(w http.ResponseWriter, status int, msg string) {
	h.sendJSON(w, status, map[string]string{"error": msg})
}
