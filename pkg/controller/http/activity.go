package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/m-mizutani/ghtrail/pkg/activity"
	"github.com/m-mizutani/ghtrail/pkg/domain/interfaces"
	"github.com/m-mizutani/ghtrail/pkg/usecase"
)

// TimelineResponse is the body of GET /api/activity/{username}
type TimelineResponse struct {
	Username string          `json:"username"`
	Events   []activity.Line `json:"events"`
	Message  string          `json:"message,omitempty"`
}

type activityHandler struct {
	uc interfaces.ActivityUseCase
}

func newActivityHandler(uc interfaces.ActivityUseCase) *activityHandler {
	return &activityHandler{uc: uc}
}

func (h *activityHandler) timeline(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	lines, err := h.uc.Timeline(r.Context(), username)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := TimelineResponse{
		Username: username,
		Events:   lines,
	}
	if len(lines) == 0 {
		resp.Message = usecase.NoActivityMessage
	}
	writeJSON(w, r, resp)
}

func (h *activityHandler) view(w http.ResponseWriter, r *http.Request) {
	result, err := h.uc.View(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "view"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, result)
}

func (h *activityHandler) starred(w http.ResponseWriter, r *http.Request) {
	records, err := h.uc.Starred(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, records)
}

func (h *activityHandler) repositories(w http.ResponseWriter, r *http.Request) {
	records, err := h.uc.Repositories(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, records)
}

func (h *activityHandler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.uc.Summary(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, summary)
}
