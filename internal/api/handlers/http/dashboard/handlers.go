package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"swiftaid/internal/domain"
	"swiftaid/internal/middleware"
	"swiftaid/internal/view"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go

type FleetOps interface {
	List(ctx context.Context) (view.AmbulanceList, error)
	Add(ctx context.Context, req domain.AddAmbulanceRequest) (domain.Outcome, error)
	Toggle(ctx context.Context, req domain.ToggleAmbulanceRequest) (domain.Outcome, error)
}

type CaseOps interface {
	Decide(ctx context.Context, sessionID, incidentID string, status domain.CaseStatus) (domain.Outcome, *view.AssignPopup, error)
	Assign(ctx context.Context, sessionID, ambulanceID string) (domain.Outcome, error)
	CloseAssign(ctx context.Context, sessionID string) error
	DeleteIncident(ctx context.Context, incidentID string) (domain.Outcome, error)
	DeleteDecision(ctx context.Context, incidentID string) (domain.Outcome, error)
}

type ProfileOps interface {
	Save(ctx context.Context, req domain.UpdateProfileRequest) (domain.Outcome, error)
}

type ResolvedOps interface {
	List(ctx context.Context) (view.ResolvedList, error)
	Delete(ctx context.Context, caseID string) (domain.Outcome, error)
	DocumentURL(caseID string) string
}

type Handler struct {
	logger   *slog.Logger
	Fleet    FleetOps
	Cases    CaseOps
	Profile  ProfileOps
	Resolved ResolvedOps
}

func NewHandler(logger *slog.Logger, fleet FleetOps, cases CaseOps, profile ProfileOps, resolved ResolvedOps) *Handler {
	return &Handler{
		logger:   logger,
		Fleet:    fleet,
		Cases:    cases,
		Profile:  profile,
		Resolved: resolved,
	}
}

// Section activates one sidebar tab. An unknown id answers 404 but
// still hands back the home state so the page never renders empty.
func (h *Handler) Section(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	target := chi.URLParam(r, "id")

	nav, err := view.Navigate(target)
	if err != nil {
		l.Warn("unknown section", slog.String("target", target))
		h.writeJSON(w, http.StatusNotFound, map[string]any{"error": "unknown section", "nav": nav})
		return
	}
	h.writeJSON(w, http.StatusOK, nav)
}

func (h *Handler) AmbulanceList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AmbulanceList", slog.String("remote", r.RemoteAddr))

	list, err := h.Fleet.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) AmbulanceAdd(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.AddAmbulanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	out, err := h.Fleet.Add(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) AmbulanceToggle(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.ToggleAmbulanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	req.AmbulanceID = chi.URLParam(r, "id")

	out, err := h.Fleet.Toggle(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) ProfileSave(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	if err := r.ParseMultipartForm(1 << 20); err != nil {
		l.Warn("invalid form", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form"})
		return
	}
	req := domain.UpdateProfileRequest{
		HospitalName: r.FormValue("hospital_name"),
		Phone:        r.FormValue("phone"),
		Location:     r.FormValue("location"),
	}

	out, err := h.Profile.Save(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) CaseDecide(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	incidentID := chi.URLParam(r, "id")

	var req domain.DecideCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	out, popup, err := h.Cases.Decide(r.Context(), middleware.SessionID(r.Context()), incidentID, req.Status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := map[string]any{"outcome": out}
	if popup != nil {
		resp["popup"] = popup
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) CaseAssign(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.AssignAmbulanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.AmbulanceID == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ambulance_id required"})
		return
	}

	out, err := h.Cases.Assign(r.Context(), middleware.SessionID(r.Context()), req.AmbulanceID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) CaseAssignClose(w http.ResponseWriter, r *http.Request) {
	if err := h.Cases.CloseAssign(r.Context(), middleware.SessionID(r.Context())); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CaseDelete(w http.ResponseWriter, r *http.Request) {
	out, err := h.Cases.DeleteIncident(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) CaseDecisionDelete(w http.ResponseWriter, r *http.Request) {
	out, err := h.Cases.DeleteDecision(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) ResolvedList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Resolved.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) ResolvedDelete(w http.ResponseWriter, r *http.Request) {
	out, err := h.Resolved.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// ResolvedDocument hands the browser off to the upstream download URL;
// the document never passes through the console.
func (h *Handler) ResolvedDocument(w http.ResponseWriter, r *http.Request) {
	url := h.Resolved.DocumentURL(chi.URLParam(r, "id"))
	http.Redirect(w, r, url, http.StatusFound)
}

// MapMarkers renders the incident array the dashboard page was loaded
// with into plottable markers.
func (h *Handler) MapMarkers(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var incidents []domain.Incident
	if err := json.NewDecoder(r.Body).Decode(&incidents); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	h.writeJSON(w, http.StatusOK, view.RenderMap(incidents))
}
