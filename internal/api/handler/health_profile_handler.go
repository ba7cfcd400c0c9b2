package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/api/validation"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/llm"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/service"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

type HealthProfileHandler struct {
	service        service.HealthProfileService
	summaryService service.SummaryService
}

func NewHealthProfileHandler(service service.HealthProfileService, summaryService service.SummaryService) *HealthProfileHandler {
	return &HealthProfileHandler{
		service:        service,
		summaryService: summaryService,
	}
}

// Upsert handles PUT /v1/patients/{patientId}/health-profile
// @Summary Save a patient's measurements
// @Description Store the measurements and the metrics derived from them. Gender and age come from the patient profile. Replaces any previous health profile.
// @Tags health-profiles
// @Accept json
// @Produce json
// @Param patientId path string true "Patient profile ID" format(uuid)
// @Param request body domain.UpsertHealthProfileRequest true "Measurements"
// @Success 200 {object} domain.HealthProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Patient not found"
// @Failure 422 {object} problem.Problem "Invalid body or profile is not a patient"
// @Failure 500 {object} problem.Problem
// @Router /patients/{patientId}/health-profile [put]
func (h *HealthProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(chi.URLParam(r, "patientId"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	var req domain.UpsertHealthProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Upsert(r.Context(), patientID, &req)
	if err != nil {
		if writeDomainError(w, r, err, "Patient not found") {
			return
		}
		problem.InternalError("Failed to save health profile").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /v1/patients/{patientId}/health-profile
// @Summary Get a patient's health profile
// @Tags health-profiles
// @Produce json
// @Param patientId path string true "Patient profile ID" format(uuid)
// @Success 200 {object} domain.HealthProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Patient or health profile not found"
// @Failure 422 {object} problem.Problem "Profile is not a patient"
// @Failure 500 {object} problem.Problem
// @Router /patients/{patientId}/health-profile [get]
func (h *HealthProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(chi.URLParam(r, "patientId"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	resp, err := h.service.Get(r.Context(), patientID)
	if err != nil {
		if writeDomainError(w, r, err, "Health profile not found") {
			return
		}
		problem.InternalError("Failed to get health profile").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Summary handles POST /v1/patients/{patientId}/health-profile/summary
// @Summary Generate an AI summary of a health profile
// @Description Ask the language model for a short, non-medical narrative of the stored metrics.
// @Tags health-profiles
// @Produce json
// @Param patientId path string true "Patient profile ID" format(uuid)
// @Success 200 {object} domain.SummaryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Patient or health profile not found"
// @Failure 502 {object} problem.Problem "Model request failed"
// @Failure 503 {object} problem.Problem "Summaries not configured or temporarily disabled"
// @Failure 500 {object} problem.Problem
// @Router /patients/{patientId}/health-profile/summary [post]
func (h *HealthProfileHandler) Summary(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(chi.URLParam(r, "patientId"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	resp, err := h.summaryService.Generate(r.Context(), patientID)
	if err != nil {
		if writeDomainError(w, r, err, "Health profile not found") {
			return
		}
		if errors.Is(err, llm.ErrSummarizerUnavailable) {
			problem.ServiceUnavailable("Health summaries are not available").Write(w)
			return
		}
		if errors.Is(err, llm.ErrSummaryRequest) || errors.Is(err, llm.ErrSummaryResponse) {
			problem.BadGateway("Failed to generate health summary").Write(w)
			return
		}
		problem.InternalError("Failed to generate health summary").Write(w)
		return
	}

	// Expose the trace ID so a summary can be matched with its trace.
	if span := trace.SpanFromContext(r.Context()); span.SpanContext().IsValid() {
		w.Header().Set("X-Trace-Id", span.SpanContext().TraceID().String())
	}

	writeJSON(w, http.StatusOK, resp)
}
