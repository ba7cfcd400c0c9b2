package handler

import (
	"encoding/json"
	"net/http"

	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/api/validation"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/service"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/pkg/problem"
)

type MetricsHandler struct {
	service service.MetricsService
}

func NewMetricsHandler(service service.MetricsService) *MetricsHandler {
	return &MetricsHandler{service: service}
}

// Calculate handles POST /v1/metrics/calculate
// @Summary Calculate body composition metrics
// @Description Compute BMI, waist-to-hip ratio, Navy body fat, lean and water mass, protein share, Mifflin-St Jeor BMR and visceral fat level. Nothing is stored. Missing measurements yield 0 for the metrics that need them.
// @Tags metrics
// @Accept json
// @Produce json
// @Param request body domain.CalculateMetricsRequest true "Measurements and demographics"
// @Success 200 {object} domain.MetricsResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /metrics/calculate [post]
func (h *MetricsHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req domain.CalculateMetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Calculate(r.Context(), &req)
	if err != nil {
		if writeDomainError(w, r, err, "") {
			return
		}
		problem.InternalError("Failed to calculate metrics").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
