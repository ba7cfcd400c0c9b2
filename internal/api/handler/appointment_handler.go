package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/api/validation"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/service"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/pkg/pagination"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/pkg/problem"
)

type AppointmentHandler struct {
	service service.AppointmentService
}

func NewAppointmentHandler(service service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Create handles POST /v1/appointments
// @Summary Book an appointment
// @Description Book a patient with a doctor or nutritionist. The time label accepts 24-hour ("14:30") and 12-hour ("02:30 PM") forms.
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body domain.CreateAppointmentRequest true "Appointment data"
// @Success 201 {object} domain.AppointmentResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Patient or professional not found"
// @Failure 409 {object} problem.Problem "Slot already booked"
// @Failure 422 {object} problem.Problem "Invalid body or wrong profile roles"
// @Failure 500 {object} problem.Problem
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	appointment, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if writeDomainError(w, r, err, "Patient or professional not found") {
			return
		}
		problem.InternalError("Failed to create appointment").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, appointment.ToResponse())
}

// List handles GET /v1/professionals/{professionalId}/appointments
// @Summary List a professional's appointments
// @Description Ordered by date and start time, with cursor-based pagination.
// @Tags appointments
// @Produce json
// @Param professionalId path string true "Professional profile ID" format(uuid)
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param status query string false "Status filter" Enums(pending, confirmed, cancelled, completed)
// @Param limit query int false "Page size (1-100)" default(20)
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} domain.AppointmentListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /professionals/{professionalId}/appointments [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	professionalID, err := uuid.Parse(chi.URLParam(r, "professionalId"))
	if err != nil {
		problem.BadRequest("Invalid professional ID format").Write(w)
		return
	}

	filter, fieldErrors := parseAppointmentFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), professionalID, filter)
	if err != nil {
		if writeDomainError(w, r, err, "Professional not found") {
			return
		}
		problem.InternalError("Failed to list appointments").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// UpdateStatus handles PATCH /v1/appointments/{appointmentId}/status
// @Summary Change an appointment's status
// @Description Pending appointments can be confirmed or cancelled; confirmed ones can be completed or cancelled.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentId path string true "Appointment ID" format(uuid)
// @Param request body domain.UpdateAppointmentStatusRequest true "New status"
// @Success 200 {object} domain.AppointmentResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 409 {object} problem.Problem "Transition not allowed"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /appointments/{appointmentId}/status [patch]
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(chi.URLParam(r, "appointmentId"))
	if err != nil {
		problem.BadRequest("Invalid appointment ID format").Write(w)
		return
	}

	var req domain.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	appointment, err := h.service.UpdateStatus(r.Context(), appointmentID, req.Status)
	if err != nil {
		if writeDomainError(w, r, err, "Appointment not found") {
			return
		}
		problem.InternalError("Failed to update appointment").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, appointment.ToResponse())
}

func parseAppointmentFilter(r *http.Request) (domain.AppointmentFilter, []problem.FieldError) {
	var filter domain.AppointmentFilter
	var fieldErrors []problem.FieldError
	q := r.URL.Query()

	for _, name := range []string{"from", "to"} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, v); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   name,
				Message: "must be a date in YYYY-MM-DD format",
			})
			continue
		}
		if name == "from" {
			filter.From = v
		} else {
			filter.To = v
		}
	}

	if status := domain.AppointmentStatus(q.Get("status")); status != "" {
		switch status {
		case domain.AppointmentPending, domain.AppointmentConfirmed, domain.AppointmentCancelled, domain.AppointmentCompleted:
			filter.Status = status
		default:
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "status",
				Message: "must be one of: pending confirmed cancelled completed",
			})
		}
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	if cursor := q.Get("cursor"); cursor != "" {
		if _, err := pagination.DecodeCursor(cursor); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "cursor",
				Message: "is not a valid cursor",
			})
		} else {
			filter.Cursor = cursor
		}
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
