package handler

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/service"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/pkg/problem"
	"github.com/rs/zerolog"
)

type ScheduleHandler struct {
	service service.ScheduleService
	window  schedule.Window
	log     zerolog.Logger
}

// NewScheduleHandler creates a handler whose grid defaults to window.
func NewScheduleHandler(service service.ScheduleService, window schedule.Window, log zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{service: service, window: window, log: log}
}

// DayView handles GET /v1/professionals/{professionalId}/schedule
// @Summary Lay out a professional's day
// @Description Position each appointment of the day on a pixel grid and report the live time marker. Appointments outside the visible hours are listed under "hidden".
// @Tags schedule
// @Produce json
// @Param professionalId path string true "Professional profile ID" format(uuid)
// @Param date query string false "Day to show (YYYY-MM-DD), defaults to today"
// @Param start_hour query int false "First visible hour" default(8)
// @Param end_hour query int false "Hour after the last visible one" default(17)
// @Param px_per_minute query number false "Vertical scale" default(1.5)
// @Success 200 {object} domain.DayView
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /professionals/{professionalId}/schedule [get]
func (h *ScheduleHandler) DayView(w http.ResponseWriter, r *http.Request) {
	professionalID, err := uuid.Parse(chi.URLParam(r, "professionalId"))
	if err != nil {
		problem.BadRequest("Invalid professional ID format").Write(w)
		return
	}

	window, fieldErrors := h.parseWindow(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	view, err := h.service.DayView(r.Context(), professionalID, r.URL.Query().Get("date"), window)
	if err != nil {
		if writeDomainError(w, r, err, "Professional not found") {
			return
		}
		problem.InternalError("Failed to build schedule").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Now handles GET /v1/professionals/{professionalId}/schedule/now
// @Summary Current time marker
// @Description Position of the live time line for the given day. Not visible on other days or outside the visible hours.
// @Tags schedule
// @Produce json
// @Param professionalId path string true "Professional profile ID" format(uuid)
// @Param date query string false "Day being viewed (YYYY-MM-DD), defaults to today"
// @Param start_hour query int false "First visible hour" default(8)
// @Param end_hour query int false "Hour after the last visible one" default(17)
// @Param px_per_minute query number false "Vertical scale" default(1.5)
// @Success 200 {object} schedule.Marker
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /professionals/{professionalId}/schedule/now [get]
func (h *ScheduleHandler) Now(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "professionalId")); err != nil {
		problem.BadRequest("Invalid professional ID format").Write(w)
		return
	}

	window, fieldErrors := h.parseWindow(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	marker, err := h.service.Now(r.Context(), r.URL.Query().Get("date"), window)
	if err != nil {
		if writeDomainError(w, r, err, "") {
			return
		}
		problem.InternalError("Failed to compute time marker").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, marker)
}

// Stream handles GET /v1/professionals/{professionalId}/schedule/now/stream
// @Summary Stream the current time marker
// @Description Server-sent events: one "now" event immediately and one per tick until the client disconnects.
// @Tags schedule
// @Produce text/event-stream
// @Param professionalId path string true "Professional profile ID" format(uuid)
// @Param date query string false "Day being viewed (YYYY-MM-DD), defaults to today"
// @Param start_hour query int false "First visible hour" default(8)
// @Param end_hour query int false "Hour after the last visible one" default(17)
// @Param px_per_minute query number false "Vertical scale" default(1.5)
// @Success 200 {object} schedule.Marker "event stream of markers"
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /professionals/{professionalId}/schedule/now/stream [get]
func (h *ScheduleHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "professionalId")); err != nil {
		problem.BadRequest("Invalid professional ID format").Write(w)
		return
	}

	window, fieldErrors := h.parseWindow(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	date := r.URL.Query().Get("date")
	// Validate before committing to a 200 stream.
	if _, err := h.service.Now(r.Context(), date, window); err != nil {
		if writeDomainError(w, r, err, "") {
			return
		}
		problem.InternalError("Failed to compute time marker").Write(w)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		problem.InternalError("Streaming is not supported").Write(w)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	markers := make(chan schedule.Marker)
	watchErr := make(chan error, 1)
	go func() {
		defer close(markers)
		watchErr <- h.service.Watch(ctx, date, window, func(m schedule.Marker) {
			select {
			case markers <- m:
			case <-ctx.Done():
			}
		})
	}()

	for m := range markers {
		data, err := json.Marshal(m)
		if err != nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "event: now\ndata: %s\n\n", data); err != nil {
			h.log.Debug().Err(err).Msg("schedule stream write failed")
			continue
		}
		flusher.Flush()
	}

	if err := <-watchErr; err != nil {
		h.log.Warn().Err(err).Msg("schedule stream ended with error")
	}
}

// parseWindow overlays the window query parameters on the configured grid.
func (h *ScheduleHandler) parseWindow(r *http.Request) (schedule.Window, []problem.FieldError) {
	window := h.window
	var fieldErrors []problem.FieldError
	q := r.URL.Query()

	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"start_hour", &window.StartHour},
		{"end_hour", &window.EndHour},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		hour, err := strconv.Atoi(v)
		if err != nil || hour < 0 || hour > 24 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   p.name,
				Message: "must be an integer between 0 and 24",
			})
			continue
		}
		*p.dst = hour
	}

	if v := q.Get("px_per_minute"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(scale) || scale <= 0 || scale > 100 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "px_per_minute",
				Message: "must be a number greater than 0 and at most 100",
			})
		} else {
			window.PixelsPerMinute = scale
		}
	}

	if len(fieldErrors) > 0 {
		return window, fieldErrors
	}

	return window, nil
}
