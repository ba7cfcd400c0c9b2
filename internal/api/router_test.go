package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/api/handler"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(rateLimit int) http.Handler {
	clock := func() time.Time { return time.Date(2024, 6, 14, 10, 20, 0, 0, time.UTC) }
	window := schedule.Window{StartHour: 8, EndHour: 17, PixelsPerMinute: 1.5, NudgePx: 1}

	metricsService := service.NewMetricsService(clock)
	scheduleService := service.NewScheduleService(nil, nil, service.ScheduleOptions{Clock: clock})

	router := NewRouter(
		handler.NewProfileHandler(service.NewProfileService(nil)),
		handler.NewMetricsHandler(metricsService),
		handler.NewHealthProfileHandler(nil, nil),
		handler.NewAppointmentHandler(nil),
		handler.NewScheduleHandler(scheduleService, window, zerolog.Nop()),
	)
	return router.Setup(zerolog.Nop(), nil, rateLimit)
}

func TestRouter_Routes(t *testing.T) {
	h := newTestRouter(0)
	professionalID := uuid.NewString()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK, wantBody: `"status":"ok"`},
		{name: "swagger document", method: http.MethodGet, path: "/swagger/doc.json", wantStatus: http.StatusOK, wantBody: "Alcaravan Health API"},
		{
			name:       "metrics preview",
			method:     http.MethodPost,
			path:       "/v1/metrics/calculate",
			body:       `{"weight": 80, "height": 180, "waist": 90, "hip": 100, "neck": 40, "gender": "Masculino", "age": 30}`,
			wantStatus: http.StatusOK,
			wantBody:   `"bmr":1780`,
		},
		{
			name:       "now marker",
			method:     http.MethodGet,
			path:       "/v1/professionals/" + professionalID + "/schedule/now?date=2024-06-14",
			wantStatus: http.StatusOK,
			wantBody:   `"top_offset_px":211`,
		},
		{name: "unknown route", method: http.MethodGet, path: "/v1/users", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodDelete, path: "/v1/metrics/calculate", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	h := newTestRouter(1)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/professionals/"+uuid.NewString()+"/schedule/now", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)

	// Health checks are not rate limited.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
