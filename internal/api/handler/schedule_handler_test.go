package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWindow = schedule.Window{StartHour: 8, EndHour: 17, PixelsPerMinute: 1.5, NudgePx: 1}

func TestScheduleHandler_DayView_WindowOverrides(t *testing.T) {
	var got schedule.Window
	var gotDate string
	handler := NewScheduleHandler(&MockScheduleService{
		dayViewFunc: func(ctx context.Context, id uuid.UUID, date string, w schedule.Window) (*domain.DayView, error) {
			got, gotDate = w, date
			return &domain.DayView{ProfessionalID: id.String(), Date: date, Window: w}, nil
		},
	}, testWindow, zerolog.Nop())

	id := uuid.NewString()
	rec := httptest.NewRecorder()
	target := "/v1/professionals/" + id + "/schedule?date=2024-06-14&start_hour=7&end_hour=19&px_per_minute=2"
	handler.DayView(rec, newRequest(http.MethodGet, target, "", map[string]string{"professionalId": id}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "2024-06-14", gotDate)
	assert.Equal(t, schedule.Window{StartHour: 7, EndHour: 19, PixelsPerMinute: 2, NudgePx: 1}, got)
}

func TestScheduleHandler_DayView_Errors(t *testing.T) {
	tests := []struct {
		name           string
		professionalID string
		query          string
		err            error
		wantStatusCode int
		wantField      string
	}{
		{name: "bad professional ID", professionalID: "x", wantStatusCode: http.StatusBadRequest},
		{name: "hour above 24", professionalID: uuid.NewString(), query: "?end_hour=25", wantStatusCode: http.StatusUnprocessableEntity, wantField: "end_hour"},
		{name: "negative hour", professionalID: uuid.NewString(), query: "?start_hour=-1", wantStatusCode: http.StatusUnprocessableEntity, wantField: "start_hour"},
		{name: "zero scale", professionalID: uuid.NewString(), query: "?px_per_minute=0", wantStatusCode: http.StatusUnprocessableEntity, wantField: "px_per_minute"},
		{name: "NaN scale", professionalID: uuid.NewString(), query: "?px_per_minute=NaN", wantStatusCode: http.StatusUnprocessableEntity, wantField: "px_per_minute"},
		{name: "service rejects input", professionalID: uuid.NewString(), query: "?date=yesterday", err: domain.ErrInvalidInput, wantStatusCode: http.StatusBadRequest},
		{name: "unknown professional", professionalID: uuid.NewString(), err: domain.ErrNotFound, wantStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewScheduleHandler(&MockScheduleService{
				dayViewFunc: func(ctx context.Context, id uuid.UUID, date string, w schedule.Window) (*domain.DayView, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.DayView{}, nil
				},
			}, testWindow, zerolog.Nop())

			rec := httptest.NewRecorder()
			target := "/v1/professionals/" + tt.professionalID + "/schedule" + tt.query
			handler.DayView(rec, newRequest(http.MethodGet, target, "", map[string]string{"professionalId": tt.professionalID}))

			require.Equal(t, tt.wantStatusCode, rec.Code, rec.Body.String())
			if tt.wantField != "" {
				assert.Contains(t, rec.Body.String(), `"field":"`+tt.wantField+`"`)
			}
		})
	}
}

func TestScheduleHandler_Now(t *testing.T) {
	at := time.Date(2024, 6, 14, 10, 20, 0, 0, time.UTC)
	handler := NewScheduleHandler(&MockScheduleService{
		nowFunc: func(ctx context.Context, date string, w schedule.Window) (schedule.Marker, error) {
			return schedule.Evaluate(at, at, w), nil
		},
	}, testWindow, zerolog.Nop())

	id := uuid.NewString()
	rec := httptest.NewRecorder()
	handler.Now(rec, newRequest(http.MethodGet, "/v1/professionals/"+id+"/schedule/now", "", map[string]string{"professionalId": id}))

	require.Equal(t, http.StatusOK, rec.Code)
	var marker schedule.Marker
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&marker))
	assert.True(t, marker.Visible)
	assert.InDelta(t, 211, marker.TopOffsetPx, 1e-9)
}

func TestScheduleHandler_Stream(t *testing.T) {
	at := time.Date(2024, 6, 14, 10, 20, 0, 0, time.UTC)
	handler := NewScheduleHandler(&MockScheduleService{
		nowFunc: func(ctx context.Context, date string, w schedule.Window) (schedule.Marker, error) {
			return schedule.Evaluate(at, at, w), nil
		},
		watchFunc: func(ctx context.Context, date string, w schedule.Window, emit func(schedule.Marker)) error {
			emit(schedule.Evaluate(at, at, w))
			emit(schedule.Evaluate(at.Add(time.Minute), at, w))
			return nil
		},
	}, testWindow, zerolog.Nop())

	id := uuid.NewString()
	rec := httptest.NewRecorder()
	handler.Stream(rec, newRequest(http.MethodGet, "/v1/professionals/"+id+"/schedule/now/stream", "", map[string]string{"professionalId": id}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: now\n"))
	assert.Contains(t, body, `"top_offset_px":211`)
	assert.Contains(t, body, `"top_offset_px":212.5`)
}

func TestScheduleHandler_Stream_InvalidDate(t *testing.T) {
	watched := false
	handler := NewScheduleHandler(&MockScheduleService{
		nowFunc: func(ctx context.Context, date string, w schedule.Window) (schedule.Marker, error) {
			return schedule.Marker{}, domain.ErrInvalidInput
		},
		watchFunc: func(ctx context.Context, date string, w schedule.Window, emit func(schedule.Marker)) error {
			watched = true
			return nil
		},
	}, testWindow, zerolog.Nop())

	id := uuid.NewString()
	rec := httptest.NewRecorder()
	handler.Stream(rec, newRequest(http.MethodGet, "/v1/professionals/"+id+"/schedule/now/stream?date=nope", "", map[string]string{"professionalId": id}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, watched)
}
