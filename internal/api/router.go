package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/luisjosebv3773/Alcaravan-Health-sub000/docs"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/api/handler"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/api/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	profileHandler       *handler.ProfileHandler
	metricsHandler       *handler.MetricsHandler
	healthProfileHandler *handler.HealthProfileHandler
	appointmentHandler   *handler.AppointmentHandler
	scheduleHandler      *handler.ScheduleHandler
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	metricsHandler *handler.MetricsHandler,
	healthProfileHandler *handler.HealthProfileHandler,
	appointmentHandler *handler.AppointmentHandler,
	scheduleHandler *handler.ScheduleHandler,
) *Router {
	return &Router{
		profileHandler:       profileHandler,
		metricsHandler:       metricsHandler,
		healthProfileHandler: healthProfileHandler,
		appointmentHandler:   appointmentHandler,
		scheduleHandler:      scheduleHandler,
	}
}

// Setup builds the HTTP handler. A nil metrics skips request metrics and a
// non-positive rateLimit disables rate limiting.
func (rt *Router) Setup(log zerolog.Logger, metrics *middleware.Metrics, rateLimit int) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(log))
	if metrics != nil {
		r.Use(metrics.Middleware)
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		if rateLimit > 0 {
			r.Use(middleware.RateLimitByIP(rateLimit, time.Minute))
		}

		r.Post("/metrics/calculate", rt.metricsHandler.Calculate)

		// Profiles
		r.Route("/profiles", func(r chi.Router) {
			r.Post("/", rt.profileHandler.Create)
			r.Get("/{profileId}", rt.profileHandler.GetByID)
		})

		// Health profiles (nested under patients)
		r.Route("/patients/{patientId}/health-profile", func(r chi.Router) {
			r.Put("/", rt.healthProfileHandler.Upsert)
			r.Get("/", rt.healthProfileHandler.Get)
			r.Post("/summary", rt.healthProfileHandler.Summary)
		})

		// Appointments
		r.Route("/appointments", func(r chi.Router) {
			r.Post("/", rt.appointmentHandler.Create)
			r.Patch("/{appointmentId}/status", rt.appointmentHandler.UpdateStatus)
		})

		// Professional agenda
		r.Route("/professionals/{professionalId}", func(r chi.Router) {
			r.Get("/appointments", rt.appointmentHandler.List)
			r.Get("/schedule", rt.scheduleHandler.DayView)
			r.Get("/schedule/now", rt.scheduleHandler.Now)
			r.Get("/schedule/now/stream", rt.scheduleHandler.Stream)
		})
	})

	return r
}
