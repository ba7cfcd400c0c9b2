package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/api"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/api/handler"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/api/middleware"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/config"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/llm"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/repository"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/seed"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/service"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/telemetry"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const serviceName = "alcaravan-api"

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := config.NewLogger(cfg)

			db, err := config.NewDatabase(cfg, log)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := migrate(db); err != nil {
				return err
			}
			log.Info().Msg("database migration completed")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample profiles, health profiles and appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := config.NewLogger(cfg)

			db, err := config.NewDatabase(cfg, log)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			return seed.Run(cmd.Context(), db, log, time.Now())
		},
	}
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Profile{}, &domain.HealthProfile{}, &domain.Appointment{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func runServer(ctx context.Context) error {
	// Load configuration
	cfg := config.Load()
	log := config.NewLogger(cfg)

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize tracer: %w", err)
	}
	shutdownMeter, err := telemetry.InitMeter(ctx, cfg, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize meter: %w", err)
	}

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := migrate(db); err != nil {
		return err
	}
	log.Info().Msg("database migration completed")

	if cfg.Seed {
		log.Info().Msg("seeding database with sample data (SEED=true)")
		if err := seed.Run(ctx, db, log, time.Now()); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	apiHandler, err := buildHandler(cfg, db, log)
	if err != nil {
		return err
	}

	addr := ":" + cfg.Port
	srv := newServer(addr, apiHandler)

	go func() {
		log.Info().Str("addr", addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("server shutdown incomplete")
	}
	if err := shutdownMeter(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("meter shutdown failed")
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("tracer shutdown failed")
	}

	log.Info().Msg("server stopped")
	return nil
}

// newServer builds the HTTP server. Request contexts derive from a base
// context that is cancelled when Shutdown starts, so long-lived schedule
// streams end instead of holding the shutdown until its timeout.
func newServer(addr string, h http.Handler) *http.Server {
	baseCtx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancel)
	return srv
}

func buildHandler(cfg *config.Config, db *gorm.DB, log zerolog.Logger) (http.Handler, error) {
	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	healthProfileRepo := repository.NewHealthProfileRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	// The summarizer stays a nil interface when no API key is configured.
	var summarizer llm.HealthSummarizer
	if client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISummaryModel); client != nil {
		summarizer = client
	} else {
		log.Warn().Msg("OpenAI API key not configured, summary endpoint will be unavailable")
	}
	resilient := llm.NewResilientSummarizer(summarizer, llm.DefaultResilienceConfig(), log)

	// Initialize services
	profileService := service.NewProfileService(profileRepo)
	metricsService := service.NewMetricsService(time.Now)
	healthProfileService := service.NewHealthProfileService(healthProfileRepo, profileRepo, metricsService, time.Now)
	summaryService := service.NewSummaryService(resilient, healthProfileRepo, profileRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, profileRepo)
	scheduleService := service.NewScheduleService(appointmentRepo, profileRepo, service.ScheduleOptions{
		BlockHeightPx: cfg.ScheduleBlockHeightPx,
		TickInterval:  cfg.ScheduleTickInterval,
	})

	// Initialize handlers
	router := api.NewRouter(
		handler.NewProfileHandler(profileService),
		handler.NewMetricsHandler(metricsService),
		handler.NewHealthProfileHandler(healthProfileService, summaryService),
		handler.NewAppointmentHandler(appointmentService),
		handler.NewScheduleHandler(scheduleService, cfg.ScheduleWindow(), log),
	)

	metrics, err := middleware.NewMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP metrics: %w", err)
	}

	return router.Setup(log, metrics, cfg.RateLimitPerMinute), nil
}
