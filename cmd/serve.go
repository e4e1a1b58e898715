package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	bookMeetingHandler "github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers/book_meeting"
	cancelEventHandler "github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers/cancel_event"
	chatHandler "github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers/chat"
	checkAvailabilityHandler "github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers/check_availability"
	closeSessionHandler "github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers/close_session"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers/health"
	listEventTypesHandler "github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers/list_event_types"
	listEventsHandler "github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers/list_events"
	openSessionHandler "github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers/open_session"
	rescheduleAttemptsHandler "github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers/reschedule_attempts"
	rescheduleEventHandler "github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers/reschedule_event"
	sessionMessageHandler "github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers/session_message"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/config"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/session"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/logger"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/metrics"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			return serve(cfg, log)
		},
	}
}

func serve(cfg *config.Config, log *logger.Logger) error {
	log.Info("Starting SMC-SchedulingAssistant...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал переносов
	journal, closeJournal, err := openJournal(cfg, log, metricsCollector)
	if err != nil {
		return err
	}
	defer closeJournal()

	application := buildApp(cfg, log, metricsCollector, journal)

	// nil *metrics.Metrics нельзя передавать как интерфейс
	var gauge session.Gauge
	if metricsCollector != nil {
		gauge = metricsCollector
	}
	sessions := session.NewManager(gauge,
		session.WithIdleTTL(cfg.SessionIdleTTL()),
		session.WithMaxSessions(cfg.Sessions.MaxOpen),
	)

	// Очистка простаивающих сессий
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.Run(sweepCtx, cfg.SessionSweepInterval())
	log.Info("Sessions: idle_ttl=%ds, max_open=%d", cfg.Sessions.IdleTTL, cfg.Sessions.MaxOpen)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(application.scheduling, log)
	bookMeeting := bookMeetingHandler.NewHandler(application.scheduling, log)
	cancelEvent := cancelEventHandler.NewHandler(application.scheduling, log)
	rescheduleEvent := rescheduleEventHandler.NewHandler(application.scheduling, log)
	listEvents := listEventsHandler.NewHandler(application.scheduling, log)
	listEventTypes := listEventTypesHandler.NewHandler(application.scheduling, log)
	openSession := openSessionHandler.NewHandler(sessions, log)
	sessionMessage := sessionMessageHandler.NewHandler(sessions, application.assistant, log)
	closeSession := closeSessionHandler.NewHandler(sessions, log)
	chat := chatHandler.NewHandler(application.assistant, log)
	rescheduleAttempts := rescheduleAttemptsHandler.NewHandler(application.journal, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Диалог без сессии
	r.HandleFunc("/chat", chat.Handle).Methods(http.MethodPost)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Операции планирования ---
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", bookMeeting.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listEvents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/cancel", cancelEvent.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/reschedule", rescheduleEvent.Handle).Methods(http.MethodPost)
	api.HandleFunc("/event-types", listEventTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reschedule-attempts", rescheduleAttempts.Handle).Methods(http.MethodGet)

	// --- Сессии диалога ---
	api.HandleFunc("/sessions", openSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/messages", sessionMessage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (open sessions dropped: %d)", sessions.Len())
	return nil
}
