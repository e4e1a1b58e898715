package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/config"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	rescheduleRepo "github.com/m04kA/SMC-SchedulingAssistant/internal/infra/storage/reschedule"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/integrations/calcom"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/dateexpr"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/timeexpr"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/assistant"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling"
	bookMeetingUC "github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/book_meeting"
	cancelEventUC "github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/cancel_event"
	checkAvailabilityUC "github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/check_availability"
	listEventTypesUC "github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/list_event_types"
	listEventsUC "github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/list_events"
	rescheduleEventUC "github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/reschedule_event"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/logger"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/metrics"
)

// attemptJournal журнал переносов: Postgres или заглушка
type attemptJournal interface {
	Create(ctx context.Context, attempt *domain.RescheduleAttempt) error
	UpdateState(ctx context.Context, attempt *domain.RescheduleAttempt) error
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.RescheduleAttempt, error)
}

// app собранные сервисы, общие для serve и chat
type app struct {
	scheduling *scheduling.Service
	assistant  *assistant.Assistant
	journal    attemptJournal
}

// openJournal подключается к Postgres, если журнал включен. close всегда не nil.
func openJournal(cfg *config.Config, log *logger.Logger, m *metrics.Metrics) (attemptJournal, func(), error) {
	if !cfg.Database.Enabled {
		log.Info("Reschedule journal disabled")
		return rescheduleRepo.NopRepository{}, func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database: %v", err)
		}
	}

	if m != nil {
		log.Info("Database metrics collection started")
		return rescheduleRepo.NewRepository(dbmetrics.Wrap(db, m)), closeDB, nil
	}
	return rescheduleRepo.NewRepository(db), closeDB, nil
}

// buildApp собирает клиента календаря, парсеры, use cases и сервисы. m может быть nil.
func buildApp(cfg *config.Config, log *logger.Logger, m *metrics.Metrics, journal attemptJournal) *app {
	loc := cfg.Location()
	email := cfg.Assistant.UserEmail

	// Клиент календаря
	clientOpts := []calcom.Option{calcom.WithRateLimit(cfg.Calendar.RateLimit, cfg.Calendar.RateLimitBurst)}
	if m != nil {
		clientOpts = append(clientOpts, calcom.WithMetrics(m))
	}
	calendar := calcom.NewClient(cfg.Calendar.BaseURL, cfg.Calendar.APIKey, cfg.CalendarTimeout(), log, clientOpts...)
	log.Info("Calendar client initialized (base_url=%s, timeout=%ds, rate_limit=%.1f/s)",
		cfg.Calendar.BaseURL, cfg.Calendar.Timeout, cfg.Calendar.RateLimit)

	// Парсеры
	dateParser := dateexpr.NewParser(loc, dateexpr.RealClock{})
	timeParser := timeexpr.NewParser()

	// Use cases
	availability := checkAvailabilityUC.NewUseCase(calendar, dateParser, timeParser, log)
	booking := bookMeetingUC.NewUseCase(availability, calendar, log)
	cancellation := cancelEventUC.NewUseCase(calendar, dateParser, timeParser, email, log)
	rescheduling := rescheduleEventUC.NewUseCase(calendar, booking, journal, dateParser, timeParser, email, log)
	events := listEventsUC.NewUseCase(calendar, email, log)
	eventTypes := listEventTypesUC.NewUseCase(calendar, log)

	// nil *metrics.Metrics нельзя передавать как интерфейс
	var parseMetrics scheduling.MetricsRecorder
	if m != nil {
		parseMetrics = m
	}

	schedulingSvc := scheduling.NewService(
		availability,
		booking,
		cancellation,
		rescheduling,
		events,
		eventTypes,
		loc,
		email,
		parseMetrics,
		log,
	)

	aliases := make([]assistant.EventTypeAlias, 0, len(cfg.Assistant.EventTypes))
	for _, et := range cfg.Assistant.EventTypes {
		aliases = append(aliases, assistant.EventTypeAlias{Name: et.Name, ID: et.ID})
	}

	// внешний диалоговый слой не подключен: нераспознанные сообщения получают подсказку
	assistantSvc := assistant.New(schedulingSvc, nil, timeParser, assistant.Options{
		EventTypes:         aliases,
		DefaultEventTypeID: cfg.Assistant.DefaultEventTypeID,
	}, log)

	return &app{
		scheduling: schedulingSvc,
		assistant:  assistantSvc,
		journal:    journal,
	}
}
