package check_availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/slotmatch"
)

// UseCase use case проверки доступности времени
type UseCase struct {
	calendar   CalendarClient
	dateParser DateParser
	timeParser TimeParser
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendar CalendarClient,
	dateParser DateParser,
	timeParser TimeParser,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendar:   calendar,
		dateParser: dateParser,
		timeParser: timeParser,
		logger:     logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CheckAvailability: event_type=%d, date=%q, time=%q",
		req.EventTypeID, req.DateText, textOrEmpty(req.TimeText))

	// 2. Разбираем дату
	date, err := uc.dateParser.Parse(req.DateText)
	if err != nil {
		uc.logger.Warn("CheckAvailability: failed to parse date %q: %v", req.DateText, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	// 3. Разбираем время, если оно указано
	var requested *domain.CanonicalTime
	requestedText := strings.TrimSpace(textOrEmpty(req.TimeText))
	if requestedText != "" {
		t, err := uc.timeParser.Parse(requestedText)
		if err != nil {
			uc.logger.Warn("CheckAvailability: failed to parse time %q: %v", requestedText, err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidTime, err)
		}
		requested = &t
	}

	// 4. Запрашиваем слоты на весь локальный день
	loc := uc.dateParser.Location()
	dayStart := domain.StartOfDay(date.Date.In(loc))
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Second)

	instants, err := uc.calendar.GetSlots(ctx, req.EventTypeID, dayStart, dayEnd, loc.String())
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get slots for %s: %v", date.ISO(), err)
		return nil, fmt.Errorf("%w: %w", ErrCalendar, err)
	}

	// 5. Переводим в часовой пояс пользователя и сопоставляем
	slots := toLocalSlots(instants, dayStart, loc)
	match := slotmatch.Match(requested, slots)

	uc.logger.Info("CheckAvailability: %d slots on %s, match=%s", len(slots), date.ISO(), match.Kind)

	return &Response{
		EventTypeID:   req.EventTypeID,
		Date:          date,
		RequestedText: requestedText,
		RequestedTime: requested,
		Slots:         slots,
		Match:         match,
	}, nil
}

// toLocalSlots оставляет только слоты, попадающие на запрошенный локальный день, порядок сохраняется
func toLocalSlots(instants []time.Time, day time.Time, loc *time.Location) []domain.AvailableSlot {
	slots := make([]domain.AvailableSlot, 0, len(instants))
	for _, instant := range instants {
		local := instant.In(loc)
		if !domain.SameDay(local, day) {
			continue
		}
		slots = append(slots, domain.AvailableSlot{
			LocalTime:     domain.CanonicalTimeOf(local),
			SourceInstant: instant,
		})
	}
	return slots
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
