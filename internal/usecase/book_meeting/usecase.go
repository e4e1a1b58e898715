package book_meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/integrations/calcom"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/check_availability"
)

// UseCase use case бронирования встречи
type UseCase struct {
	availability AvailabilityChecker
	calendar     CalendarClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityChecker, calendar CalendarClient, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		calendar:     calendar,
		logger:       logger,
	}
}

// Execute бронирует встречу. Бронирование создается только если время
// точно совпадает со свободным слотом, иначе возвращается *SlotUnavailableError.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookMeeting: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BookMeeting: event_type=%d, date=%q, time=%q, attendee=%s",
		req.EventTypeID, req.DateText, req.TimeText, req.AttendeeEmail)

	// 2. Повторная проверка доступности
	timeText := req.TimeText
	availability, err := uc.availability.Execute(ctx, &check_availability.Request{
		EventTypeID: req.EventTypeID,
		DateText:    req.DateText,
		TimeText:    &timeText,
	})
	if err != nil {
		switch {
		case errors.Is(err, check_availability.ErrInvalidDate):
			return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
		case errors.Is(err, check_availability.ErrInvalidTime):
			return nil, fmt.Errorf("%w: %w", ErrInvalidTime, err)
		default:
			uc.logger.Error("BookMeeting: availability check failed: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrCalendar, err)
		}
	}

	if !availability.Match.IsAvailable() {
		uc.logger.Warn("BookMeeting: %s on %s is not available (%s)",
			availability.RequestedTime, availability.Date.ISO(), availability.Match.Kind)
		return nil, &SlotUnavailableError{Availability: availability}
	}

	// 3. Длительность встречи
	eventType, err := uc.calendar.GetEventType(ctx, req.EventTypeID)
	if err != nil {
		uc.logger.Error("BookMeeting: failed to get event type id=%d: %v", req.EventTypeID, err)
		return nil, fmt.Errorf("%w: %w", ErrEventType, err)
	}

	duration := eventType.LengthMinutes
	if duration <= 0 {
		duration = domain.DefaultEventLengthMinutes
	}

	// 4. Начало и конец в часовом поясе пользователя
	start := availability.RequestedTime.On(availability.Date.Date)
	end := start.Add(time.Duration(duration) * time.Minute)

	// 5. Создаем бронирование
	booking, err := uc.calendar.CreateBooking(ctx, &calcom.CreateBookingRequest{
		EventTypeID:   req.EventTypeID,
		Start:         start.UTC(),
		End:           end.UTC(),
		AttendeeName:  attendeeName(req),
		AttendeeEmail: req.AttendeeEmail,
		Notes:         req.Reason,
		TimeZone:      start.Location().String(),
	})
	if err != nil {
		switch {
		case errors.Is(err, calcom.ErrSlotUnavailable):
			uc.logger.Warn("BookMeeting: calendar rejected slot %s: %v", start.Format(time.RFC3339), err)
			return nil, fmt.Errorf("%w: %w", ErrSlotTaken, err)
		case errors.Is(err, calcom.ErrValidation):
			uc.logger.Warn("BookMeeting: calendar rejected booking data: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidBookingData, err)
		default:
			uc.logger.Error("BookMeeting: failed to create booking: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrCalendar, err)
		}
	}

	uc.logger.Info("BookMeeting: booking id=%d created for %s", booking.ID, start.Format(time.RFC3339))

	return &Response{
		Booking:         booking,
		Date:            availability.Date,
		Time:            *availability.RequestedTime,
		Start:           start,
		DurationMinutes: duration,
	}, nil
}
