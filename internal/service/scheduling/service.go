package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/dateexpr"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/timeexpr"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/book_meeting"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/cancel_event"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/check_availability"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/reschedule_event"
)

// Service операции планирования, каждая возвращает готовое сообщение для пользователя.
// Ошибки use case сюда не пробрасываются дальше: они превращаются в текст ответа.
type Service struct {
	availability CheckAvailabilityUseCase
	booking      BookMeetingUseCase
	cancellation CancelEventUseCase
	rescheduling RescheduleEventUseCase
	events       ListEventsUseCase
	eventTypes   ListEventTypesUseCase
	loc          *time.Location
	defaultEmail string
	metrics      MetricsRecorder
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	availability CheckAvailabilityUseCase,
	booking BookMeetingUseCase,
	cancellation CancelEventUseCase,
	rescheduling RescheduleEventUseCase,
	events ListEventsUseCase,
	eventTypes ListEventTypesUseCase,
	loc *time.Location,
	defaultEmail string,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		availability: availability,
		booking:      booking,
		cancellation: cancellation,
		rescheduling: rescheduling,
		events:       events,
		eventTypes:   eventTypes,
		loc:          loc,
		defaultEmail: defaultEmail,
		metrics:      metrics,
		logger:       logger,
	}
}

// DefaultEmail email участника по умолчанию
func (s *Service) DefaultEmail() string {
	return s.defaultEmail
}

// CheckAvailability проверяет, свободно ли время
func (s *Service) CheckAvailability(ctx context.Context, req *models.CheckAvailabilityRequest) *models.Reply {
	resp, err := s.availability.Execute(ctx, &check_availability.Request{
		EventTypeID: req.EventTypeID,
		DateText:    req.Date,
		TimeText:    req.Time,
	})
	if err != nil {
		return s.availabilityError(err)
	}
	return renderAvailability(resp)
}

func (s *Service) availabilityError(err error) *models.Reply {
	s.countParseFailure(err)

	switch {
	case errors.Is(err, check_availability.ErrInvalidDate):
		return invalid(dateHint(err))
	case errors.Is(err, check_availability.ErrInvalidTime):
		return invalid(fmt.Sprintf("❌ Couldn't understand the time '%s'. Please try formats like %s",
			timeInput(err), timeexpr.ExampleFormats))
	case errors.Is(err, check_availability.ErrInvalidInput):
		return invalid("❌ " + err.Error())
	default:
		s.logger.Error("CheckAvailability: %v", err)
		return calendarError("❌ Error checking availability: " + collaboratorText(err))
	}
}

// BookMeeting бронирует встречу
func (s *Service) BookMeeting(ctx context.Context, req *models.BookMeetingRequest) *models.Reply {
	email := req.AttendeeEmail
	if email == "" {
		email = s.defaultEmail
	}

	resp, err := s.booking.Execute(ctx, &book_meeting.Request{
		EventTypeID:   req.EventTypeID,
		DateText:      req.Date,
		TimeText:      req.Time,
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: email,
		Reason:        req.Reason,
	})
	if err != nil {
		return s.bookingError(err)
	}

	start := resp.Start
	if !resp.Booking.Start.IsZero() {
		start = resp.Booking.Start.In(s.loc)
	}

	id := resp.Booking.ID
	return &models.Reply{
		Text:      renderBooked(start, resp.Booking.VideoCallURL),
		Outcome:   models.OutcomeBooked,
		BookingID: &id,
	}
}

func (s *Service) bookingError(err error) *models.Reply {
	s.countParseFailure(err)

	var unavailable *book_meeting.SlotUnavailableError
	switch {
	case errors.As(err, &unavailable):
		return renderAvailability(unavailable.Availability)
	case errors.Is(err, book_meeting.ErrInvalidDate):
		return invalid(dateHint(err))
	case errors.Is(err, book_meeting.ErrInvalidTime):
		return invalid(fmt.Sprintf("❌ Couldn't understand time format: '%s'. Please try formats like %s.",
			timeInput(err), timeexpr.ExampleFormats))
	case errors.Is(err, book_meeting.ErrInvalidInput):
		return invalid("❌ " + err.Error())
	case errors.Is(err, book_meeting.ErrSlotTaken):
		return &models.Reply{Text: msgSlotTaken, Outcome: models.OutcomeCalendarError}
	case errors.Is(err, book_meeting.ErrInvalidBookingData):
		return &models.Reply{Text: msgInvalidBookingData, Outcome: models.OutcomeCalendarError}
	case errors.Is(err, book_meeting.ErrEventType):
		s.logger.Error("BookMeeting: %v", err)
		return calendarError("❌ Error getting event details: " + collaboratorText(err))
	default:
		s.logger.Error("BookMeeting: %v", err)
		return calendarError("❌ Error booking meeting: " + collaboratorText(err))
	}
}

// CancelEvent отменяет встречи
func (s *Service) CancelEvent(ctx context.Context, req *models.CancelEventRequest) *models.Reply {
	resp, err := s.cancellation.Execute(ctx, &cancel_event.Request{
		TimeText:     req.Time,
		DateText:     req.Date,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		s.countParseFailure(err)
		switch {
		case errors.Is(err, cancel_event.ErrInvalidDate):
			return invalid(fmt.Sprintf("❌ Could not understand date '%s'. Please use formats like %s",
				dateInput(err), dateexpr.ExampleFormats))
		case errors.Is(err, cancel_event.ErrInvalidTime):
			return invalid(fmt.Sprintf("❌ Invalid time format: %s. Use '2:00 PM' or '14:00'", timeInput(err)))
		default:
			s.logger.Error("CancelEvent: %v", err)
			return calendarError("❌ Error fetching bookings: " + collaboratorText(err))
		}
	}

	switch resp.Outcome {
	case cancel_event.OutcomeAbandoned:
		return &models.Reply{Text: msgCancelAbandoned, Outcome: models.OutcomeAbandoned}
	case cancel_event.OutcomeConfirmationRequired:
		return &models.Reply{Text: renderCancelConfirmation(resp, s.loc), Outcome: models.OutcomeConfirmationRequired}
	case cancel_event.OutcomeNothingToCancel:
		return &models.Reply{Text: renderNothingToCancel(resp), Outcome: models.OutcomeNothingToCancel}
	default:
		return &models.Reply{Text: renderCancelResults(resp.Results, s.loc), Outcome: models.OutcomeCancelled}
	}
}

// RescheduleEvent переносит встречу
func (s *Service) RescheduleEvent(ctx context.Context, req *models.RescheduleEventRequest) *models.Reply {
	resp, err := s.rescheduling.Execute(ctx, &reschedule_event.Request{
		OldTimeText: req.OldTime,
		NewTimeText: req.NewTime,
		DateText:    req.Date,
		NewDateText: req.NewDate,
	})
	if err != nil {
		return s.rescheduleError(err)
	}

	original := fmt.Sprintf("%s on %s", resp.Original.DisplayTitle(), resp.OriginalStart.Format(meetingTimeFormat))

	if resp.ReplacementErr != nil {
		return &models.Reply{
			Text: fmt.Sprintf("⚠️ Reschedule partially completed:\n\n✅ Original meeting cancelled: %s\n❌ New booking failed: %s\n\nPlease book a new meeting manually or try a different time.",
				original, s.replacementFailure(resp.ReplacementErr)),
			Outcome: models.OutcomePartiallyRescheduled,
		}
	}

	start := resp.Replacement.Start
	if !resp.Replacement.Booking.Start.IsZero() {
		start = resp.Replacement.Booking.Start.In(s.loc)
	}
	id := resp.Replacement.Booking.ID

	return &models.Reply{
		Text: fmt.Sprintf("✅ Reschedule completed successfully!\n\n📅 Original meeting cancelled: %s\n📅 New meeting confirmed: %s\n\nIs there anything else I can help you with?",
			original, renderBooked(start, resp.Replacement.Booking.VideoCallURL)),
		Outcome:   models.OutcomeRescheduled,
		BookingID: &id,
	}
}

// replacementFailure причина неудачного второго шага переноса. Ожидающее подтверждение
// здесь не сохраняется, поэтому вопрос о бронировании другого времени не задается.
func (s *Service) replacementFailure(err error) string {
	var unavailable *book_meeting.SlotUnavailableError
	if errors.As(err, &unavailable) {
		return renderUnavailable(unavailable.Availability)
	}
	return s.bookingError(err).Text
}

func (s *Service) rescheduleError(err error) *models.Reply {
	s.countParseFailure(err)

	var notFound *reschedule_event.BookingNotFoundError
	switch {
	case errors.As(err, &notFound):
		return &models.Reply{
			Text:    fmt.Sprintf("❌ No meeting found at %s on %s to reschedule.", notFound.TimeText, notFound.Date.Human()),
			Outcome: models.OutcomeNotFound,
		}
	case errors.Is(err, reschedule_event.ErrInvalidNewDate):
		return invalid(fmt.Sprintf("❌ Could not understand new date '%s'. Please use formats like %s",
			dateInput(err), dateexpr.ExampleFormats))
	case errors.Is(err, reschedule_event.ErrInvalidDate):
		return invalid(fmt.Sprintf("❌ Could not understand date '%s'. Please use formats like %s",
			dateInput(err), dateexpr.ExampleFormats))
	case errors.Is(err, reschedule_event.ErrInvalidTime):
		return invalid(fmt.Sprintf("❌ Invalid time format: %s. Use format like '2:00 PM'", timeInput(err)))
	case errors.Is(err, reschedule_event.ErrInvalidInput):
		return invalid("❌ " + err.Error())
	case errors.Is(err, reschedule_event.ErrUnknownEventType):
		return calendarError(msgUnknownEventType)
	case errors.Is(err, reschedule_event.ErrCancelFailed):
		s.logger.Error("RescheduleEvent: %v", err)
		return calendarError("❌ Failed to cancel original meeting: " + collaboratorText(err))
	default:
		s.logger.Error("RescheduleEvent: %v", err)
		return calendarError("❌ Error finding meeting to reschedule: " + collaboratorText(err))
	}
}

// ListEvents предстоящие встречи пользователя
func (s *Service) ListEvents(ctx context.Context) *models.Reply {
	resp, err := s.events.Execute(ctx)
	if err != nil {
		s.logger.Error("ListEvents: %v", err)
		return calendarError("❌ Failed to fetch calendar: " + collaboratorText(err))
	}

	switch {
	case resp.Total == 0:
		return &models.Reply{Text: msgNoEvents, Outcome: models.OutcomeListed}
	case len(resp.Bookings) == 0:
		return &models.Reply{Text: msgNoValidEvents, Outcome: models.OutcomeListed}
	}

	return &models.Reply{Text: renderSchedule(resp.Bookings, s.loc), Outcome: models.OutcomeListed}
}

// ListEventTypes доступные типы встреч
func (s *Service) ListEventTypes(ctx context.Context) *models.Reply {
	eventTypes, err := s.eventTypes.Execute(ctx)
	if err != nil {
		s.logger.Error("ListEventTypes: %v", err)
		return calendarError("❌ Error fetching event types: " + collaboratorText(err))
	}
	return &models.Reply{Text: renderEventTypes(eventTypes), Outcome: models.OutcomeListed}
}

func (s *Service) countParseFailure(err error) {
	if s.metrics == nil {
		return
	}
	switch {
	case errors.Is(err, dateexpr.ErrUnrecognized):
		s.metrics.IncParseFailure("date")
	case errors.Is(err, timeexpr.ErrUnrecognized):
		s.metrics.IncParseFailure("time")
	}
}

func invalid(text string) *models.Reply {
	return &models.Reply{Text: text, Outcome: models.OutcomeInvalidInput}
}

func calendarError(text string) *models.Reply {
	return &models.Reply{Text: text, Outcome: models.OutcomeCalendarError}
}
