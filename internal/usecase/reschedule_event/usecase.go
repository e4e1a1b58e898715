package reschedule_event

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/dateexpr"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/book_meeting"
)

// UseCase use case переноса встречи: отмена исходной, затем бронирование новой.
// Если вторая фаза не удалась, исходная встреча не восстанавливается.
type UseCase struct {
	calendar     CalendarClient
	booker       Booker
	attempts     AttemptRecorder
	dateParser   DateParser
	timeParser   TimeParser
	userEmail    string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendar CalendarClient,
	booker Booker,
	attempts AttemptRecorder,
	dateParser DateParser,
	timeParser TimeParser,
	userEmail string,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendar:     calendar,
		booker:       booker,
		attempts:     attempts,
		dateParser:   dateParser,
		timeParser:   timeParser,
		userEmail:    userEmail,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет перенос встречи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleEvent: validation failed: %v", err)
		return nil, err
	}

	dateText := strings.TrimSpace(req.DateText)
	if dateText == "" {
		dateText = domain.TokenTomorrow
	}

	uc.logger.Info("RescheduleEvent: old=%q on %q, new=%q", req.OldTimeText, dateText, req.NewTimeText)

	// 2. Разбираем все входные данные до любых изменений в календаре
	date, err := uc.dateParser.Parse(dateText)
	if err != nil {
		uc.logger.Warn("RescheduleEvent: failed to parse date %q: %v", dateText, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	oldTime, err := uc.timeParser.Parse(req.OldTimeText)
	if err != nil {
		uc.logger.Warn("RescheduleEvent: failed to parse old time %q: %v", req.OldTimeText, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidTime, err)
	}

	newTime, err := uc.timeParser.Parse(req.NewTimeText)
	if err != nil {
		uc.logger.Warn("RescheduleEvent: failed to parse new time %q: %v", req.NewTimeText, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidTime, err)
	}

	var newDate *domain.CanonicalDate
	if req.NewDateText != nil && strings.TrimSpace(*req.NewDateText) != "" {
		d, err := uc.dateParser.Parse(*req.NewDateText)
		if err != nil {
			uc.logger.Warn("RescheduleEvent: failed to parse new date %q: %v", *req.NewDateText, err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidNewDate, err)
		}
		newDate = &d
	}

	// 3. Ищем встречу на указанное время
	loc := uc.dateParser.Location()
	rangeEnd := date.Date
	if date.IsWeek() {
		rangeEnd = dateexpr.EndOfWeek(date.Date)
	}

	from := date.Date.UTC()
	to := rangeEnd.AddDate(0, 0, 1).Add(-time.Second).UTC()
	bookings, err := uc.calendar.ListBookings(ctx, domain.BookingsFilter{
		AttendeeEmail: uc.userEmail,
		StartTime:     &from,
		EndTime:       &to,
	})
	if err != nil {
		uc.logger.Error("RescheduleEvent: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrCalendar, err)
	}

	original, ok := findAt(bookings, oldTime, loc)
	if !ok {
		uc.logger.Warn("RescheduleEvent: no booking at %s on %s", oldTime.Clock(), date.ISO())
		return nil, &BookingNotFoundError{TimeText: req.OldTimeText, Date: date}
	}

	if original.EventTypeID <= 0 {
		uc.logger.Warn("RescheduleEvent: booking id=%d has no event type", original.ID)
		return nil, ErrUnknownEventType
	}

	originalStart := original.Start.In(loc)
	targetDate := domain.CanonicalDate{Date: domain.StartOfDay(originalStart), Token: originalStart.Format(domain.DateFormat)}
	if newDate != nil {
		targetDate = *newDate
	}

	attempt := domain.NewRescheduleAttempt(original, targetDate.Token, newTime, uc.timeProvider.Now())
	uc.record(ctx, attempt, true)

	resp := &Response{
		Attempt:       attempt,
		Original:      original,
		OriginalStart: originalStart,
		OldTimeText:   req.OldTimeText,
	}

	// 4. Фаза 1: отменяем исходную встречу
	if err := uc.calendar.CancelBooking(ctx, original.ID); err != nil {
		uc.logger.Error("RescheduleEvent: failed to cancel booking id=%d: %v", original.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrCancelFailed, err)
	}
	attempt.MarkOriginalCancelled(uc.timeProvider.Now())
	uc.record(ctx, attempt, false)

	// 5. Фаза 2: бронируем новое время
	replacement, err := uc.booker.Execute(ctx, &book_meeting.Request{
		EventTypeID:   original.EventTypeID,
		DateText:      targetDate.Token,
		TimeText:      req.NewTimeText,
		AttendeeName:  emailLocalPart(uc.userEmail),
		AttendeeEmail: uc.userEmail,
		Reason: fmt.Sprintf("Rescheduled from %s on %s",
			req.OldTimeText, originalStart.Format(domain.ShortDateFormat)),
	})
	if err != nil {
		uc.logger.Error("RescheduleEvent: original id=%d cancelled, replacement failed: %v", original.ID, err)
		attempt.MarkReplacementFailed(err.Error(), uc.timeProvider.Now())
		uc.record(ctx, attempt, false)
		resp.ReplacementErr = err
		return resp, nil
	}

	attempt.MarkCompleted(replacement.Booking.ID, uc.timeProvider.Now())
	uc.record(ctx, attempt, false)
	resp.Replacement = replacement

	uc.logger.Info("RescheduleEvent: booking id=%d moved to id=%d", original.ID, replacement.Booking.ID)

	return resp, nil
}

// record пишет состояние попытки в журнал, ошибки журнала не прерывают перенос
func (uc *UseCase) record(ctx context.Context, attempt *domain.RescheduleAttempt, create bool) {
	var err error
	if create {
		err = uc.attempts.Create(ctx, attempt)
	} else {
		err = uc.attempts.UpdateState(ctx, attempt)
	}
	if err != nil {
		uc.logger.Warn("RescheduleEvent: failed to record attempt %s (%s): %v", attempt.ID, attempt.State, err)
	}
}

// findAt первая неотмененная встреча, начинающаяся ровно в указанное локальное время
func findAt(bookings []domain.Booking, at domain.CanonicalTime, loc *time.Location) (domain.Booking, bool) {
	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		if domain.CanonicalTimeOf(b.Start.In(loc)).Equal(at) {
			return b, true
		}
	}
	return domain.Booking{}, false
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
