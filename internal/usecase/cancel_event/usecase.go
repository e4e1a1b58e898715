package cancel_event

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/dateexpr"
)

// UseCase use case отмены встреч
type UseCase struct {
	calendar   CalendarClient
	dateParser DateParser
	timeParser TimeParser
	userEmail  string
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendar CalendarClient,
	dateParser DateParser,
	timeParser TimeParser,
	userEmail string,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendar:   calendar,
		dateParser: dateParser,
		timeParser: timeParser,
		userEmail:  userEmail,
		logger:     logger,
	}
}

// Execute отменяет встречи пользователя в диапазоне дат.
// Отмена за всю неделю и отмена нескольких встреч без указания времени
// выполняются только с domain.Confirmed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		req = &Request{}
	}
	timeText := strings.TrimSpace(textOrEmpty(req.TimeText))
	dateText := strings.TrimSpace(textOrEmpty(req.DateText))

	uc.logger.Info("CancelEvent: date=%q, time=%q, confirmation=%s", dateText, timeText, req.Confirmation)

	// 1. Пользователь отказался от массовой отмены
	if req.Confirmation == domain.Abandoned {
		uc.logger.Info("CancelEvent: bulk cancellation abandoned")
		return &Response{Outcome: OutcomeAbandoned, TimeText: timeText}, nil
	}

	// 2. Определяем диапазон дат
	if dateText == "" {
		dateText = domain.TokenToday
	}
	date, err := uc.dateParser.Parse(dateText)
	if err != nil {
		uc.logger.Warn("CancelEvent: failed to parse date %q: %v", dateText, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	rangeStart := date.Date
	rangeEnd := date.Date
	if date.IsWeek() {
		if req.Confirmation != domain.Confirmed {
			uc.logger.Info("CancelEvent: whole week requested without confirmation")
			return &Response{
				Outcome:    OutcomeConfirmationRequired,
				Reason:     ReasonWholeWeek,
				RangeStart: rangeStart,
				RangeEnd:   dateexpr.EndOfWeek(rangeStart),
				TimeText:   timeText,
			}, nil
		}
		rangeEnd = dateexpr.EndOfWeek(rangeStart)
	}

	// 3. Разбираем время, если оно указано
	var wanted *domain.CanonicalTime
	if timeText != "" {
		t, err := uc.timeParser.Parse(timeText)
		if err != nil {
			uc.logger.Warn("CancelEvent: failed to parse time %q: %v", timeText, err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidTime, err)
		}
		wanted = &t
	}

	// 4. Получаем встречи за весь локальный диапазон
	from := rangeStart.UTC()
	to := rangeEnd.AddDate(0, 0, 1).Add(-time.Second).UTC()
	bookings, err := uc.calendar.ListBookings(ctx, domain.BookingsFilter{
		AttendeeEmail: uc.userEmail,
		StartTime:     &from,
		EndTime:       &to,
	})
	if err != nil {
		uc.logger.Error("CancelEvent: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrCalendar, err)
	}

	// 5. Отбираем подходящие встречи
	matching := filterBookings(bookings, wanted, uc.dateParser.Location())

	resp := &Response{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		TimeText:   timeText,
		Matching:   matching,
	}

	if len(matching) == 0 {
		uc.logger.Info("CancelEvent: nothing to cancel between %s and %s",
			rangeStart.Format(domain.DateFormat), rangeEnd.Format(domain.DateFormat))
		resp.Outcome = OutcomeNothingToCancel
		return resp, nil
	}

	// 6. Несколько встреч без времени требуют подтверждения
	if len(matching) > 1 && wanted == nil && req.Confirmation != domain.Confirmed {
		uc.logger.Info("CancelEvent: %d meetings found, confirmation required", len(matching))
		resp.Outcome = OutcomeConfirmationRequired
		resp.Reason = ReasonMultipleMeetings
		return resp, nil
	}

	// 7. Отменяем каждую встречу
	resp.Outcome = OutcomeCompleted
	resp.Results = make([]Result, 0, len(matching))
	for _, booking := range matching {
		err := uc.calendar.CancelBooking(ctx, booking.ID)
		if err != nil {
			uc.logger.Error("CancelEvent: failed to cancel booking id=%d: %v", booking.ID, err)
		} else {
			uc.logger.Info("CancelEvent: booking id=%d cancelled", booking.ID)
		}
		resp.Results = append(resp.Results, Result{Booking: booking, Err: err})
	}

	return resp, nil
}

// filterBookings убирает отмененные встречи и, если задано время, оставляет
// только встречи с точным совпадением часа и минуты в часовом поясе пользователя
func filterBookings(bookings []domain.Booking, wanted *domain.CanonicalTime, loc *time.Location) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		if wanted != nil && !domain.CanonicalTimeOf(b.Start.In(loc)).Equal(*wanted) {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
