package list_events

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// UseCase use case получения предстоящих встреч пользователя
type UseCase struct {
	calendar  CalendarClient
	userEmail string
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarClient, userEmail string, logger Logger) *UseCase {
	return &UseCase{
		calendar:  calendar,
		userEmail: userEmail,
		logger:    logger,
	}
}

// Execute возвращает предстоящие встречи
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	uc.logger.Info("ListEvents: attendee=%s", uc.userEmail)

	// 1. Сначала с фильтром по статусу
	bookings, err := uc.calendar.ListBookings(ctx, domain.BookingsFilter{
		AttendeeEmail: uc.userEmail,
		Status:        StatusUpcoming,
	})
	if err != nil {
		// 2. Повторяем без статуса
		uc.logger.Warn("ListEvents: status=%s query failed, retrying without status: %v", StatusUpcoming, err)
		bookings, err = uc.calendar.ListBookings(ctx, domain.BookingsFilter{AttendeeEmail: uc.userEmail})
		if err != nil {
			uc.logger.Error("ListEvents: failed to list bookings: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrCalendar, err)
		}
	}

	// 3. Убираем отмененные и сортируем
	active := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		active = append(active, b)
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Start.Before(active[j].Start)
	})

	uc.logger.Info("ListEvents: %d of %d bookings are active", len(active), len(bookings))

	return &Response{Bookings: active, Total: len(bookings)}, nil
}
