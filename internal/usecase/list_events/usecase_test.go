package list_events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/logger"
)

type fakeCalendar struct {
	results []result
	filters []domain.BookingsFilter
}

type result struct {
	bookings []domain.Booking
	err      error
}

func (f *fakeCalendar) ListBookings(_ context.Context, filter domain.BookingsFilter) ([]domain.Booking, error) {
	f.filters = append(f.filters, filter)
	r := f.results[len(f.filters)-1]
	return r.bookings, r.err
}

func at(id int64, day, hour int, status domain.BookingStatus) domain.Booking {
	return domain.Booking{
		ID:     id,
		Status: status,
		Start:  time.Date(2025, 8, day, hour, 0, 0, 0, time.UTC),
	}
}

func TestExecute_FiltersAndSorts(t *testing.T) {
	cal := &fakeCalendar{results: []result{{bookings: []domain.Booking{
		at(3, 2, 15, domain.StatusAccepted),
		at(1, 1, 18, domain.StatusAccepted),
		at(2, 1, 16, "cancelled"),
		at(4, 1, 13, domain.StatusPending),
	}}}}
	uc := NewUseCase(cal, "jane@example.com", logger.NewNop())

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 3)
	assert.Equal(t, []int64{4, 1, 3}, []int64{resp.Bookings[0].ID, resp.Bookings[1].ID, resp.Bookings[2].ID})
	assert.Equal(t, 4, resp.Total)

	require.Len(t, cal.filters, 1)
	assert.Equal(t, StatusUpcoming, cal.filters[0].Status)
	assert.Equal(t, "jane@example.com", cal.filters[0].AttendeeEmail)
}

func TestExecute_FallsBackWithoutStatus(t *testing.T) {
	cal := &fakeCalendar{results: []result{
		{err: errors.New("bad status")},
		{bookings: []domain.Booking{at(1, 1, 18, domain.StatusAccepted)}},
	}}
	uc := NewUseCase(cal, "jane@example.com", logger.NewNop())

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	require.Len(t, cal.filters, 2)
	assert.Empty(t, cal.filters[1].Status)
}

func TestExecute_BothQueriesFail(t *testing.T) {
	cal := &fakeCalendar{results: []result{{err: errors.New("a")}, {err: errors.New("b")}}}
	uc := NewUseCase(cal, "jane@example.com", logger.NewNop())

	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrCalendar)
}
