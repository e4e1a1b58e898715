package reschedule_event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/dateexpr"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/timeexpr"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/book_meeting"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/logger"
)

const testEmail = "jane.doe@example.com"

type fakeCalendar struct {
	bookings  []domain.Booking
	cancelErr error
	cancelled []int64
	filter    domain.BookingsFilter
}

func (f *fakeCalendar) ListBookings(_ context.Context, filter domain.BookingsFilter) ([]domain.Booking, error) {
	f.filter = filter
	return f.bookings, nil
}

func (f *fakeCalendar) CancelBooking(_ context.Context, id int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeBooker struct {
	resp  *book_meeting.Response
	err   error
	calls []*book_meeting.Request
}

func (f *fakeBooker) Execute(_ context.Context, req *book_meeting.Request) (*book_meeting.Response, error) {
	f.calls = append(f.calls, req)
	return f.resp, f.err
}

type fakeRecorder struct {
	states []domain.RescheduleState
	err    error
}

func (f *fakeRecorder) Create(_ context.Context, a *domain.RescheduleAttempt) error {
	f.states = append(f.states, a.State)
	return f.err
}

func (f *fakeRecorder) UpdateState(_ context.Context, a *domain.RescheduleAttempt) error {
	f.states = append(f.states, a.State)
	return f.err
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type env struct {
	uc       *UseCase
	loc      *time.Location
	calendar *fakeCalendar
	booker   *fakeBooker
	recorder *fakeRecorder
}

func setup(t *testing.T) *env {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2025, 7, 30, 9, 0, 0, 0, loc)
	e := &env{
		loc:      loc,
		calendar: &fakeCalendar{},
		booker:   &fakeBooker{},
		recorder: &fakeRecorder{},
	}
	e.uc = NewUseCase(e.calendar, e.booker, e.recorder,
		dateexpr.NewParser(loc, fixedClock{now: now}), timeexpr.NewParser(), testEmail, logger.NewNop())
	e.uc.timeProvider = fixedClock{now: now}
	return e
}

func (e *env) meetingAt(id int64, hour int) domain.Booking {
	start := time.Date(2025, 7, 31, hour, 0, 0, 0, e.loc)
	return domain.Booking{
		ID:          id,
		Title:       "Design review",
		Status:      domain.StatusAccepted,
		Start:       start.UTC(),
		End:         start.Add(30 * time.Minute).UTC(),
		EventTypeID: 2886676,
	}
}

func TestExecute_Completed(t *testing.T) {
	e := setup(t)
	e.calendar.bookings = []domain.Booking{e.meetingAt(10, 9), e.meetingAt(11, 14)}
	e.booker.resp = &book_meeting.Response{Booking: &domain.Booking{ID: 99}}

	resp, err := e.uc.Execute(context.Background(), &Request{
		OldTimeText: "2pm",
		NewTimeText: "4pm",
		DateText:    "tomorrow",
	})

	require.NoError(t, err)
	assert.True(t, resp.Completed())
	assert.Equal(t, int64(11), resp.Original.ID)
	assert.Equal(t, []int64{11}, e.calendar.cancelled)
	require.NotNil(t, resp.Attempt.NewBookingID)
	assert.Equal(t, int64(99), *resp.Attempt.NewBookingID)

	require.Len(t, e.booker.calls, 1)
	call := e.booker.calls[0]
	assert.Equal(t, int64(2886676), call.EventTypeID)
	assert.Equal(t, "2025-07-31", call.DateText)
	assert.Equal(t, "4pm", call.TimeText)
	assert.Equal(t, "jane.doe", call.AttendeeName)
	assert.Equal(t, testEmail, call.AttendeeEmail)
	assert.Equal(t, "Rescheduled from 2pm on July 31", call.Reason)

	assert.Equal(t, []domain.RescheduleState{
		domain.RescheduleLocated,
		domain.RescheduleOriginalCancelled,
		domain.RescheduleCompleted,
	}, e.recorder.states)
}

func TestExecute_NewDate(t *testing.T) {
	e := setup(t)
	e.calendar.bookings = []domain.Booking{e.meetingAt(11, 14)}
	e.booker.resp = &book_meeting.Response{Booking: &domain.Booking{ID: 99}}
	newDate := "this friday"

	_, err := e.uc.Execute(context.Background(), &Request{
		OldTimeText: "2pm",
		NewTimeText: "10am",
		DateText:    "tomorrow",
		NewDateText: &newDate,
	})

	require.NoError(t, err)
	require.Len(t, e.booker.calls, 1)
	assert.Equal(t, "2025-08-01", e.booker.calls[0].DateText)
}

func TestExecute_PartialFailureDoesNotRebookOriginal(t *testing.T) {
	e := setup(t)
	e.calendar.bookings = []domain.Booking{e.meetingAt(11, 14)}
	e.booker.err = book_meeting.ErrSlotTaken

	resp, err := e.uc.Execute(context.Background(), &Request{OldTimeText: "2pm", NewTimeText: "4pm"})

	require.NoError(t, err)
	assert.False(t, resp.Completed())
	assert.ErrorIs(t, resp.ReplacementErr, book_meeting.ErrSlotTaken)
	assert.Equal(t, domain.RescheduleReplacementFailed, resp.Attempt.State)
	assert.NotEmpty(t, resp.Attempt.FailureReason)
	assert.Equal(t, []int64{11}, e.calendar.cancelled)
	assert.Len(t, e.booker.calls, 1)
}

func TestExecute_NotFound(t *testing.T) {
	e := setup(t)
	cancelled := e.meetingAt(11, 14)
	cancelled.Status = domain.StatusCancelled
	e.calendar.bookings = []domain.Booking{e.meetingAt(10, 9), cancelled}

	_, err := e.uc.Execute(context.Background(), &Request{OldTimeText: "2pm", NewTimeText: "4pm"})

	require.ErrorIs(t, err, ErrBookingNotFound)
	var notFound *BookingNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "2pm", notFound.TimeText)
	assert.Equal(t, "2025-07-31", notFound.Date.ISO())
	assert.Empty(t, e.calendar.cancelled)
	assert.Empty(t, e.booker.calls)
	assert.Empty(t, e.recorder.states)
}

func TestExecute_InputErrorsBeforeAnyChange(t *testing.T) {
	e := setup(t)
	e.calendar.bookings = []domain.Booking{e.meetingAt(11, 14)}
	badDate := "someday"

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"old date", &Request{OldTimeText: "2pm", NewTimeText: "4pm", DateText: "someday"}, ErrInvalidDate},
		{"old time", &Request{OldTimeText: "teatime", NewTimeText: "4pm"}, ErrInvalidTime},
		{"new time", &Request{OldTimeText: "2pm", NewTimeText: "later"}, ErrInvalidTime},
		{"new date", &Request{OldTimeText: "2pm", NewTimeText: "4pm", NewDateText: &badDate}, ErrInvalidNewDate},
		{"missing", &Request{OldTimeText: "2pm"}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, e.calendar.cancelled)
}

func TestExecute_CancelFailure(t *testing.T) {
	e := setup(t)
	e.calendar.bookings = []domain.Booking{e.meetingAt(11, 14)}
	e.calendar.cancelErr = errors.New("boom")

	_, err := e.uc.Execute(context.Background(), &Request{OldTimeText: "2pm", NewTimeText: "4pm"})

	require.ErrorIs(t, err, ErrCancelFailed)
	assert.Empty(t, e.booker.calls)
}

func TestExecute_MissingEventType(t *testing.T) {
	e := setup(t)
	m := e.meetingAt(11, 14)
	m.EventTypeID = 0
	e.calendar.bookings = []domain.Booking{m}

	_, err := e.uc.Execute(context.Background(), &Request{OldTimeText: "2pm", NewTimeText: "4pm"})

	require.ErrorIs(t, err, ErrUnknownEventType)
	assert.Empty(t, e.calendar.cancelled)
}

func TestExecute_JournalErrorsDoNotStopReschedule(t *testing.T) {
	e := setup(t)
	e.calendar.bookings = []domain.Booking{e.meetingAt(11, 14)}
	e.booker.resp = &book_meeting.Response{Booking: &domain.Booking{ID: 99}}
	e.recorder.err = errors.New("db down")

	resp, err := e.uc.Execute(context.Background(), &Request{OldTimeText: "2pm", NewTimeText: "4pm"})

	require.NoError(t, err)
	assert.True(t, resp.Completed())
}
