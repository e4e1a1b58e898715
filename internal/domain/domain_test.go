package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalTime_Rendering(t *testing.T) {
	tests := []struct {
		in    CanonicalTime
		human string
		clock string
	}{
		{CanonicalTime{0, 0}, "12:00 AM", "00:00"},
		{CanonicalTime{9, 5}, "9:05 AM", "09:05"},
		{CanonicalTime{12, 30}, "12:30 PM", "12:30"},
		{CanonicalTime{15, 0}, "3:00 PM", "15:00"},
		{CanonicalTime{23, 59}, "11:59 PM", "23:59"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.human, tt.in.String())
		assert.Equal(t, tt.clock, tt.in.Clock())
	}
}

func TestNewCanonicalTime_Bounds(t *testing.T) {
	_, err := NewCanonicalTime(24, 0)
	assert.Error(t, err)
	_, err = NewCanonicalTime(10, 60)
	assert.Error(t, err)
	ct, err := NewCanonicalTime(23, 59)
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, ct.MinuteOfDay())
}

func TestCanonicalTime_On(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	day := time.Date(2025, 7, 31, 0, 0, 0, 0, loc)
	got := CanonicalTime{Hour: 14, Minute: 30}.On(day)

	assert.Equal(t, time.Date(2025, 7, 31, 18, 30, 0, 0, time.UTC), got.UTC())
}

func TestCanonicalDate_Rendering(t *testing.T) {
	d := CanonicalDate{Date: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), Token: "2025-01-06"}
	assert.Equal(t, "2025-01-06", d.ISO())
	assert.Equal(t, "Monday, January 06", d.Human())
	assert.False(t, d.IsWeek())
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 3, 8, 23, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysBetween(a, b))
	assert.Equal(t, -2, DaysBetween(b, a))
}

func TestParseBulkConfirmation(t *testing.T) {
	assert.Equal(t, Confirmed, ParseBulkConfirmation("confirm"))
	assert.Equal(t, Confirmed, ParseBulkConfirmation("TRUE"))
	assert.Equal(t, Abandoned, ParseBulkConfirmation("abandoned"))
	assert.Equal(t, AwaitingConfirmation, ParseBulkConfirmation(""))
}

func TestRescheduleAttempt_Transitions(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	a := NewRescheduleAttempt(Booking{ID: 7, EventTypeID: 3, Start: now}, "2025-01-02", CanonicalTime{Hour: 10}, now)

	assert.Equal(t, RescheduleLocated, a.State)
	assert.Equal(t, "Meeting", a.BookingTitle)
	assert.False(t, a.State.IsTerminal())

	a.MarkOriginalCancelled(now.Add(time.Second))
	assert.Equal(t, RescheduleOriginalCancelled, a.State)

	a.MarkReplacementFailed("slot taken", now.Add(2*time.Second))
	assert.True(t, a.State.IsTerminal())
	assert.Equal(t, "slot taken", a.FailureReason)
	assert.Nil(t, a.NewBookingID)
}
