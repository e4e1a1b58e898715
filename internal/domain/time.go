package domain

import (
	"fmt"
	"time"
)

// CanonicalTime time of day, 24-hour. Both fields are always set.
type CanonicalTime struct {
	Hour   int
	Minute int
}

// NewCanonicalTime validates hour 0-23 and minute 0-59
func NewCanonicalTime(hour, minute int) (CanonicalTime, error) {
	if hour < 0 || hour > 23 {
		return CanonicalTime{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return CanonicalTime{}, fmt.Errorf("minute %d out of range", minute)
	}
	return CanonicalTime{Hour: hour, Minute: minute}, nil
}

// CanonicalTimeOf extracts the wall-clock time of t in its own location
func CanonicalTimeOf(t time.Time) CanonicalTime {
	return CanonicalTime{Hour: t.Hour(), Minute: t.Minute()}
}

// String renders 12-hour time with meridiem: "3:00 PM"
func (t CanonicalTime) String() string {
	return t.On(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)).Format(SlotTimeFormat)
}

// Clock renders "15:04"
func (t CanonicalTime) Clock() string {
	return t.On(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)).Format(TimeFormat)
}

func (t CanonicalTime) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

func (t CanonicalTime) Equal(other CanonicalTime) bool {
	return t.Hour == other.Hour && t.Minute == other.Minute
}

// On places the time on the calendar day of date, in date's location
func (t CanonicalTime) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, date.Location())
}

// CanonicalDate resolved calendar date plus the token sent to the calendar tooling.
// Date is local midnight in the user's timezone; Token names the same day.
type CanonicalDate struct {
	Date  time.Time
	Token string
}

// ISO renders YYYY-MM-DD
func (d CanonicalDate) ISO() string {
	return d.Date.Format(DateFormat)
}

// Human renders "Monday, January 02"
func (d CanonicalDate) Human() string {
	return d.Date.Format(HumanDateFormat)
}

// IsWeek true for the "this week" range token
func (d CanonicalDate) IsWeek() bool {
	return d.Token == TokenThisWeek
}

// StartOfDay local midnight of t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay compares calendar days, both values taken in their own locations
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween whole calendar days from a to b (negative if b is earlier)
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
