package domain

import (
	"strings"
	"time"
)

// BookingStatus status as reported by the calendar
type BookingStatus string

const (
	StatusAccepted  BookingStatus = "ACCEPTED"
	StatusPending   BookingStatus = "PENDING"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusRejected  BookingStatus = "REJECTED"
)

// Booking a meeting in the remote calendar
type Booking struct {
	ID           int64
	UID          string
	Title        string
	Status       BookingStatus
	Start        time.Time // UTC
	End          time.Time // UTC
	EventTypeID  int64
	VideoCallURL string
	HostName     string
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return strings.EqualFold(string(b.Status), string(StatusCancelled))
}

// DisplayTitle title with a fallback for untitled bookings
func (b *Booking) DisplayTitle() string {
	if strings.TrimSpace(b.Title) == "" {
		return "Meeting"
	}
	return b.Title
}

// EventType bookable meeting template
type EventType struct {
	ID            int64
	Title         string
	LengthMinutes int
}

// BookingsFilter query for listing the attendee's bookings
type BookingsFilter struct {
	AttendeeEmail string
	Status        string     // "upcoming", пусто = без фильтра
	StartTime     *time.Time // UTC
	EndTime       *time.Time // UTC
}
