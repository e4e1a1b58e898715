package calcom

import "time"

// eventTypeDTO тип встречи в ответе /event-types
type eventTypeDTO struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Length int    `json:"length"`
}

type eventTypesResponse struct {
	EventTypes []eventTypeDTO `json:"event_types"`
}

// eventTypeResponse /event-types/{id} отдает либо обертку event_type, либо сам объект
type eventTypeResponse struct {
	EventType *eventTypeDTO `json:"event_type"`
	eventTypeDTO
}

type slotDTO struct {
	Time string `json:"time"`
}

type slotsResponse struct {
	Slots map[string][]slotDTO `json:"slots"`
}

type userDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type bookingDTO struct {
	ID           int64    `json:"id"`
	UID          string   `json:"uid"`
	Title        string   `json:"title"`
	Status       string   `json:"status"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	EventTypeID  *int64   `json:"eventTypeId"`
	VideoCallURL string   `json:"videoCallUrl"`
	User         *userDTO `json:"user"`
}

type bookingsResponse struct {
	Bookings []bookingDTO `json:"bookings"`
}

// createBookingResponse POST /bookings отдает либо обертку booking, либо сам объект
type createBookingResponse struct {
	Booking *bookingDTO `json:"booking"`
	bookingDTO
}

// CreateBookingRequest данные новой встречи
type CreateBookingRequest struct {
	EventTypeID   int64
	Start         time.Time
	End           time.Time
	AttendeeName  string
	AttendeeEmail string
	Notes         string
	TimeZone      string
}

type bookingResponsesDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type createBookingBody struct {
	EventTypeID int64               `json:"eventTypeId"`
	Start       string              `json:"start"`
	End         string              `json:"end"`
	Responses   bookingResponsesDTO `json:"responses"`
	Metadata    map[string]string   `json:"metadata"`
	TimeZone    string              `json:"timeZone"`
	Language    string              `json:"language"`
}
