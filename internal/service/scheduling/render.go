package scheduling

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/integrations/calcom"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/dateexpr"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/timeexpr"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/cancel_event"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/check_availability"
)

const (
	meetingTimeFormat = domain.HumanDateFormat + " at " + domain.HumanTimeFormat

	msgEmptyEventTypes = "No event types found. You may need to create event types in your Cal.com dashboard first."
	msgNoEvents        = "Your calendar shows no upcoming events."
	msgNoValidEvents   = "No valid upcoming events found in your calendar."
	msgWeekBulkCancel  = "⚠️ Cancelling all events this week is a bulk action. " +
		"Please confirm by repeating the command with 'confirm'"
	msgCancelAbandoned = "👍 Okay, nothing was cancelled."
	msgSlotTaken       = "❌ This time slot is not available (likely already booked or outside business hours). " +
		"Please try a different time."
	msgInvalidBookingData = "❌ Invalid booking data. Please check the date and time format."
	msgUnknownEventType   = "❌ Could not determine event type for rescheduling"
)

func renderAvailability(resp *check_availability.Response) *models.Reply {
	day := resp.Date.Human()

	switch resp.Match.Kind {
	case domain.MatchExact:
		return &models.Reply{
			Text:    fmt.Sprintf("✅ The requested time %s is available on %s.", resp.RequestedText, day),
			Outcome: models.OutcomeAvailable,
		}

	case domain.MatchClosest:
		closest := resp.Match.Slot.LocalTime.String()
		var alt string
		if len(resp.Match.Alternatives) > 0 {
			alt = "\n\nOther nearby times: " + joinSlots(resp.Match.Alternatives)
		}
		return &models.Reply{
			Text: fmt.Sprintf("❌ The requested time %s is not available on %s.\n\n✅ Closest available time: %s%s\n\nWould you like to book %s instead?",
				resp.RequestedText, day, closest, alt, closest),
			Outcome: models.OutcomeSuggested,
			Suggestion: &models.Suggestion{
				EventTypeID:   resp.EventTypeID,
				DateToken:     resp.Date.Token,
				Time:          resp.Match.Slot.LocalTime,
				RequestedText: resp.RequestedText,
			},
		}

	case domain.MatchNoSlots:
		return &models.Reply{
			Text:    fmt.Sprintf("❌ No available time slots found for %s. Please try a different date.", day),
			Outcome: models.OutcomeNoSlots,
		}

	default:
		return &models.Reply{
			Text:    fmt.Sprintf("📅 Available times on %s: %s", day, joinSlots(resp.Slots)),
			Outcome: models.OutcomeListed,
		}
	}
}

// renderUnavailable недоступное время и ближайшие свободные слоты без предложения забронировать
func renderUnavailable(resp *check_availability.Response) string {
	day := resp.Date.Human()

	switch resp.Match.Kind {
	case domain.MatchClosest:
		times := append([]domain.AvailableSlot{*resp.Match.Slot}, resp.Match.Alternatives...)
		return fmt.Sprintf("The requested time %s is not available on %s. Closest available times: %s",
			resp.RequestedText, day, joinSlots(times))
	case domain.MatchNoSlots:
		return fmt.Sprintf("No available time slots found for %s.", day)
	default:
		return fmt.Sprintf("The requested time %s is not available on %s.", resp.RequestedText, day)
	}
}

func renderBooked(start time.Time, videoURL string) string {
	text := fmt.Sprintf("✅ Meeting booked successfully for %s.", start.Format(meetingTimeFormat))
	if videoURL != "" {
		text += " Video link: " + videoURL
	}
	return text
}

func renderEventTypes(eventTypes []domain.EventType) string {
	if len(eventTypes) == 0 {
		return msgEmptyEventTypes
	}

	lines := make([]string, 0, len(eventTypes)+1)
	lines = append(lines, "Available event types:")
	for _, et := range eventTypes {
		title := et.Title
		if title == "" {
			title = "Untitled"
		}
		lines = append(lines, fmt.Sprintf("- %s (ID: %d) - %d minutes", title, et.ID, et.LengthMinutes))
	}
	return strings.Join(lines, "\n")
}

// renderSchedule группирует встречи по локальной дате, bookings уже отсортированы
func renderSchedule(bookings []domain.Booking, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("📆 Your Upcoming Schedule:")

	var currentDay string
	for _, booking := range bookings {
		start := booking.Start.In(loc)
		end := booking.End.In(loc)
		day := start.Format(domain.HumanDateFormat)

		if day != currentDay {
			currentDay = day
			fmt.Fprintf(&b, "\n\n📅 %s", day)
		}

		host := booking.HostName
		if host == "" {
			host = "Guest"
		}

		fmt.Fprintf(&b, "\n• %s\n  📅 %s\n  🕒 %s - %s\n  👥 With: %s\n  🔗 Event ID: %d",
			booking.DisplayTitle(),
			day,
			start.Format(domain.HumanTimeFormat),
			end.Format(domain.HumanTimeFormat),
			host,
			booking.ID,
		)
	}
	return b.String()
}

func renderCancelConfirmation(resp *cancel_event.Response, loc *time.Location) string {
	if resp.Reason == cancel_event.ReasonWholeWeek {
		return msgWeekBulkCancel
	}

	examples := resp.Matching
	if len(examples) > domain.MaxConfirmationExamples {
		examples = examples[:domain.MaxConfirmationExamples]
	}

	lines := make([]string, 0, len(examples))
	for _, b := range examples {
		lines = append(lines, fmt.Sprintf("- %s at %s", b.DisplayTitle(), b.Start.In(loc).Format(domain.HumanTimeFormat)))
	}

	return fmt.Sprintf("⚠️ Found %d meetings. Cancelling all requires confirmation.\nExample meetings:\n%s\nPlease confirm by repeating with 'confirm'",
		len(resp.Matching), strings.Join(lines, "\n"))
}

func renderNothingToCancel(resp *cancel_event.Response) string {
	day := resp.RangeStart.Format(domain.HumanDateFormat)
	if resp.TimeText != "" {
		return fmt.Sprintf("✅ No %s meetings found on %s", resp.TimeText, day)
	}
	return fmt.Sprintf("✅ No meetings found on %s", day)
}

func renderCancelResults(results []cancel_event.Result, loc *time.Location) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			lines = append(lines, fmt.Sprintf("❌ Failed to cancel '%s'", r.Booking.DisplayTitle()))
			continue
		}
		lines = append(lines, fmt.Sprintf("✅ Cancelled '%s' at %s",
			r.Booking.DisplayTitle(), r.Booking.Start.In(loc).Format(domain.HumanTimeFormat)))
	}

	if len(lines) == 1 {
		return lines[0]
	}
	return "📅 Cancellation Summary:\n" + strings.Join(lines, "\n")
}

func joinSlots(slots []domain.AvailableSlot) string {
	names := make([]string, 0, len(slots))
	for _, s := range slots {
		names = append(names, s.LocalTime.String())
	}
	return strings.Join(names, ", ")
}

// dateHint сообщение о нераспознанной дате
func dateHint(err error) string {
	var perr *dateexpr.ParseError
	if errors.As(err, &perr) {
		return fmt.Sprintf("❌ %s. Please use formats like %s", capitalize(perr.Error()), dateexpr.ExampleFormats)
	}
	return fmt.Sprintf("❌ Could not understand the date. Please use formats like %s", dateexpr.ExampleFormats)
}

// timeInput исходный текст нераспознанного времени
func timeInput(err error) string {
	var perr *timeexpr.ParseError
	if errors.As(err, &perr) {
		return perr.Passthrough()
	}
	return ""
}

// dateInput исходный текст нераспознанной даты
func dateInput(err error) string {
	var perr *dateexpr.ParseError
	if errors.As(err, &perr) {
		return perr.Input
	}
	return ""
}

// collaboratorText текст ошибки календаря, усеченный до допустимой длины
func collaboratorText(err error) string {
	var apiErr *calcom.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return truncate(err.Error())
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= domain.MaxCollaboratorMessageLength {
		return s
	}
	return string([]rune(s)[:domain.MaxCollaboratorMessageLength])
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
