package assistant

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/session"
)

var (
	confirmWords    = []string{"yes", "y", "sure", "ok", "okay", "confirm"}
	declineWords    = []string{"no", "n", "nope", "cancel"}
	changeTimeWords = []string{"reschedule", "change time", "modify"}
	eventTypesWords = []string{"event types", "meeting types"}
	scheduleWords   = []string{"my meetings", "my schedule", "my events", "upcoming meetings"}
	actionWords     = []string{"book", "cancel", "reschedule", "move"}
)

type eventType struct {
	id      int64
	match   string // название в нижнем регистре
	display string // "30 Min Meeting"
}

// Assistant ведет диалог: подтверждения, быстрое бронирование и простые запросы
type Assistant struct {
	scheduler    Scheduler
	orchestrator Orchestrator
	timeParser   TimeParser
	eventTypes   []eventType
	defaultType  eventType
	logger       Logger
}

// New создает ассистента. orchestrator может быть nil.
func New(scheduler Scheduler, orchestrator Orchestrator, timeParser TimeParser, opts Options, logger Logger) *Assistant {
	title := cases.Title(language.English)

	a := &Assistant{
		scheduler:    scheduler,
		orchestrator: orchestrator,
		timeParser:   timeParser,
		logger:       logger,
	}

	for _, alias := range opts.EventTypes {
		a.eventTypes = append(a.eventTypes, eventType{
			id:      alias.ID,
			match:   strings.ToLower(strings.TrimSpace(alias.Name)),
			display: title.String(strings.TrimSpace(alias.Name)),
		})
	}

	a.defaultType = eventType{id: opts.DefaultEventTypeID, display: "Meeting"}
	for _, et := range a.eventTypes {
		if et.id == opts.DefaultEventTypeID {
			a.defaultType = et
			break
		}
	}
	if a.defaultType.id == 0 && len(a.eventTypes) > 0 {
		a.defaultType = a.eventTypes[0]
	}

	return a
}

// Respond отвечает на одно сообщение пользователя в рамках сессии
func (a *Assistant) Respond(ctx context.Context, sess *session.Session, message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	// 1. Ответ на ожидающее подтверждение
	if reply, ok := a.handlePending(ctx, sess, msg); ok {
		return reply
	}

	// 2. Простые запросы без параметров
	if !containsAny(msg, actionWords) {
		switch {
		case containsAny(msg, eventTypesWords):
			return a.scheduler.ListEventTypes(ctx).Text
		case containsAny(msg, scheduleWords):
			return a.scheduler.ListEvents(ctx).Text
		}
	}

	// 3. Быстрое бронирование
	if strings.Contains(msg, "book") {
		if reply, ok := a.smartBooking(ctx, sess, msg); ok {
			return reply
		}
	}

	// 4. Все остальное уходит внешнему диалоговому слою
	if a.orchestrator == nil {
		return MsgHelp
	}
	reply, err := a.orchestrator.Respond(ctx, message)
	if err != nil {
		a.logger.Error("Assistant: orchestrator failed: %v", err)
		return MsgOrchestratorError
	}
	return reply
}

type pendingReply int

const (
	pendingNone pendingReply = iota
	pendingConfirm
	pendingDecline
	pendingChangeTime
)

func classifyPendingReply(msg string) pendingReply {
	switch {
	case equalsAny(msg, confirmWords):
		return pendingConfirm
	case equalsAny(msg, declineWords):
		return pendingDecline
	case equalsAny(msg, changeTimeWords):
		return pendingChangeTime
	}
	return pendingNone
}

// handlePending забирает ожидающее действие атомарно: из параллельных ответов на одно
// предложение его получит только один
func (a *Assistant) handlePending(ctx context.Context, sess *session.Session, msg string) (string, bool) {
	kind := classifyPendingReply(msg)
	if kind == pendingNone {
		return "", false
	}

	pending, ok := sess.TakePending()
	if !ok {
		return "", false
	}
	if pending.Kind != domain.PendingBookingConfirmation {
		sess.SetPending(pending)
		return "", false
	}

	switch kind {
	case pendingConfirm:
		a.logger.Info("Assistant: session %s confirmed %s on %s", sess.ID, pending.SuggestedTime.Clock(), pending.DateToken)
		return a.scheduler.BookMeeting(ctx, &models.BookMeetingRequest{
			EventTypeID:   pending.EventTypeID,
			Date:          pending.DateToken,
			Time:          pending.SuggestedTime.String(),
			AttendeeName:  emailLocalPart(a.scheduler.DefaultEmail()),
			AttendeeEmail: a.scheduler.DefaultEmail(),
			Reason:        "Booked via assistant confirmation",
		}).Text, true

	case pendingDecline:
		return MsgBookingDropped, true

	default:
		return MsgAskNewTime, true
	}
}

// smartBooking бронирует сразу, если время свободно, иначе сохраняет предложенный слот в сессии
func (a *Assistant) smartBooking(ctx context.Context, sess *session.Session, msg string) (string, bool) {
	et := a.matchEventType(msg)
	rest := msg
	if et.match != "" {
		rest = strings.ReplaceAll(msg, et.match, " ")
	}

	date, rest := extractDate(rest)
	timeText, _, ok := extractTime(rest, a.timeParser)
	if !ok {
		return "", false
	}

	// новый запрос на бронирование заменяет прежнее предложение
	sess.ClearPending()

	a.logger.Info("Assistant: smart booking %s on %q at %q", et.display, date, timeText)

	availability := a.scheduler.CheckAvailability(ctx, &models.CheckAvailabilityRequest{
		EventTypeID: et.id,
		Date:        date,
		Time:        &timeText,
	})

	switch availability.Outcome {
	case models.OutcomeAvailable:
		email := a.scheduler.DefaultEmail()
		booked := a.scheduler.BookMeeting(ctx, &models.BookMeetingRequest{
			EventTypeID:   et.id,
			Date:          date,
			Time:          timeText,
			AttendeeName:  emailLocalPart(email),
			AttendeeEmail: email,
			Reason:        "Booked via assistant - " + et.display,
		})
		if booked.Outcome == models.OutcomeBooked {
			return fmt.Sprintf("✅ %s successfully booked!\n\n%s", et.display, booked.Text), true
		}
		return booked.Text, true

	case models.OutcomeSuggested:
		if s := availability.Suggestion; s != nil {
			sess.SetPending(domain.PendingAction{
				Kind:          domain.PendingBookingConfirmation,
				EventTypeID:   s.EventTypeID,
				EventTypeName: et.display,
				DateToken:     s.DateToken,
				SuggestedTime: s.Time,
				OriginalTime:  s.RequestedText,
			})
		}
		return availability.Text + a.eventTypeNote(et), true

	case models.OutcomeNoSlots, models.OutcomeInvalidInput, models.OutcomeCalendarError:
		return availability.Text + a.eventTypeNote(et), true
	}

	return availability.Text, true
}

func (a *Assistant) matchEventType(msg string) eventType {
	for _, et := range a.eventTypes {
		if et.match != "" && strings.Contains(msg, et.match) {
			return et
		}
	}
	return a.defaultType
}

func (a *Assistant) eventTypeNote(chosen eventType) string {
	others := make([]string, 0, len(a.eventTypes))
	for _, et := range a.eventTypes {
		if et.id != chosen.id {
			others = append(others, et.display)
		}
	}

	note := fmt.Sprintf("\n\n📝 Note: This will be a %s.", chosen.display)
	if len(others) > 0 {
		note += fmt.Sprintf(" If you prefer a %s, please specify.", strings.Join(others, " or "))
	}
	return note
}

func equalsAny(msg string, words []string) bool {
	for _, w := range words {
		if msg == w {
			return true
		}
	}
	return false
}

func containsAny(msg string, words []string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
