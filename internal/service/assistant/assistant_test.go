package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/timeexpr"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/session"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/logger"
)

type fakeScheduler struct {
	mu           sync.Mutex
	availability *models.Reply
	booking      *models.Reply

	checks   []*models.CheckAvailabilityRequest
	bookings []*models.BookMeetingRequest
	listed   int
	typed    int
}

func (f *fakeScheduler) CheckAvailability(_ context.Context, req *models.CheckAvailabilityRequest) *models.Reply {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks = append(f.checks, req)
	return f.availability
}

func (f *fakeScheduler) BookMeeting(_ context.Context, req *models.BookMeetingRequest) *models.Reply {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, req)
	return f.booking
}

func (f *fakeScheduler) ListEvents(context.Context) *models.Reply {
	f.listed++
	return &models.Reply{Text: "schedule", Outcome: models.OutcomeListed}
}

func (f *fakeScheduler) ListEventTypes(context.Context) *models.Reply {
	f.typed++
	return &models.Reply{Text: "types", Outcome: models.OutcomeListed}
}

func (f *fakeScheduler) DefaultEmail() string {
	return "jane.doe@example.com"
}

type fakeOrchestrator struct {
	reply    string
	err      error
	messages []string
}

func (f *fakeOrchestrator) Respond(_ context.Context, message string) (string, error) {
	f.messages = append(f.messages, message)
	return f.reply, f.err
}

var testOptions = Options{
	EventTypes: []EventTypeAlias{
		{Name: "15 min meeting", ID: 2886675},
		{Name: "30 min meeting", ID: 2886676},
		{Name: "secret meeting", ID: 2886677},
	},
	DefaultEventTypeID: 2886675,
}

func setup(orchestrator Orchestrator) (*Assistant, *fakeScheduler, *session.Session) {
	scheduler := &fakeScheduler{}
	a := New(scheduler, orchestrator, timeexpr.NewParser(), testOptions, logger.NewNop())
	return a, scheduler, session.New(time.Now())
}

func suggested() *models.Reply {
	return &models.Reply{
		Text:    "❌ The requested time 2pm is not available on Thursday, July 31.\n\n✅ Closest available time: 2:30 PM\n\nWould you like to book 2:30 PM instead?",
		Outcome: models.OutcomeSuggested,
		Suggestion: &models.Suggestion{
			EventTypeID:   2886676,
			DateToken:     "tomorrow",
			Time:          domain.CanonicalTime{Hour: 14, Minute: 30},
			RequestedText: "2pm",
		},
	}
}

func TestRespond_SmartBookingAvailable(t *testing.T) {
	a, scheduler, sess := setup(nil)
	scheduler.availability = &models.Reply{Text: "✅ available", Outcome: models.OutcomeAvailable}
	scheduler.booking = &models.Reply{Text: "✅ Meeting booked successfully for Thursday, July 31 at 03:00 PM.", Outcome: models.OutcomeBooked}

	reply := a.Respond(context.Background(), sess, "Book a 30 min meeting tomorrow at 3pm")

	assert.Equal(t, "✅ 30 Min Meeting successfully booked!\n\n✅ Meeting booked successfully for Thursday, July 31 at 03:00 PM.", reply)

	require.Len(t, scheduler.checks, 1)
	check := scheduler.checks[0]
	assert.Equal(t, int64(2886676), check.EventTypeID)
	assert.Equal(t, "tomorrow", check.Date)
	require.NotNil(t, check.Time)
	assert.Equal(t, "3pm", *check.Time)

	require.Len(t, scheduler.bookings, 1)
	booking := scheduler.bookings[0]
	assert.Equal(t, "jane.doe", booking.AttendeeName)
	assert.Equal(t, "Booked via assistant - 30 Min Meeting", booking.Reason)
}

func TestRespond_SmartBookingSuggestionThenConfirm(t *testing.T) {
	a, scheduler, sess := setup(nil)
	scheduler.availability = suggested()

	reply := a.Respond(context.Background(), sess, "book 30 min meeting tomorrow 2pm")

	assert.Contains(t, reply, "Would you like to book 2:30 PM instead?")
	assert.Contains(t, reply, "📝 Note: This will be a 30 Min Meeting. If you prefer a 15 Min Meeting or Secret Meeting, please specify.")
	assert.Empty(t, scheduler.bookings)

	pending, ok := sess.Pending()
	require.True(t, ok)
	assert.Equal(t, domain.PendingBookingConfirmation, pending.Kind)
	assert.Equal(t, int64(2886676), pending.EventTypeID)
	assert.Equal(t, "2pm", pending.OriginalTime)

	scheduler.booking = &models.Reply{Text: "booked", Outcome: models.OutcomeBooked}
	reply = a.Respond(context.Background(), sess, " Yes ")

	assert.Equal(t, "booked", reply)
	require.Len(t, scheduler.bookings, 1)
	assert.Equal(t, int64(2886676), scheduler.bookings[0].EventTypeID)
	assert.Equal(t, "tomorrow", scheduler.bookings[0].Date)
	assert.Equal(t, "2:30 PM", scheduler.bookings[0].Time)

	_, ok = sess.Pending()
	assert.False(t, ok)
}

func TestRespond_ConcurrentConfirmationsBookOnce(t *testing.T) {
	for trial := 0; trial < 200; trial++ {
		a, scheduler, sess := setup(nil)
		scheduler.availability = suggested()
		scheduler.booking = &models.Reply{Text: "booked", Outcome: models.OutcomeBooked}
		a.Respond(context.Background(), sess, "book 30 min meeting tomorrow 2pm")

		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				a.Respond(context.Background(), sess, "yes")
			}()
		}
		close(start)
		wg.Wait()

		require.Len(t, scheduler.bookings, 1, "trial %d", trial)
		_, ok := sess.Pending()
		require.False(t, ok)
	}
}

func TestRespond_UnrelatedMessageKeepsPending(t *testing.T) {
	orchestrator := &fakeOrchestrator{reply: "delegated"}
	a, scheduler, sess := setup(orchestrator)
	scheduler.availability = suggested()
	a.Respond(context.Background(), sess, "book tomorrow 2pm")

	assert.Equal(t, "delegated", a.Respond(context.Background(), sess, "what is the weather"))

	pending, ok := sess.Pending()
	require.True(t, ok)
	assert.Equal(t, "2pm", pending.OriginalTime)
}

func TestRespond_PendingDeclineAndChange(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"no", MsgBookingDropped},
		{"nope", MsgBookingDropped},
		{"reschedule", MsgAskNewTime},
		{"change time", MsgAskNewTime},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			a, scheduler, sess := setup(nil)
			scheduler.availability = suggested()
			a.Respond(context.Background(), sess, "book tomorrow 2pm")

			reply := a.Respond(context.Background(), sess, tt.message)

			assert.Equal(t, tt.want, reply)
			assert.Empty(t, scheduler.bookings)
			_, ok := sess.Pending()
			assert.False(t, ok)
		})
	}
}

func TestRespond_ConfirmWithoutPendingGoesToOrchestrator(t *testing.T) {
	orchestrator := &fakeOrchestrator{reply: "Sure, what would you like to do?"}
	a, scheduler, sess := setup(orchestrator)

	reply := a.Respond(context.Background(), sess, "yes")

	assert.Equal(t, "Sure, what would you like to do?", reply)
	assert.Equal(t, []string{"yes"}, orchestrator.messages)
	assert.Empty(t, scheduler.bookings)
}

func TestRespond_NoSlotsAddsEventTypeNote(t *testing.T) {
	a, scheduler, sess := setup(nil)
	scheduler.availability = &models.Reply{Text: "❌ No available time slots found.", Outcome: models.OutcomeNoSlots}

	reply := a.Respond(context.Background(), sess, "book 7/31/2025 at 10am")

	assert.Equal(t, "❌ No available time slots found.\n\n📝 Note: This will be a 15 Min Meeting. If you prefer a 30 Min Meeting or Secret Meeting, please specify.", reply)
	require.Len(t, scheduler.checks, 1)
	assert.Equal(t, "7/31/2025", scheduler.checks[0].Date)
	assert.Equal(t, "10am", *scheduler.checks[0].Time)
	_, ok := sess.Pending()
	assert.False(t, ok)
}

func TestRespond_NewBookingReplacesPending(t *testing.T) {
	a, scheduler, sess := setup(nil)
	scheduler.availability = suggested()
	a.Respond(context.Background(), sess, "book tomorrow 2pm")

	scheduler.availability = &models.Reply{Text: "❌ No available time slots found.", Outcome: models.OutcomeNoSlots}
	a.Respond(context.Background(), sess, "book today 4pm")

	_, ok := sess.Pending()
	assert.False(t, ok)
}

func TestRespond_SimpleRoutes(t *testing.T) {
	a, scheduler, sess := setup(nil)

	assert.Equal(t, "types", a.Respond(context.Background(), sess, "What event types do I have?"))
	assert.Equal(t, "schedule", a.Respond(context.Background(), sess, "show my meetings"))
	assert.Equal(t, 1, scheduler.typed)
	assert.Equal(t, 1, scheduler.listed)
}

func TestRespond_ActionsSkipSimpleRoutes(t *testing.T) {
	orchestrator := &fakeOrchestrator{reply: "delegated"}
	a, scheduler, sess := setup(orchestrator)

	reply := a.Respond(context.Background(), sess, "cancel my meetings tomorrow")

	assert.Equal(t, "delegated", reply)
	assert.Zero(t, scheduler.listed)
}

func TestRespond_Fallbacks(t *testing.T) {
	a, _, sess := setup(nil)
	assert.Equal(t, MsgHelp, a.Respond(context.Background(), sess, "hello"))
	assert.Equal(t, MsgHelp, a.Respond(context.Background(), sess, "book something nice"))

	orchestrator := &fakeOrchestrator{err: errors.New("llm down")}
	a, _, sess = setup(orchestrator)
	assert.Equal(t, MsgOrchestratorError, a.Respond(context.Background(), sess, "hello"))
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"book 7/31/2025 at 3pm", "7/31/2025"},
		{"book 2025-08-01 at 3pm", "2025-08-01"},
		{"book july 31st, 2025 at 3pm", "july 31st, 2025"},
		{"book 31st july 2025 at 3pm", "31st july 2025"},
		{"book next friday at 3pm", "next friday"},
		{"book today at 3pm", "today"},
		{"book at 3pm", "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got, _ := extractDate(tt.msg)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTime(t *testing.T) {
	parser := timeexpr.NewParser()
	tests := []struct {
		msg  string
		want string
		ok   bool
	}{
		{"book @ 3:00 pm", "3:00 pm", true},
		{"book at 3pm", "3pm", true},
		{"book 15:00", "15:00", true},
		{"book at 9", "9", true},
		{"book something", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got, _, ok := extractTime(tt.msg, parser)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
