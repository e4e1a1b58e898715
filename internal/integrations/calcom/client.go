package calcom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// apiTimeFormat формат времени в query параметрах Cal.com
const apiTimeFormat = "2006-01-02T15:04:05Z"

// Client клиент Cal.com API v1
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    MetricsRecorder
	log        Logger
}

// Option дополнительная настройка клиента
type Option func(*Client)

// WithRateLimit ограничивает частоту исходящих запросов. rps <= 0 снимает ограничение.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMetrics включает учет вызовов
func WithMetrics(m MetricsRecorder) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithHTTPClient подменяет http клиент (таймаут задается в нем же)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient создает новый экземпляр клиента Cal.com
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Inf, 0),
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListEventTypes GET /event-types
func (c *Client) ListEventTypes(ctx context.Context) ([]domain.EventType, error) {
	var resp eventTypesResponse
	if err := c.do(ctx, "list_event_types", http.MethodGet, "/event-types", nil, nil, &resp); err != nil {
		return nil, err
	}

	result := make([]domain.EventType, 0, len(resp.EventTypes))
	for _, et := range resp.EventTypes {
		result = append(result, domain.EventType{ID: et.ID, Title: et.Title, LengthMinutes: et.Length})
	}
	return result, nil
}

// GetEventType GET /event-types/{id}. Длительность 0 означает, что календарь ее не вернул.
func (c *Client) GetEventType(ctx context.Context, id int64) (*domain.EventType, error) {
	var resp eventTypeResponse
	path := "/event-types/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, "get_event_type", http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}

	dto := resp.eventTypeDTO
	if resp.EventType != nil {
		dto = *resp.EventType
	}
	if dto.ID == 0 {
		dto.ID = id
	}
	return &domain.EventType{ID: dto.ID, Title: dto.Title, LengthMinutes: dto.Length}, nil
}

// GetSlots GET /slots. Возвращает моменты начала свободных слотов в окне [start, end]:
// дни по возрастанию, внутри дня в порядке ответа календаря.
func (c *Client) GetSlots(ctx context.Context, eventTypeID int64, start, end time.Time, timeZone string) ([]time.Time, error) {
	query := url.Values{}
	query.Set("eventTypeId", strconv.FormatInt(eventTypeID, 10))
	query.Set("startTime", start.UTC().Format(apiTimeFormat))
	query.Set("endTime", end.UTC().Format(apiTimeFormat))
	query.Set("timeZone", timeZone)

	var resp slotsResponse
	if err := c.do(ctx, "get_slots", http.MethodGet, "/slots", query, nil, &resp); err != nil {
		return nil, err
	}

	days := make([]string, 0, len(resp.Slots))
	for day := range resp.Slots {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]time.Time, 0)
	for _, day := range days {
		for _, s := range resp.Slots[day] {
			t, err := time.Parse(time.RFC3339, s.Time)
			if err != nil {
				c.log.Warn("Cal.com: skipping slot with unparsable time %q: %v", s.Time, err)
				continue
			}
			result = append(result, t)
		}
	}
	return result, nil
}

// CreateBooking POST /bookings
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*domain.Booking, error) {
	body := createBookingBody{
		EventTypeID: req.EventTypeID,
		Start:       req.Start.UTC().Format(apiTimeFormat),
		End:         req.End.UTC().Format(apiTimeFormat),
		Responses: bookingResponsesDTO{
			Name:  req.AttendeeName,
			Email: req.AttendeeEmail,
			Notes: req.Notes,
		},
		Metadata: map[string]string{},
		TimeZone: req.TimeZone,
		Language: "en",
	}

	var resp createBookingResponse
	if err := c.do(ctx, "create_booking", http.MethodPost, "/bookings", nil, body, &resp); err != nil {
		return nil, err
	}

	dto := resp.bookingDTO
	if resp.Booking != nil {
		dto = *resp.Booking
	}
	if dto.ID == 0 && dto.UID == "" {
		return nil, &APIError{Kind: ErrInvalidResponse, StatusCode: http.StatusOK, Message: "booking response has no id"}
	}

	booking, err := toDomainBooking(dto)
	if err != nil {
		// бронь создана, время в ответе не разобрали: подставляем запрошенное
		c.log.Warn("Cal.com: booking id=%d created with unparsable times: %v", dto.ID, err)
		booking = &domain.Booking{ID: dto.ID, UID: dto.UID, Title: dto.Title, Start: req.Start.UTC(), End: req.End.UTC(), VideoCallURL: dto.VideoCallURL}
	}
	if booking.EventTypeID == 0 {
		booking.EventTypeID = req.EventTypeID
	}
	return booking, nil
}

// ListBookings GET /bookings
func (c *Client) ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]domain.Booking, error) {
	query := url.Values{}
	if filter.AttendeeEmail != "" {
		query.Set("attendeeEmail", filter.AttendeeEmail)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.StartTime != nil {
		query.Set("startTime", filter.StartTime.UTC().Format(apiTimeFormat))
	}
	if filter.EndTime != nil {
		query.Set("endTime", filter.EndTime.UTC().Format(apiTimeFormat))
	}

	var resp bookingsResponse
	if err := c.do(ctx, "list_bookings", http.MethodGet, "/bookings", query, nil, &resp); err != nil {
		return nil, err
	}

	result := make([]domain.Booking, 0, len(resp.Bookings))
	for _, dto := range resp.Bookings {
		b, err := toDomainBooking(dto)
		if err != nil {
			c.log.Warn("Cal.com: skipping booking id=%d: %v", dto.ID, err)
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

// CancelBooking DELETE /bookings/{id}
func (c *Client) CancelBooking(ctx context.Context, id int64) error {
	path := "/bookings/" + strconv.FormatInt(id, 10)
	return c.do(ctx, "cancel_booking", http.MethodDelete, path, nil, nil, nil)
}

// do выполняет запрос: apiKey в query, 200/201/204 успех, тело ошибки усекается.
// out == nil или пустое тело ответа означают, что декодировать нечего.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body interface{}, out interface{}) (err error) {
	started := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveCalendarCall(op, Outcome(err), time.Since(started))
		}
	}()

	if c.apiKey == "" {
		return ErrNotConfigured
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return &APIError{Kind: ErrRequestFailed, Message: err.Error()}
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("apiKey", c.apiKey)
	endpoint := c.baseURL + path + "?" + query.Encode()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: ErrRequestFailed, Message: fmt.Sprintf("encode body: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &APIError{Kind: ErrRequestFailed, Message: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Cal.com: %s %s failed: %v", method, path, err)
		return &APIError{Kind: ErrRequestFailed, Message: redact(err.Error(), c.apiKey)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: ErrRequestFailed, Message: fmt.Sprintf("read body: %v", err)}
	}

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		// Продолжаем обработку
	default:
		apiErr := classify(resp.StatusCode, string(raw))
		c.log.Warn("Cal.com: %s %s returned status %d", method, path, resp.StatusCode)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Kind: ErrInvalidResponse, StatusCode: resp.StatusCode, Message: truncate(fmt.Sprintf("decode: %v", err))}
	}
	return nil
}

func classify(status int, body string) *APIError {
	kind := ErrUnexpectedStatus
	switch {
	case strings.Contains(body, markerNoAvailableUsers):
		kind = ErrSlotUnavailable
	case strings.Contains(strings.ToLower(body), markerValidation):
		kind = ErrValidation
	}
	return &APIError{Kind: kind, StatusCode: status, Message: truncate(body)}
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= domain.MaxCollaboratorMessageLength {
		return s
	}
	return string(r[:domain.MaxCollaboratorMessageLength])
}

// redact убирает ключ из текста ошибки транспорта (url.Error содержит полный адрес)
func redact(s, secret string) string {
	if secret == "" {
		return s
	}
	return truncate(strings.ReplaceAll(s, url.QueryEscape(secret), "***"))
}

func toDomainBooking(dto bookingDTO) (*domain.Booking, error) {
	start, err := time.Parse(time.RFC3339, dto.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start time %q: %w", dto.StartTime, err)
	}
	end, err := time.Parse(time.RFC3339, dto.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end time %q: %w", dto.EndTime, err)
	}

	b := &domain.Booking{
		ID:           dto.ID,
		UID:          dto.UID,
		Title:        dto.Title,
		Status:       domain.BookingStatus(strings.ToUpper(dto.Status)),
		Start:        start.UTC(),
		End:          end.UTC(),
		VideoCallURL: dto.VideoCallURL,
	}
	if dto.EventTypeID != nil {
		b.EventTypeID = *dto.EventTypeID
	}
	if dto.User != nil {
		b.HostName = dto.User.Name
	}
	return b, nil
}
