package check_availability

import "github.com/m04kA/SMC-SchedulingAssistant/internal/domain"

// Request модель запроса проверки доступности
type Request struct {
	EventTypeID int64   // ID типа встречи
	DateText    string  // дата в свободной форме ("tomorrow", "7/31/2025")
	TimeText    *string // желаемое время (опционально)
}

// Response результат проверки
type Response struct {
	EventTypeID   int64
	Date          domain.CanonicalDate
	RequestedText string                // время в формулировке пользователя
	RequestedTime *domain.CanonicalTime // nil, если время не запрашивалось
	Slots         []domain.AvailableSlot
	Match         domain.MatchResult
}
