package list_events

import "github.com/m04kA/SMC-SchedulingAssistant/internal/domain"

// StatusUpcoming фильтр будущих встреч
const StatusUpcoming = "upcoming"

// Response предстоящие встречи в хронологическом порядке, без отмененных
type Response struct {
	Bookings []domain.Booking
	// Total сколько встреч вернул календарь до фильтрации
	Total int
}
