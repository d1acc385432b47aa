package scheduling

import (
	"time"

	"github.com/levkurapov/salon-booking-service/internal/calendar"
	"github.com/levkurapov/salon-booking-service/internal/domain"
)

// Overlaps проверяет, пересекается ли кандидат [candidateStart, candidateEnd)
// хотя бы с одной блокирующей записью
//
// Пересечение строгое полуинтервальное: existing.start < candidateEnd && existing.end > candidateStart
// Граничащие интервалы (один заканчивается ровно там, где начинается другой) НЕ конфликтуют
//
// Этот предикат - единственный источник истины "свободно ли время",
// используется одинаково при чтении доступности и при записи бронирования
func Overlaps(existing []*domain.Appointment, candidateStart, candidateEnd time.Time) bool {
	for _, appt := range existing {
		if !appt.IsBlocking() {
			continue
		}
		if appt.StartsAt.Before(candidateEnd) && appt.EndsAt.After(candidateStart) {
			return true
		}
	}
	return false
}

// FilterByDay возвращает записи, начинающиеся в указанный день
// Используется агрегатором месяца, чтобы одним range-запросом получить
// записи за месяц и дальше резать их по дням без похода в БД
func FilterByDay(appointments []*domain.Appointment, date time.Time) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)
	for _, appt := range appointments {
		if calendar.IsSameDay(appt.StartsAt, date) {
			result = append(result, appt)
		}
	}
	return result
}
