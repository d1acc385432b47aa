package scheduling

import (
	"errors"
	"time"

	"github.com/levkurapov/salon-booking-service/internal/calendar"
	"github.com/levkurapov/salon-booking-service/internal/domain"
)

var (
	// ErrInvalidDuration возвращается при неположительной длительности услуги
	ErrInvalidDuration = errors.New("scheduling: service duration must be positive")

	// ErrInvalidStep возвращается при неположительном шаге генерации
	ErrInvalidStep = errors.New("scheduling: slot step must be positive")
)

// GenerateSlots генерирует слоты-кандидаты в рабочем окне entry на дату date
//
// Единственный примитив генерации для обоих потребителей, параметризован шагом:
// - агрегация по месяцу шагает на длительность услуги (важно лишь наличие слота)
// - выбор времени на день шагает на фиксированные 15 минут (больше вариантов старта)
//
// Правила:
// - слот целиком помещается в рабочее окно: start >= начала, end <= конца
// - слот, пересекающий перерыв, не эмитится; курсор прыгает на конец перерыва
// - для сегодняшней даты слоты с start <= now пропускаются поштучно (шагом)
func GenerateSlots(
	date time.Time,
	entry *domain.WeeklyScheduleEntry,
	durationMinutes int,
	stepMinutes int,
	now time.Time,
) ([]domain.Slot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if stepMinutes <= 0 {
		return nil, ErrInvalidStep
	}

	blockStart, err := calendar.CombineDateTime(date, entry.StartTime)
	if err != nil {
		return nil, err
	}
	blockEnd, err := calendar.CombineDateTime(date, entry.EndTime)
	if err != nil {
		return nil, err
	}

	var breakStart, breakEnd time.Time
	hasBreak := entry.HasBreak()
	if hasBreak {
		breakStart, err = calendar.CombineDateTime(date, entry.BreakStart)
		if err != nil {
			return nil, err
		}
		breakEnd, err = calendar.CombineDateTime(date, entry.BreakEnd)
		if err != nil {
			return nil, err
		}
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute
	isToday := calendar.IsSameDay(date, now)

	slots := make([]domain.Slot, 0)
	cursor := blockStart

	for !cursor.Add(duration).After(blockEnd) {
		slotEnd := cursor.Add(duration)

		// Слот, пересекающий перерыв, вычеркивается целиком:
		// курсор перепрыгивает на конец перерыва вместо пошагового перебора
		if hasBreak && cursor.Before(breakEnd) && slotEnd.After(breakStart) {
			cursor = breakEnd
			continue
		}

		// Прошедшее время сегодня: пропускаем только этот кандидат
		if isToday && !cursor.After(now) {
			cursor = cursor.Add(step)
			continue
		}

		slots = append(slots, domain.Slot{Start: cursor, End: slotEnd})
		cursor = cursor.Add(step)
	}

	return slots, nil
}
