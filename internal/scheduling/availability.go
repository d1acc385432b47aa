package scheduling

import (
	"sort"
	"time"

	"github.com/levkurapov/salon-booking-service/internal/domain"
	"github.com/levkurapov/salon-booking-service/pkg/types"
)

// HasFreeSlot проверяет, есть ли в указанный день хотя бы один свободный слот
// Шагает на длительность услуги (грубый шаг) и останавливается на первом
// свободном слоте - агрегатору месяца нужен только факт наличия
func HasFreeSlot(
	date time.Time,
	entries []*domain.WeeklyScheduleEntry,
	durationMinutes int,
	dayAppointments []*domain.Appointment,
	now time.Time,
) (bool, error) {
	for _, entry := range entries {
		slots, err := GenerateSlots(date, entry, durationMinutes, durationMinutes, now)
		if err != nil {
			return false, err
		}

		for _, slot := range slots {
			if !Overlaps(dayAppointments, slot.Start, slot.End) {
				return true, nil
			}
		}
	}

	return false, nil
}

// FreeStartTimes возвращает отсортированный список свободных времён начала HH:MM
// Шагает на фиксированные 15 минут независимо от длительности услуги,
// чтобы услуга на 60 минут могла начинаться в :00, :15, :30, :45
func FreeStartTimes(
	date time.Time,
	entries []*domain.WeeklyScheduleEntry,
	durationMinutes int,
	dayAppointments []*domain.Appointment,
	now time.Time,
) ([]types.TimeString, error) {
	result := make([]types.TimeString, 0)

	for _, entry := range entries {
		slots, err := GenerateSlots(date, entry, durationMinutes, domain.FineSlotStepMinutes, now)
		if err != nil {
			return nil, err
		}

		for _, slot := range slots {
			if !Overlaps(dayAppointments, slot.Start, slot.End) {
				result = append(result, types.NewTimeString(slot.Start))
			}
		}
	}

	// У мастера может быть несколько рабочих окон на день - сортируем итог
	sort.Slice(result, func(i, j int) bool {
		return result[i].IsBefore(result[j])
	})

	return result, nil
}
