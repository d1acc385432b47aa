package calendar

import (
	"fmt"
	"time"
)

// HolidayCalendar список нерабочих дат в формате MM-DD
// Список приходит из конфигурации, а не зашит в код: праздники
// могут отличаться по годам и тенантам без пересборки сервиса
type HolidayCalendar struct {
	dates map[string]struct{}
}

// NewHolidayCalendar создает календарь праздников из списка дат MM-DD
func NewHolidayCalendar(dates []string) (*HolidayCalendar, error) {
	index := make(map[string]struct{}, len(dates))

	for _, d := range dates {
		if _, err := time.Parse("01-02", d); err != nil {
			return nil, fmt.Errorf("calendar: invalid holiday date %q, expected MM-DD: %w", d, err)
		}
		index[d] = struct{}{}
	}

	return &HolidayCalendar{dates: index}, nil
}

// IsHoliday проверяет, попадает ли дата на праздник (сравнение по MM-DD)
func (h *HolidayCalendar) IsHoliday(date time.Time) bool {
	if h == nil {
		return false
	}
	_, ok := h.dates[date.Format("01-02")]
	return ok
}

// Len возвращает количество настроенных праздничных дат
func (h *HolidayCalendar) Len() int {
	if h == nil {
		return 0
	}
	return len(h.dates)
}
