package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/levkurapov/salon-booking-service/internal/domain"
	"github.com/levkurapov/salon-booking-service/pkg/types"
)

var (
	// ErrInvalidDate возвращается при некорректной дате YYYY-MM-DD
	ErrInvalidDate = errors.New("calendar: invalid date, expected YYYY-MM-DD")
)

// ParseLocalDate разбирает дату "YYYY-MM-DD" в локальную полночь
// Строка разбирается по компонентам, без UTC-парсинга: дата должна
// означать день по настенным часам салона, а не сдвинутый UTC момент
func ParseLocalDate(iso string) (time.Time, error) {
	parsed, err := time.ParseInLocation(domain.DateFormat, iso, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, iso)
	}
	y, m, d := parsed.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
}

// Weekday возвращает день недели даты в конвенции системы:
// понедельник = 1 ... суббота = 6, воскресенье = 7
func Weekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return domain.WeekdaySunday
	}
	return wd
}

// IsPastDate проверяет, что date строго раньше сегодняшней локальной полуночи
// Сравниваются только даты, время внутри дня не учитывается
func IsPastDate(date, now time.Time) bool {
	return Midnight(date).Before(Midnight(now))
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Midnight обнуляет время, оставляя локальную полночь даты
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CombineDateTime возвращает локальный момент: дата date, время clock
func CombineDateTime(date time.Time, clock types.TimeString) (time.Time, error) {
	minutes, err := clock.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return Midnight(date).Add(time.Duration(minutes) * time.Minute), nil
}

// DayBounds возвращает границы дня [00:00:00, 23:59:59] для range-запросов к БД
// Запросы используют >= start AND <= end, чтобы совпадать с историческим
// поведением: запись, заканчивающаяся ровно в 23:59:59, входит в день
func DayBounds(date time.Time) (start, end time.Time) {
	start = Midnight(date)
	end = start.Add(24*time.Hour - time.Second)
	return start, end
}

// MonthBounds возвращает первую и последнюю даты месяца (локальные полуночи)
func MonthBounds(year int, month time.Month) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last = first.AddDate(0, 1, -1)
	return first, last
}
