package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levkurapov/salon-booking-service/internal/domain"
	"github.com/levkurapov/salon-booking-service/pkg/types"
)

func TestParseLocalDate(t *testing.T) {
	date, err := ParseLocalDate("2026-09-15")
	require.NoError(t, err)

	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, time.September, date.Month())
	assert.Equal(t, 15, date.Day())
	assert.Equal(t, 0, date.Hour())
	assert.Equal(t, time.Local, date.Location())

	_, err = ParseLocalDate("15.09.2026")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseLocalDate("2026-13-40")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestWeekday(t *testing.T) {
	// 2026-09-14 понедельник, 2026-09-20 воскресенье
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local)
	sunday := time.Date(2026, 9, 20, 0, 0, 0, 0, time.Local)
	saturday := time.Date(2026, 9, 19, 0, 0, 0, 0, time.Local)

	assert.Equal(t, domain.WeekdayMonday, Weekday(monday))
	assert.Equal(t, domain.WeekdaySaturday, Weekday(saturday))
	assert.Equal(t, domain.WeekdaySunday, Weekday(sunday))
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local)

	yesterday := time.Date(2026, 9, 14, 23, 59, 0, 0, time.Local)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	tomorrow := time.Date(2026, 9, 16, 0, 0, 0, 0, time.Local)

	assert.True(t, IsPastDate(yesterday, now))
	// Сегодняшний день не считается прошедшим, даже если время now позднее
	assert.False(t, IsPastDate(today, now))
	assert.False(t, IsPastDate(tomorrow, now))
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)

	moment, err := CombineDateTime(date, types.TimeString("10:30"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 30, 0, 0, time.Local), moment)

	_, err = CombineDateTime(date, types.TimeString("bad"))
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	date := time.Date(2026, 9, 15, 12, 45, 0, 0, time.Local)

	start, end := DayBounds(date)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 9, 15, 23, 59, 59, 0, time.Local), end)
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2026, time.February)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local), first)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.Local), last)

	// Високосный февраль
	first, last = MonthBounds(2028, time.February)
	assert.Equal(t, 29, last.Day())
	assert.Equal(t, 1, first.Day())

	_, last = MonthBounds(2026, time.December)
	assert.Equal(t, 31, last.Day())
}

func TestHolidayCalendar(t *testing.T) {
	hc, err := NewHolidayCalendar([]string{"01-01", "05-09", "12-31"})
	require.NoError(t, err)
	assert.Equal(t, 3, hc.Len())

	newYear := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	victoryDay := time.Date(2027, 5, 9, 0, 0, 0, 0, time.Local)
	ordinary := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)

	// Праздники повторяются каждый год
	assert.True(t, hc.IsHoliday(newYear))
	assert.True(t, hc.IsHoliday(victoryDay))
	assert.False(t, hc.IsHoliday(ordinary))
}

func TestHolidayCalendar_InvalidDate(t *testing.T) {
	_, err := NewHolidayCalendar([]string{"13-01"})
	assert.Error(t, err)

	_, err = NewHolidayCalendar([]string{"2026-01-01"})
	assert.Error(t, err)
}

func TestHolidayCalendar_Empty(t *testing.T) {
	hc, err := NewHolidayCalendar(nil)
	require.NoError(t, err)
	assert.False(t, hc.IsHoliday(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)))
}
