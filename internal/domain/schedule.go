package domain

import (
	"fmt"
	"time"

	"github.com/levkurapov/salon-booking-service/pkg/types"
)

// Дни недели в конвенции системы: понедельник = 1 ... воскресенье = 7
const (
	WeekdayMonday   = 1
	WeekdaySaturday = 6
	WeekdaySunday   = 7
)

// NoBreakSentinel пара BreakStart/BreakEnd "00:00"/"00:00" означает отсутствие перерыва
const NoBreakSentinel = types.TimeString("00:00")

// WeeklyScheduleEntry строка недельного расписания мастера:
// рабочее окно на один день недели плюс опциональный перерыв
// Записи заменяются целиком при редактировании расписания (delete-all-then-insert)
type WeeklyScheduleEntry struct {
	ID             int64
	TenantID       int64
	ProfessionalID int64
	Weekday        int // 1 = понедельник ... 7 = воскресенье

	StartTime types.TimeString
	EndTime   types.TimeString

	BreakStart types.TimeString
	BreakEnd   types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBreak возвращает true, если в рабочем окне настроен перерыв
func (e *WeeklyScheduleEntry) HasBreak() bool {
	return !(e.BreakStart == NoBreakSentinel && e.BreakEnd == NoBreakSentinel)
}

// Validate проверяет инварианты строки расписания:
// weekday в диапазоне 1..7, start < end, перерыв внутри рабочего окна
func (e *WeeklyScheduleEntry) Validate() error {
	if e.Weekday < WeekdayMonday || e.Weekday > WeekdaySunday {
		return fmt.Errorf("weekday must be in range 1..7, got %d", e.Weekday)
	}

	for _, ts := range []types.TimeString{e.StartTime, e.EndTime, e.BreakStart, e.BreakEnd} {
		if err := ts.Validate(); err != nil {
			return err
		}
	}

	if !e.StartTime.IsBefore(e.EndTime) {
		return fmt.Errorf("start time %s must be before end time %s", e.StartTime, e.EndTime)
	}

	if e.HasBreak() {
		if !e.BreakStart.IsBefore(e.BreakEnd) {
			return fmt.Errorf("break start %s must be before break end %s", e.BreakStart, e.BreakEnd)
		}
		if e.BreakStart.IsBefore(e.StartTime) || e.BreakEnd.IsAfter(e.EndTime) {
			return fmt.Errorf("break %s-%s must be inside working window %s-%s",
				e.BreakStart, e.BreakEnd, e.StartTime, e.EndTime)
		}
	}

	return nil
}

// WeeklySchedule расписание мастера, проиндексированное по дню недели
type WeeklySchedule map[int][]*WeeklyScheduleEntry

// IndexByWeekday группирует строки расписания по дню недели
func IndexByWeekday(entries []*WeeklyScheduleEntry) WeeklySchedule {
	index := make(WeeklySchedule, len(entries))
	for _, e := range entries {
		index[e.Weekday] = append(index[e.Weekday], e)
	}
	return index
}
