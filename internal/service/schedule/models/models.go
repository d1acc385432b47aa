package models

import (
	"time"

	"github.com/levkurapov/salon-booking-service/internal/domain"
	"github.com/levkurapov/salon-booking-service/pkg/types"
)

// ScheduleEntryInput строка расписания на вход замены
type ScheduleEntryInput struct {
	Weekday    int
	StartTime  string
	EndTime    string
	BreakStart string
	BreakEnd   string
}

// ToDomainEntry конвертирует вход в domain модель
// Пустые BreakStart/BreakEnd означают отсутствие перерыва (сентинел "00:00")
func (i *ScheduleEntryInput) ToDomainEntry(tenantID, professionalID int64) (*domain.WeeklyScheduleEntry, error) {
	startTime, err := types.NewTimeStringFromString(i.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(i.EndTime)
	if err != nil {
		return nil, err
	}

	breakStart := domain.NoBreakSentinel
	breakEnd := domain.NoBreakSentinel
	if i.BreakStart != "" || i.BreakEnd != "" {
		breakStart, err = types.NewTimeStringFromString(i.BreakStart)
		if err != nil {
			return nil, err
		}
		breakEnd, err = types.NewTimeStringFromString(i.BreakEnd)
		if err != nil {
			return nil, err
		}
	}

	return &domain.WeeklyScheduleEntry{
		TenantID:       tenantID,
		ProfessionalID: professionalID,
		Weekday:        i.Weekday,
		StartTime:      startTime,
		EndTime:        endTime,
		BreakStart:     breakStart,
		BreakEnd:       breakEnd,
	}, nil
}

// ScheduleEntryResponse строка расписания в ответе
type ScheduleEntryResponse struct {
	ID         int64
	Weekday    int
	StartTime  string
	EndTime    string
	BreakStart string
	BreakEnd   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ScheduleResponse расписание мастера
type ScheduleResponse struct {
	ProfessionalID int64
	Entries        []*ScheduleEntryResponse
}

// FromDomainEntries конвертирует domain строки в response
func FromDomainEntries(professionalID int64, entries []*domain.WeeklyScheduleEntry) *ScheduleResponse {
	result := make([]*ScheduleEntryResponse, len(entries))
	for i, e := range entries {
		breakStart, breakEnd := "", ""
		if e.HasBreak() {
			breakStart = e.BreakStart.String()
			breakEnd = e.BreakEnd.String()
		}
		result[i] = &ScheduleEntryResponse{
			ID:         e.ID,
			Weekday:    e.Weekday,
			StartTime:  e.StartTime.String(),
			EndTime:    e.EndTime.String(),
			BreakStart: breakStart,
			BreakEnd:   breakEnd,
			CreatedAt:  e.CreatedAt,
			UpdatedAt:  e.UpdatedAt,
		}
	}
	return &ScheduleResponse{
		ProfessionalID: professionalID,
		Entries:        result,
	}
}
