package get_schedule

import (
	"github.com/levkurapov/salon-booking-service/internal/service/schedule/models"
)

// ScheduleEntryResponse строка недельного расписания
type ScheduleEntryResponse struct {
	Weekday    int    `json:"weekday"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	BreakStart string `json:"breakStart,omitempty"`
	BreakEnd   string `json:"breakEnd,omitempty"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ProfessionalID int64                    `json:"professionalId"`
	Entries        []*ScheduleEntryResponse `json:"entries"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.ScheduleResponse) *ScheduleResponse {
	entries := make([]*ScheduleEntryResponse, len(resp.Entries))
	for i, e := range resp.Entries {
		entries[i] = &ScheduleEntryResponse{
			Weekday:    e.Weekday,
			StartTime:  e.StartTime,
			EndTime:    e.EndTime,
			BreakStart: e.BreakStart,
			BreakEnd:   e.BreakEnd,
		}
	}
	return &ScheduleResponse{
		ProfessionalID: resp.ProfessionalID,
		Entries:        entries,
	}
}
