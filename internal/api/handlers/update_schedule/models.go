package update_schedule

import (
	"github.com/levkurapov/salon-booking-service/internal/service/schedule/models"
)

// ScheduleEntryRequest строка недельного расписания на вход
type ScheduleEntryRequest struct {
	Weekday    int    `json:"weekday"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	BreakStart string `json:"breakStart,omitempty"`
	BreakEnd   string `json:"breakEnd,omitempty"`
}

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Entries []*ScheduleEntryRequest `json:"entries"`
}

// ScheduleEntryResponse строка недельного расписания в ответе
type ScheduleEntryResponse struct {
	ID         int64  `json:"id"`
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

// ToServiceInputs конвертирует HTTP запрос в модели сервиса
func (r *UpdateScheduleRequest) ToServiceInputs() []*models.ScheduleEntryInput {
	inputs := make([]*models.ScheduleEntryInput, len(r.Entries))
	for i, e := range r.Entries {
		inputs[i] = &models.ScheduleEntryInput{
			Weekday:    e.Weekday,
			StartTime:  e.StartTime,
			EndTime:    e.EndTime,
			BreakStart: e.BreakStart,
			BreakEnd:   e.BreakEnd,
		}
	}
	return inputs
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.ScheduleResponse) *ScheduleResponse {
	entries := make([]*ScheduleEntryResponse, len(resp.Entries))
	for i, e := range resp.Entries {
		entries[i] = &ScheduleEntryResponse{
			ID:         e.ID,
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
