package get_available_days

import (
	getAvailableDays "github.com/levkurapov/salon-booking-service/internal/usecase/get_available_days"
)

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	ProfessionalID int64    `json:"professionalId"`
	ServiceID      int64    `json:"serviceId"`
	Year           int      `json:"year"`
	Month          int      `json:"month"`
	Days           []string `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	return &AvailableDaysResponse{
		ProfessionalID: resp.ProfessionalID,
		ServiceID:      resp.ServiceID,
		Year:           resp.Year,
		Month:          int(resp.Month),
		Days:           resp.Days,
	}
}
