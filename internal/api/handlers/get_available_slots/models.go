package get_available_slots

import (
	"github.com/levkurapov/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/levkurapov/salon-booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProfessionalID  int64    `json:"professionalId"`
	ServiceID       int64    `json:"serviceId"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}
	return &AvailableSlotsResponse{
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
