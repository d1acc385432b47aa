package get_appointment

import (
	"time"

	"github.com/levkurapov/salon-booking-service/internal/domain"
	"github.com/levkurapov/salon-booking-service/internal/service/appointments/models"
	"github.com/levkurapov/salon-booking-service/pkg/ptr"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                 int64   `json:"id"`
	ProfessionalID     int64   `json:"professionalId"`
	ServiceID          int64   `json:"serviceId"`
	CustomerID         int64   `json:"customerId"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Status             string  `json:"status"`
	ServiceName        string  `json:"serviceName"`
	ServicePrice       float64 `json:"servicePrice"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		cancelledAt = ptr.Ptr(resp.CancelledAt.Format(time.RFC3339))
	}
	return &AppointmentResponse{
		ID:                 resp.ID,
		ProfessionalID:     resp.ProfessionalID,
		ServiceID:          resp.ServiceID,
		CustomerID:         resp.CustomerID,
		Date:               resp.StartsAt.Format(domain.DateFormat),
		StartTime:          resp.StartsAt.Format(domain.TimeFormat),
		EndTime:            resp.EndsAt.Format(domain.TimeFormat),
		Status:             resp.Status,
		ServiceName:        resp.ServiceName,
		ServicePrice:       resp.ServicePrice,
		Notes:              resp.Notes,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
