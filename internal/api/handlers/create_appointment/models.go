package create_appointment

import (
	"time"

	"github.com/levkurapov/salon-booking-service/internal/calendar"
	"github.com/levkurapov/salon-booking-service/internal/domain"
	createAppointment "github.com/levkurapov/salon-booking-service/internal/usecase/create_appointment"
	"github.com/levkurapov/salon-booking-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	Date           string  `json:"date"`      // "2026-09-15"
	StartTime      string  `json:"startTime"` // "10:00"
	Notes          *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	CustomerID     int64   `json:"customerId"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`
	ServiceName    string  `json:"serviceName"`
	ServicePrice   float64 `json:"servicePrice"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(tenantID, customerID int64) (*createAppointment.Request, error) {
	date, err := calendar.ParseLocalDate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		TenantID:       tenantID,
		CustomerID:     customerID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		Date:           date,
		StartTime:      startTime,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.ID,
		ProfessionalID: resp.ProfessionalID,
		ServiceID:      resp.ServiceID,
		CustomerID:     resp.CustomerID,
		Date:           resp.StartsAt.Format(domain.DateFormat),
		StartTime:      resp.StartsAt.Format(domain.TimeFormat),
		EndTime:        resp.EndsAt.Format(domain.TimeFormat),
		Status:         resp.Status,
		ServiceName:    resp.ServiceName,
		ServicePrice:   resp.ServicePrice,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
