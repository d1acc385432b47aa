package get_professional_appointments

import (
	"time"

	"github.com/levkurapov/salon-booking-service/internal/domain"
	"github.com/levkurapov/salon-booking-service/internal/service/appointments/models"
)

// AppointmentItem элемент календаря мастера
type AppointmentItem struct {
	ID           int64   `json:"id"`
	CustomerID   int64   `json:"customerId"`
	ServiceID    int64   `json:"serviceId"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// AppointmentListResponse HTTP response model
type AppointmentListResponse struct {
	Appointments []*AppointmentItem `json:"appointments"`
	Total        int                `json:"total"`
}

// FromServiceResponse конвертирует список сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	items := make([]*AppointmentItem, len(resp.Appointments))
	for i, a := range resp.Appointments {
		items[i] = &AppointmentItem{
			ID:           a.ID,
			CustomerID:   a.CustomerID,
			ServiceID:    a.ServiceID,
			Date:         a.StartsAt.Format(domain.DateFormat),
			StartTime:    a.StartsAt.Format(domain.TimeFormat),
			EndTime:      a.EndsAt.Format(domain.TimeFormat),
			Status:       a.Status,
			ServiceName:  a.ServiceName,
			ServicePrice: a.ServicePrice,
			Notes:        a.Notes,
			CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		}
	}
	return &AppointmentListResponse{
		Appointments: items,
		Total:        resp.Total,
	}
}
