package models

import (
	"fmt"
	"time"

	"github.com/levkurapov/salon-booking-service/internal/domain"
)

// AppointmentResponse модель записи для ответов сервиса
type AppointmentResponse struct {
	ID             int64
	TenantID       int64
	ProfessionalID int64
	ServiceID      int64
	CustomerID     int64
	StartsAt       time.Time
	EndsAt         time.Time
	Status         string

	ServiceName  string
	ServicePrice float64

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
	Total        int
}

// GetCustomerAppointmentsRequest запрос истории записей клиента
type GetCustomerAppointmentsRequest struct {
	TenantID   int64
	CustomerID int64
	Status     *string // Опциональный фильтр по статусу
}

// GetProfessionalAppointmentsRequest запрос записей мастера с фильтрацией
type GetProfessionalAppointmentsRequest struct {
	TenantID       int64
	ProfessionalID int64
	RangeStart     *time.Time
	RangeEnd       *time.Time
	Status         *string
	IncludeAll     bool
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetProfessionalAppointmentsRequest) ToDomainFilter() (domain.ProfessionalAppointmentsFilter, error) {
	filter := domain.ProfessionalAppointmentsFilter{
		TenantID:       r.TenantID,
		ProfessionalID: r.ProfessionalID,
		RangeStart:     r.RangeStart,
		RangeEnd:       r.RangeEnd,
		IncludeAll:     r.IncludeAll,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return domain.ProfessionalAppointmentsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	TenantID   int64
	CustomerID int64 // Клиент может отменить только свою запись
	Reason     string
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(s) {
	case domain.StatusScheduled, domain.StatusDone, domain.StatusCanceled, domain.StatusNoShow:
		return domain.AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// FromDomainAppointment конвертирует domain.Appointment в response модель
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 a.ID,
		TenantID:           a.TenantID,
		ProfessionalID:     a.ProfessionalID,
		ServiceID:          a.ServiceID,
		CustomerID:         a.CustomerID,
		StartsAt:           a.StartsAt,
		EndsAt:             a.EndsAt,
		Status:             string(a.Status),
		ServiceName:        a.ServiceName,
		ServicePrice:       a.ServicePrice,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CancelledAt:        a.CancelledAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain.Appointment
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(list))
	for i, a := range list {
		result[i] = FromDomainAppointment(a)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}
