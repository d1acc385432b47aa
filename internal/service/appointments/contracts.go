package appointments

import (
	"context"

	"github.com/levkurapov/salon-booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Appointment, error)
	ListByCustomer(ctx context.Context, tenantID, customerID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	ListByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, tenantID, id int64, reason string) error
	UpdateStatus(ctx context.Context, tenantID, id int64, status domain.AppointmentStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
