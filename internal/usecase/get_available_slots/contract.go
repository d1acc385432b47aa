package get_available_slots

import (
	"context"
	"time"

	"github.com/levkurapov/salon-booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListByProfessionalWithFilter получает записи мастера на конкретный день
	ListByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ListByProfessional(ctx context.Context, tenantID, professionalID int64) ([]*domain.WeeklyScheduleEntry, error)
}

// CatalogRepository интерфейс справочников салона
type CatalogRepository interface {
	GetService(ctx context.Context, tenantID, serviceID int64) (*domain.Service, error)
	GetProfessional(ctx context.Context, tenantID, professionalID int64) (*domain.Professional, error)
}

// HolidayCalendar интерфейс календаря нерабочих дат
type HolidayCalendar interface {
	IsHoliday(date time.Time) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
