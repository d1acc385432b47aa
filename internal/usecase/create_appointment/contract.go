package create_appointment

import (
	"context"
	"time"

	"github.com/levkurapov/salon-booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// ListByProfessionalWithFilter внутри транзакции блокирует записи дня (FOR UPDATE)
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
	GetCustomer(ctx context.Context, tenantID, customerID int64) (*domain.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotLocker распределённая блокировка слота (опционально, поверх транзакции)
// Защищает от конкурентных бронирований между инстансами сервиса
type SlotLocker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) error
	Unlock(ctx context.Context, key string) error
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
