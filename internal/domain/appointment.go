package domain

import "time"

// AppointmentStatus статус записи к мастеру
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusDone      AppointmentStatus = "done"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment запись клиента к мастеру салона
// Ключевой инвариант системы: у одного мастера не может быть двух записей
// со статусом scheduled/done с пересекающимися интервалами [StartsAt, EndsAt)
type Appointment struct {
	ID             int64
	TenantID       int64
	ProfessionalID int64
	ServiceID      int64
	CustomerID     int64

	// StartsAt и EndsAt хранятся в локальном wall-clock времени салона
	// EndsAt всегда выводится как StartsAt + длительность услуги
	StartsAt time.Time
	EndsAt   time.Time

	Status AppointmentStatus

	// Денормализованные данные услуги для истории
	ServiceName  string
	ServicePrice float64

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking возвращает true, если запись занимает время мастера
// Отменённые записи и неявки не блокируют слот
func (a *Appointment) IsBlocking() bool {
	return a.Status == StatusScheduled || a.Status == StatusDone
}

// CanBeCancelled возвращает true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// IsCancelled возвращает true, если запись отменена
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCanceled
}

// ProfessionalAppointmentsFilter фильтр для получения записей мастера
type ProfessionalAppointmentsFilter struct {
	TenantID       int64              // Обязательный параметр
	ProfessionalID int64              // Обязательный параметр
	RangeStart     *time.Time         // Начало периода по starts_at (опционально)
	RangeEnd       *time.Time         // Конец периода по starts_at (опционально)
	Status         *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeAll     bool               // Включать ли отменённые записи и неявки
}
