package schedule

import (
	"context"

	"github.com/levkurapov/salon-booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ListByProfessional(ctx context.Context, tenantID, professionalID int64) ([]*domain.WeeklyScheduleEntry, error)
	ReplaceForProfessional(ctx context.Context, tenantID, professionalID int64, entries []*domain.WeeklyScheduleEntry) ([]*domain.WeeklyScheduleEntry, error)
}

// CatalogRepository интерфейс справочников салона
type CatalogRepository interface {
	GetProfessional(ctx context.Context, tenantID, professionalID int64) (*domain.Professional, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
