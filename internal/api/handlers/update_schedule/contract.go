package update_schedule

import (
	"context"

	"github.com/levkurapov/salon-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceSchedule(ctx context.Context, tenantID, professionalID int64, inputs []*models.ScheduleEntryInput) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
