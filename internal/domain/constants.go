package domain

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // 8 часов

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// FineSlotStepMinutes шаг генерации слотов для выбора времени на конкретный день
// Клиенту предлагаются времена :00/:15/:30/:45 независимо от длительности услуги
const FineSlotStepMinutes = 15

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы записей, занимающих время мастера
// Используются при подсчёте пересечений слотов
var BlockingStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusDone,
}

// NonBlockingStatuses статусы записей, не занимающих время мастера
var NonBlockingStatuses = []AppointmentStatus{
	StatusCanceled,
	StatusNoShow,
}
