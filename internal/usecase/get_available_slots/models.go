package get_available_slots

import (
	"time"

	"github.com/levkurapov/salon-booking-service/pkg/types"
)

// Request модель запроса на получение свободных времён дня
type Request struct {
	TenantID       int64     // ID тенанта (салона)
	ProfessionalID int64     // ID мастера
	ServiceID      int64     // ID услуги
	Date           time.Time // Дата (локальная полночь)
}

// Response модель ответа со списком свободных времён начала
// Пустой список - нормальный результат (нет расписания, прошлое, праздник,
// воскресенье или всё занято), а не ошибка
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	ProfessionalID  int64              // ID мастера
	ServiceID       int64              // ID услуги
	DurationMinutes int                // Длительность услуги
	Slots           []types.TimeString // Свободные времена начала HH:MM по возрастанию
}
