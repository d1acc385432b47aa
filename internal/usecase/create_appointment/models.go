package create_appointment

import (
	"time"

	"github.com/levkurapov/salon-booking-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	TenantID       int64            // ID тенанта (салона)
	CustomerID     int64            // ID клиента (из заголовка аутентификации)
	ProfessionalID int64            // ID мастера
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата записи (локальная полночь)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	Notes          *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64     // ID созданной записи
	TenantID       int64     // ID тенанта
	ProfessionalID int64     // ID мастера
	ServiceID      int64     // ID услуги
	CustomerID     int64     // ID клиента
	StartsAt       time.Time // Начало записи
	EndsAt         time.Time // Конец записи (StartsAt + длительность услуги)
	Status         string    // Статус записи (scheduled)

	// Денормализованные данные услуги
	ServiceName  string
	ServicePrice float64

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
