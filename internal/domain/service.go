package domain

import "time"

// Service услуга салона
// DurationMinutes неизменяемый вход генератора слотов, всегда > 0
type Service struct {
	ID              int64
	TenantID        int64
	Name            string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Professional мастер салона с независимым недельным расписанием
type Professional struct {
	ID        int64
	TenantID  int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Customer клиент салона
type Customer struct {
	ID        int64
	TenantID  int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
