package schedule

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("schedule.service: professional not found")

	// ErrInvalidEntry возвращается при нарушении инвариантов строки расписания
	ErrInvalidEntry = errors.New("schedule.service: invalid schedule entry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
