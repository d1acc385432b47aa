package get_available_days

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("get_available_days: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_days: service not found")

	// ErrInvalidDuration возвращается при некорректной длительности услуги в справочнике
	ErrInvalidDuration = errors.New("get_available_days: service duration must be positive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_days: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_days: internal error")
)
