package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrAccessDenied возвращается при попытке клиента работать с чужой записью
	ErrAccessDenied = errors.New("appointments.service: access denied")

	// ErrCannotCancel возвращается, когда запись нельзя отменить в текущем статусе
	ErrCannotCancel = errors.New("appointments.service: appointment cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
