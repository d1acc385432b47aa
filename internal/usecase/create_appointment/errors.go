package create_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_appointment: customer not found")

	// ErrInvalidDate возвращается при попытке записаться на прошедшую дату
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrDayNotBookable возвращается для воскресений и праздников
	ErrDayNotBookable = errors.New("create_appointment: day is not bookable")

	// ErrOutsideWorkingHours возвращается, когда слот не помещается
	// в рабочее окно мастера или пересекает перерыв
	ErrOutsideWorkingHours = errors.New("create_appointment: slot is outside working hours")

	// ErrTooLateToBook возвращается при попытке записаться на уже прошедшее время сегодня
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с существующей записью
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
