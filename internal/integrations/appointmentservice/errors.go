package appointmentservice

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrRelocationConflict возвращается, когда сервис отклонил перенос
	// из-за конфликта (слот уже занят на стороне хранилища)
	ErrRelocationConflict = errors.New("appointmentservice client: relocation conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("appointmentservice client: invalid response")
)
