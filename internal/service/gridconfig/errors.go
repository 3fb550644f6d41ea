package gridconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация не найдена
	ErrConfigNotFound = errors.New("grid config not found")

	// ErrInvalidConfig возвращается при нарушении инвариантов конфигурации;
	// предыдущая конфигурация остается в силе
	ErrInvalidConfig = errors.New("invalid grid config")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("gridconfig service: internal error")
)
