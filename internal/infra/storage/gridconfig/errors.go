package gridconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация сетки не найдена
	ErrConfigNotFound = errors.New("gridconfig.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("gridconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("gridconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("gridconfig.repository: failed to scan row")
)
