package gridconfig

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации сетки
type ConfigRepository interface {
	GetByCompany(ctx context.Context, companyID int64) (*domain.GridConfig, error)
	Create(ctx context.Context, config *domain.GridConfig) (*domain.GridConfig, error)
	DeleteByCompany(ctx context.Context, companyID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
