package get_day_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// AppointmentServiceClient интерфейс клиента AppointmentService
type AppointmentServiceClient interface {
	GetAppointments(ctx context.Context, companyID int64, date time.Time) ([]*domain.Appointment, error)
}

// ConfigProvider интерфейс получения актуальной конфигурации сетки
type ConfigProvider interface {
	GetGridConfig(ctx context.Context, companyID int64) (*domain.GridConfig, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
