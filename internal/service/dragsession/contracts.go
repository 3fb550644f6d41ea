package dragsession

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/appointmentservice"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// AppointmentServiceClient интерфейс клиента AppointmentService
type AppointmentServiceClient interface {
	// GetAppointment получает запись по ID
	GetAppointment(ctx context.Context, appointmentID int64) (*domain.Appointment, error)

	// GetAppointments получает снимок записей компании на дату
	GetAppointments(ctx context.Context, companyID int64, date time.Time) ([]*domain.Appointment, error)

	// RelocateAppointment переносит запись на новые дату и время.
	// Вызывается не более одного раза на подтвержденный drag.
	RelocateAppointment(ctx context.Context, appointmentID int64, newDate time.Time, newTime types.TimeString) error

	// GetPermissions получает права пользователя на запись
	GetPermissions(ctx context.Context, userID, appointmentID int64) (*appointmentservice.Permissions, error)
}

// ConfigProvider интерфейс получения актуальной конфигурации сетки компании
type ConfigProvider interface {
	GetGridConfig(ctx context.Context, companyID int64) (*domain.GridConfig, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// SessionGauge интерфейс метрики количества активных сессий
type SessionGauge interface {
	SetActiveDragSessions(service string, count int)
	ObserveRelocation(service string, success bool)
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
