package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a scheduled appointment as seen by the calendar grid.
// Records are owned by the external AppointmentService; this service only reads
// snapshots and proposes relocations.
type Appointment struct {
	ID        int64
	CompanyID int64
	OwnerID   int64 // ID владельца записи (мастера/менеджера)

	Date      time.Time        // Календарный день записи (без времени)
	StartTime types.TimeString // Время начала (HH:MM)

	// EndTime явное время окончания (опционально, пустое = не задано)
	EndTime types.TimeString

	// DurationMinutes длительность в минутах (0 = не задана,
	// используется длительность по умолчанию из конфигурации)
	DurationMinutes int

	Status AppointmentStatus

	// Denormalized data for display
	ServiceName string
	ClientName  *string
	ClientPhone *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot on the grid
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// EffectiveDurationMinutes returns the duration used for layout and overlap math.
// Prefers the explicit end-start delta over the declared duration over defaultDuration.
// A negative end-start delta is floored at zero.
func (a *Appointment) EffectiveDurationMinutes(defaultDuration int) int {
	if !a.EndTime.IsZero() && !a.StartTime.IsZero() {
		delta, err := a.EndTime.SubMinutes(a.StartTime)
		if err == nil {
			if delta < 0 {
				return 0
			}
			return delta
		}
	}
	if a.DurationMinutes > 0 {
		return a.DurationMinutes
	}
	return defaultDuration
}

// EffectiveEndTime returns the end of the appointment interval [start, end)
func (a *Appointment) EffectiveEndTime(defaultDuration int) (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.EffectiveDurationMinutes(defaultDuration))
}

// Permissions права текущего пользователя на запись.
// Вычисляются внешним сервисом по роли и владению, здесь не пересчитываются.
type Permissions struct {
	CanDrag        bool
	CanViewDetails bool
}

// InactiveStatuses статусы записей, не занимающих слот на сетке
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}
