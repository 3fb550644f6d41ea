package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// DragState состояние drag-сессии
type DragState string

const (
	// DragStateDragging запись перетаскивается, цель может меняться
	DragStateDragging DragState = "dragging"

	// DragStateCommitting EndDrag вызван, перенос ожидает подтверждения
	// внешнего сервиса; новые StartDrag отклоняются до завершения
	DragStateCommitting DragState = "committing"
)

// PointerPosition позиция указателя в координатном пространстве сетки
type PointerPosition struct {
	X float64
	Y float64
}

// DragSession transient state of a single in-progress appointment relocation.
// The only mutable entity owned by this service; one active session per viewer.
type DragSession struct {
	UserID        int64
	AppointmentID int64

	State DragState

	Appointment *Appointment
	Permissions Permissions
	Config      *GridConfig // Снимок конфигурации на момент начала drag

	// Snapshots снимки записей по дням ("YYYY-MM-DD"), подгружаются
	// лениво при смене целевого дня
	Snapshots map[string][]*Appointment

	OriginalPosition PointerPosition
	OriginalDate     time.Time

	CurrentPointerPosition PointerPosition

	TargetDate time.Time        // Нулевое значение = цель не определена
	TargetTime types.TimeString // Пустое значение = цель не определена

	IsValid bool

	StartedAt time.Time
	UpdatedAt time.Time
}

// SnapshotFor returns the appointment snapshot for date, if loaded
func (s *DragSession) SnapshotFor(date time.Time) ([]*Appointment, bool) {
	appts, ok := s.Snapshots[date.Format(DateFormat)]
	return appts, ok
}

// SetSnapshot stores the appointment snapshot for date
func (s *DragSession) SetSnapshot(date time.Time, appts []*Appointment) {
	if s.Snapshots == nil {
		s.Snapshots = make(map[string][]*Appointment)
	}
	s.Snapshots[date.Format(DateFormat)] = appts
}

// Clone returns a detached copy of the session that is safe to read after
// the original has been handed back to its owner. The snapshot map is copied;
// Appointment and Config are immutable after the session starts and are shared.
func (s *DragSession) Clone() *DragSession {
	clone := *s
	if s.Snapshots != nil {
		clone.Snapshots = make(map[string][]*Appointment, len(s.Snapshots))
		for day, appts := range s.Snapshots {
			clone.Snapshots[day] = appts
		}
	}
	return &clone
}

// HasTarget returns true if a drop target has been resolved
func (s *DragSession) HasTarget() bool {
	return !s.TargetDate.IsZero() && !s.TargetTime.IsZero()
}

// IsMovingToDifferentDay returns true iff both dates are set and denote
// different calendar days
func (s *DragSession) IsMovingToDifferentDay() bool {
	if s.OriginalDate.IsZero() || s.TargetDate.IsZero() {
		return false
	}
	y1, m1, d1 := s.OriginalDate.Date()
	y2, m2, d2 := s.TargetDate.Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}
