package handlers

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// PointerView позиция указателя
type PointerView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DragSessionView представление drag-сессии для HTTP и WebSocket ответов.
// Общее для всех drag endpoint'ов.
type DragSessionView struct {
	AppointmentID int64  `json:"appointmentId"`
	State         string `json:"state"`

	OriginalDate string      `json:"originalDate"`
	Pointer      PointerView `json:"pointer"`

	TargetDate string `json:"targetDate,omitempty"`
	TargetTime string `json:"targetTime,omitempty"`

	IsValid              bool `json:"isValid"`
	MovingToDifferentDay bool `json:"movingToDifferentDay"`
}

// NewDragSessionView строит представление сессии
func NewDragSessionView(session *domain.DragSession) *DragSessionView {
	view := &DragSessionView{
		AppointmentID: session.AppointmentID,
		State:         string(session.State),
		OriginalDate:  session.OriginalDate.Format(domain.DateFormat),
		Pointer: PointerView{
			X: session.CurrentPointerPosition.X,
			Y: session.CurrentPointerPosition.Y,
		},
		IsValid:              session.IsValid,
		MovingToDifferentDay: session.IsMovingToDifferentDay(),
	}

	if !session.TargetDate.IsZero() {
		view.TargetDate = session.TargetDate.Format(domain.DateFormat)
	}
	if !session.TargetTime.IsZero() {
		view.TargetTime = session.TargetTime.String()
	}

	return view
}
