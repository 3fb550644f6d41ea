package end_drag

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/dragsession"
)

// EndDragResponse HTTP response model
type EndDragResponse struct {
	AppointmentID       int64  `json:"appointmentId"`
	NewDate             string `json:"newDate"`
	NewTime             string `json:"newTime"`
	MovedToDifferentDay bool   `json:"movedToDifferentDay"`
}

// FromServiceResult конвертирует результат менеджера в HTTP response
func FromServiceResult(result *dragsession.EndDragResult) *EndDragResponse {
	return &EndDragResponse{
		AppointmentID:       result.AppointmentID,
		NewDate:             result.NewDate.Format(domain.DateFormat),
		NewTime:             result.NewTime.String(),
		MovedToDifferentDay: result.MovedToDifferentDay,
	}
}
