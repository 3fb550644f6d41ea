package start_drag

import (
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/dragsession"
)

// StartDragRequest HTTP request model
type StartDragRequest struct {
	AppointmentID int64                `json:"appointmentId"`
	Origin        handlers.PointerView `json:"origin"`
}

// ToServiceRequest конвертирует HTTP request в запрос менеджера drag-сессий
func (r *StartDragRequest) ToServiceRequest(userID, companyID int64) *dragsession.StartDragRequest {
	return &dragsession.StartDragRequest{
		UserID:        userID,
		CompanyID:     companyID,
		AppointmentID: r.AppointmentID,
		OriginPosition: domain.PointerPosition{
			X: r.Origin.X,
			Y: r.Origin.Y,
		},
	}
}
