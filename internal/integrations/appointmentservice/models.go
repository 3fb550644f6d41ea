package appointmentservice

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Appointment модель записи из AppointmentService
type Appointment struct {
	ID              int64   `json:"id"`
	CompanyID       int64   `json:"company_id"`
	OwnerID         int64   `json:"owner_id"`
	Date            string  `json:"date"`       // YYYY-MM-DD
	StartTime       string  `json:"start_time"` // HH:MM
	EndTime         *string `json:"end_time,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"service_name"`
	ClientName      *string `json:"client_name,omitempty"`
	ClientPhone     *string `json:"client_phone,omitempty"`
}

// Permissions права пользователя на запись, вычисленные AppointmentService
// по роли и владению
type Permissions struct {
	CanDrag        bool `json:"can_drag"`
	CanViewDetails bool `json:"can_view_details"`
}

// RelocateRequest модель запроса на перенос записи
type RelocateRequest struct {
	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM
}

// ErrorResponse модель ошибки от AppointmentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует модель сервиса в доменную запись
func (a *Appointment) ToDomain() (*domain.Appointment, error) {
	date, err := time.Parse(domain.DateFormat, a.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(a.StartTime)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		ID:          a.ID,
		CompanyID:   a.CompanyID,
		OwnerID:     a.OwnerID,
		Date:        date,
		StartTime:   startTime,
		Status:      domain.AppointmentStatus(a.Status),
		ServiceName: a.ServiceName,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
	}

	if a.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*a.EndTime)
		if err != nil {
			return nil, err
		}
		appt.EndTime = endTime
	}

	if a.DurationMinutes != nil {
		appt.DurationMinutes = *a.DurationMinutes
	}

	return appt, nil
}
