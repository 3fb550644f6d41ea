package get_day_schedule

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getDaySchedule "github.com/m04kA/SMC-CalendarService/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date              string            `json:"date"`
	CompanyID         int64             `json:"companyId"`
	Slots             []SlotView        `json:"slots"`
	Appointments      []AppointmentItem `json:"appointments"`
	HasAvailableSlots bool              `json:"hasAvailableSlots"`
}

// SlotView состояние одного слота сетки
type SlotView struct {
	StartTime  string `json:"startTime"`
	Available  bool   `json:"available"`
	Booked     bool   `json:"booked"`
	LunchBreak bool   `json:"lunchBreak"`
	PastDate   bool   `json:"pastDate"`
	PastTime   bool   `json:"pastTime"`
	Clickable  bool   `json:"clickable"`
	Disabled   bool   `json:"disabled"`
}

// AppointmentItem запись дня с позицией на сетке
type AppointmentItem struct {
	ID              int64         `json:"id"`
	OwnerID         int64         `json:"ownerId"`
	StartTime       string        `json:"startTime"`
	EndTime         string        `json:"endTime"`
	DurationMinutes int           `json:"durationMinutes"`
	ServiceName     string        `json:"serviceName"`
	Position        *PositionView `json:"position,omitempty"`
}

// PositionView позиция записи на сетке в пикселях
type PositionView struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]SlotView, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotView{
			StartTime:  slot.StartTime.String(),
			Available:  slot.Available,
			Booked:     slot.Booked,
			LunchBreak: slot.LunchBreak,
			PastDate:   slot.PastDate,
			PastTime:   slot.PastTime,
			Clickable:  slot.Clickable,
			Disabled:   slot.Disabled,
		}
	}

	appointments := make([]AppointmentItem, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		item := AppointmentItem{
			ID:              appt.ID,
			OwnerID:         appt.OwnerID,
			StartTime:       appt.StartTime.String(),
			EndTime:         appt.EndTime.String(),
			DurationMinutes: appt.DurationMinutes,
			ServiceName:     appt.ServiceName,
		}
		if pos, ok := resp.Positions[appt.ID]; ok {
			item.Position = &PositionView{Top: pos.Offset, Height: pos.Extent}
		}
		appointments[i] = item
	}

	return &DayScheduleResponse{
		Date:              resp.Date.Format(domain.DateFormat),
		CompanyID:         resp.CompanyID,
		Slots:             slots,
		Appointments:      appointments,
		HasAvailableSlots: resp.HasAvailableSlots,
	}
}

// ToUseCaseRequest создает запрос use case из URL и query параметров
func ToUseCaseRequest(userID, companyID int64, dateStr string) (*getDaySchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDaySchedule.Request{
		UserID:    userID,
		CompanyID: companyID,
		Date:      date,
	}, nil
}
