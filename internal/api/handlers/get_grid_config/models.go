package get_grid_config

import (
	"github.com/m04kA/SMC-CalendarService/internal/service/gridconfig/models"
)

// GridConfigResponse HTTP response model
type GridConfigResponse struct {
	ID        int64 `json:"id"`
	CompanyID int64 `json:"companyId"`

	SlotHeightPx           float64 `json:"slotHeightPx"`
	PixelsPerMinute        float64 `json:"pixelsPerMinute"`
	SlotDurationMinutes    int     `json:"slotDurationMinutes"`
	BusinessStartHour      int     `json:"businessStartHour"`
	BusinessEndHour        int     `json:"businessEndHour"`
	LunchStartHour         int     `json:"lunchStartHour"`
	LunchEndHour           int     `json:"lunchEndHour"`
	DefaultDurationMinutes int     `json:"defaultDurationMinutes"`
	WorkingDays            []int   `json:"workingDays"`

	IsDefault bool `json:"isDefault"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ConfigResponse) *GridConfigResponse {
	return &GridConfigResponse{
		ID:                     resp.ID,
		CompanyID:              resp.CompanyID,
		SlotHeightPx:           resp.SlotHeightPx,
		PixelsPerMinute:        resp.PixelsPerMinute,
		SlotDurationMinutes:    resp.SlotDurationMinutes,
		BusinessStartHour:      resp.BusinessStartHour,
		BusinessEndHour:        resp.BusinessEndHour,
		LunchStartHour:         resp.LunchStartHour,
		LunchEndHour:           resp.LunchEndHour,
		DefaultDurationMinutes: resp.DefaultDurationMinutes,
		WorkingDays:            resp.WorkingDays,
		IsDefault:              resp.IsDefault,
	}
}
