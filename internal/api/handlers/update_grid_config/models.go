package update_grid_config

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/gridconfig/models"
)

// UpdateGridConfigRequest HTTP request model.
// Не указанные поля получают значения по умолчанию.
type UpdateGridConfigRequest struct {
	SlotHeightPx           *float64 `json:"slotHeightPx,omitempty"`
	PixelsPerMinute        *float64 `json:"pixelsPerMinute,omitempty"`
	SlotDurationMinutes    *int     `json:"slotDurationMinutes,omitempty"`
	BusinessStartHour      *int     `json:"businessStartHour,omitempty"`
	BusinessEndHour        *int     `json:"businessEndHour,omitempty"`
	LunchStartHour         *int     `json:"lunchStartHour,omitempty"`
	LunchEndHour           *int     `json:"lunchEndHour,omitempty"`
	DefaultDurationMinutes *int     `json:"defaultDurationMinutes,omitempty"`
	WorkingDays            []int    `json:"workingDays,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса.
// База - значения по умолчанию, поверх них накладываются указанные поля.
func (r *UpdateGridConfigRequest) ToServiceRequest(userID, companyID int64) *models.ApplyConfigRequest {
	base := domain.DefaultGridConfig(companyID)

	req := &models.ApplyConfigRequest{
		UserID:    userID,
		CompanyID: companyID,

		SlotHeightPx:           base.SlotHeightPx,
		PixelsPerMinute:        base.PixelsPerMinute,
		SlotDurationMinutes:    base.SlotDurationMinutes,
		BusinessStartHour:      base.BusinessStartHour,
		BusinessEndHour:        base.BusinessEndHour,
		LunchStartHour:         base.LunchStartHour,
		LunchEndHour:           base.LunchEndHour,
		DefaultDurationMinutes: base.DefaultDurationMinutes,
		WorkingDays:            base.WorkingDays,
	}

	if r.SlotHeightPx != nil {
		req.SlotHeightPx = *r.SlotHeightPx
	}
	if r.PixelsPerMinute != nil {
		req.PixelsPerMinute = *r.PixelsPerMinute
	}
	if r.SlotDurationMinutes != nil {
		req.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.BusinessStartHour != nil {
		req.BusinessStartHour = *r.BusinessStartHour
	}
	if r.BusinessEndHour != nil {
		req.BusinessEndHour = *r.BusinessEndHour
	}
	if r.LunchStartHour != nil {
		req.LunchStartHour = *r.LunchStartHour
	}
	if r.LunchEndHour != nil {
		req.LunchEndHour = *r.LunchEndHour
	}
	if r.DefaultDurationMinutes != nil {
		req.DefaultDurationMinutes = *r.DefaultDurationMinutes
	}
	if r.WorkingDays != nil {
		req.WorkingDays = r.WorkingDays
	}

	return req
}

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
	}
}
