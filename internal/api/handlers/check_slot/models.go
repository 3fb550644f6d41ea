package check_slot

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	checkSlot "github.com/m04kA/SMC-CalendarService/internal/usecase/check_slot"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// CheckSlotResponse HTTP response model
type CheckSlotResponse struct {
	Available bool `json:"available"`

	WithinBusinessHours bool `json:"withinBusinessHours"`
	LunchBreak          bool `json:"lunchBreak"`
	InPast              bool `json:"inPast"`
	Conflicts           bool `json:"conflicts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkSlot.Response) *CheckSlotResponse {
	return &CheckSlotResponse{
		Available:           resp.Available,
		WithinBusinessHours: resp.WithinBusinessHours,
		LunchBreak:          resp.LunchBreak,
		InPast:              resp.InPast,
		Conflicts:           resp.Conflicts,
	}
}

// ToUseCaseRequest создает запрос use case из URL и query параметров
func ToUseCaseRequest(userID, companyID int64, dateStr, timeStr, durationStr string) (*checkSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	duration := 0
	if durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
	}

	return &checkSlot.Request{
		UserID:          userID,
		CompanyID:       companyID,
		Date:            date,
		Time:            slotTime,
		DurationMinutes: duration,
	}, nil
}
