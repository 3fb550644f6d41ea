package get_week_overview

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getWeekOverview "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week_overview"
)

// WeekOverviewResponse HTTP response model
type WeekOverviewResponse struct {
	CompanyID       int64         `json:"companyId"`
	StartDate       string        `json:"startDate"`
	DefaultViewDate string        `json:"defaultViewDate"`
	Days            []DayOverview `json:"days"`
}

// DayOverview сводка по одному рабочему дню
type DayOverview struct {
	Date              string `json:"date"`
	Weekday           string `json:"weekday"`
	IsToday           bool   `json:"isToday"`
	IsPast            bool   `json:"isPast"`
	AppointmentCount  int    `json:"appointmentCount"`
	HasAvailableSlots bool   `json:"hasAvailableSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekOverview.Response) *WeekOverviewResponse {
	days := make([]DayOverview, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = DayOverview{
			Date:              day.Date.Format(domain.DateFormat),
			Weekday:           day.Weekday.String(),
			IsToday:           day.IsToday,
			IsPast:            day.IsPast,
			AppointmentCount:  day.AppointmentCount,
			HasAvailableSlots: day.HasAvailableSlots,
		}
	}

	return &WeekOverviewResponse{
		CompanyID:       resp.CompanyID,
		StartDate:       resp.StartDate.Format(domain.DateFormat),
		DefaultViewDate: resp.DefaultViewDate.Format(domain.DateFormat),
		Days:            days,
	}
}

// ToUseCaseRequest создает запрос use case из URL и query параметров.
// startDate и days опциональны: пустая дата - окно от даты по умолчанию,
// пустое days - неделя.
func ToUseCaseRequest(userID, companyID int64, startDateStr, daysStr string) (*getWeekOverview.Request, error) {
	req := &getWeekOverview.Request{
		UserID:    userID,
		CompanyID: companyID,
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = startDate
	}

	if daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return nil, err
		}
		req.Days = days
	}

	return req, nil
}
