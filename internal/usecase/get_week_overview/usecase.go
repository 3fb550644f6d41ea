package get_week_overview

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar"
)

const defaultWindowDays = 7

// UseCase use case построения недельного обзора расписания
type UseCase struct {
	client       AppointmentServiceClient
	configs      ConfigProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client AppointmentServiceClient,
	configs ConfigProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		configs:      configs,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит обзор рабочих дней окна: счетчики записей и наличие
// свободных слотов по каждому дню
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekOverview: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время и конфигурация сетки
	now := uc.timeProvider.Now()

	cfg, err := uc.configs.GetGridConfig(ctx, req.CompanyID)
	if err != nil {
		uc.logger.Error("GetWeekOverview: failed to get grid config for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get grid config: %v", ErrInternal, err)
	}

	policy := calendar.NewPolicy(cfg)
	engine := availability.NewEngine(cfg)

	// 3. Окно обзора: явное начало или дата представления по умолчанию
	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = policy.AppropriateDefaultViewDate(now)
	}

	days := req.Days
	if days == 0 {
		days = defaultWindowDays
	}

	businessDays := policy.BusinessDaysForWindow(startDate, days)

	uc.logger.Info("GetWeekOverview: user=%d, company=%d, window=%s+%dd, business days=%d",
		req.UserID, req.CompanyID, startDate.Format(domain.DateFormat), days, len(businessDays))

	// 4. Сводка по каждому рабочему дню окна
	overview := make([]DayOverview, 0, len(businessDays))
	for _, day := range businessDays {
		appointments, err := uc.client.GetAppointments(ctx, req.CompanyID, day)
		if err != nil {
			uc.logger.Error("GetWeekOverview: failed to get appointments for %s: %v",
				day.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		activeCount := 0
		for _, appt := range appointments {
			if appt.IsActive() {
				activeCount++
			}
		}

		overview = append(overview, DayOverview{
			Date:              day,
			Weekday:           day.Weekday(),
			IsToday:           isSameDay(day, now),
			IsPast:            availability.IsDateInPast(day, now),
			AppointmentCount:  activeCount,
			HasAvailableSlots: engine.HasAvailableSlotsForDay(day, appointments, now),
		})
	}

	return &Response{
		CompanyID:       req.CompanyID,
		StartDate:       startDate,
		DefaultViewDate: policy.AppropriateDefaultViewDate(now),
		Days:            overview,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}
	if req.Days < 0 || req.Days > 31 {
		return fmt.Errorf("%w: days must be in range [0, 31]", ErrInvalidInput)
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
