package get_day_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability"
	"github.com/m04kA/SMC-CalendarService/internal/service/grid"
)

// UseCase use case построения дневной раскладки сетки расписания
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

// Execute строит дневную раскладку: состояние слотов, записи и их позиции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: user=%d, company=%d, date=%s",
		req.UserID, req.CompanyID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время
	now := uc.timeProvider.Now()

	// 3. Конфигурация сетки компании (значения по умолчанию, если не сохранена)
	cfg, err := uc.configs.GetGridConfig(ctx, req.CompanyID)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get grid config for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get grid config: %v", ErrInternal, err)
	}

	// 4. Снимок записей на дату
	appointments, err := uc.client.GetAppointments(ctx, req.CompanyID, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Раскладка слотов и позиции записей вычисляются по требованию
	// из текущей конфигурации и снимка записей
	calc := grid.NewCalculator(cfg)
	engine := availability.NewEngine(cfg)

	slots := calc.DayLayout(req.Date, appointments, now)

	active := make([]*domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.IsActive() {
			active = append(active, appt)
		}
	}

	positions := calc.PositionsForMany(active)

	views := make([]AppointmentView, 0, len(active))
	for _, appt := range active {
		endTime, err := appt.EffectiveEndTime(cfg.DefaultDurationMinutes)
		if err != nil {
			uc.logger.Warn("GetDaySchedule: skipping appointment id=%d with invalid time: %v", appt.ID, err)
			continue
		}
		views = append(views, AppointmentView{
			ID:              appt.ID,
			OwnerID:         appt.OwnerID,
			StartTime:       appt.StartTime,
			EndTime:         endTime,
			DurationMinutes: appt.EffectiveDurationMinutes(cfg.DefaultDurationMinutes),
			ServiceName:     appt.ServiceName,
		})
	}

	uc.logger.Info("GetDaySchedule: built layout for company=%d, date=%s: %d slots, %d appointments",
		req.CompanyID, req.Date.Format(domain.DateFormat), len(slots), len(views))

	return &Response{
		Date:              req.Date,
		CompanyID:         req.CompanyID,
		Slots:             slots,
		Appointments:      views,
		Positions:         positions,
		HasAvailableSlots: engine.HasAvailableSlotsForDay(req.Date, appointments, now),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
