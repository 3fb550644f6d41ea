package check_slot

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability"
)

// UseCase use case проверки доступности конкретного слота
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

// Execute проверяет доступность слота и возвращает детальные причины отказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время и конфигурация сетки
	now := uc.timeProvider.Now()

	cfg, err := uc.configs.GetGridConfig(ctx, req.CompanyID)
	if err != nil {
		uc.logger.Error("CheckSlot: failed to get grid config for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get grid config: %v", ErrInternal, err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = cfg.SlotDurationMinutes
	}

	// 3. Снимок записей на дату
	appointments, err := uc.client.GetAppointments(ctx, req.CompanyID, req.Date)
	if err != nil {
		uc.logger.Error("CheckSlot: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Проверка по всем правилам доступности
	engine := availability.NewEngine(cfg)

	resp := &Response{
		WithinBusinessHours: engine.IsWithinBusinessHours(req.Time),
		LunchBreak:          engine.IsLunchBreak(req.Time),
		InPast:              availability.IsDateInPast(req.Date, now) || availability.IsTimeInPast(req.Date, req.Time, now),
		Conflicts:           engine.OverlapsExisting(req.Date, req.Time, duration, appointments, 0),
	}
	resp.Available = resp.WithinBusinessHours && !resp.LunchBreak && !resp.InPast && !resp.Conflicts

	uc.logger.Info("CheckSlot: company=%d, date=%s, time=%s, duration=%d -> available=%t",
		req.CompanyID, req.Date.Format(domain.DateFormat), req.Time, duration, resp.Available)

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}
	return nil
}
