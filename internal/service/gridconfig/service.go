package gridconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	configRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/gridconfig"
	"github.com/m04kA/SMC-CalendarService/internal/service/gridconfig/models"
)

// Service сервис для работы с конфигурацией сетки расписания.
// Конфигурация заменяется только атомарно: невалидная конфигурация
// отклоняется до записи, предыдущая остается в силе.
type Service struct {
	configRepo ConfigRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации сетки
func NewService(
	configRepo ConfigRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetByCompany получает конфигурацию сетки компании.
// Если конфигурация не сохранена, возвращает значения по умолчанию.
func (s *Service) GetByCompany(ctx context.Context, companyID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetByCompany: fetching grid config for company=%d", companyID)

	config, err := s.configRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("GetByCompany: no config for company=%d, using defaults", companyID)
			return models.FromDomainConfig(domain.DefaultGridConfig(companyID), true), nil
		}
		s.logger.Error("GetByCompany: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: GetByCompany - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config, false), nil
}

// GetGridConfig получает доменную конфигурацию сетки компании
// (значения по умолчанию, если не сохранена).
// Используется движками расписания и drag-сессиями.
func (s *Service) GetGridConfig(ctx context.Context, companyID int64) (*domain.GridConfig, error) {
	config, err := s.configRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return domain.DefaultGridConfig(companyID), nil
		}
		return nil, fmt.Errorf("%w: GetGridConfig - repository error: %v", ErrInternal, err)
	}
	return config, nil
}

// Apply применяет новую конфигурацию сетки компании.
// Валидирует инварианты до записи; замена выполняется атомарно
// в сериализуемой транзакции (удаление старой + вставка новой).
func (s *Service) Apply(ctx context.Context, req *models.ApplyConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Apply: applying grid config for company=%d by user=%d", req.CompanyID, req.UserID)

	if req.CompanyID <= 0 {
		return nil, fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	config := req.ToDomainConfig()
	if err := config.Validate(); err != nil {
		s.logger.Warn("Apply: validation failed for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var applied *domain.GridConfig

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Атомарная замена: старая конфигурация удаляется и новая
		// вставляется в одной транзакции
		if err := s.configRepo.DeleteByCompany(txCtx, req.CompanyID); err != nil &&
			!errors.Is(err, configRepo.ErrConfigNotFound) {
			return fmt.Errorf("%w: Apply - delete previous config: %v", ErrInternal, err)
		}

		created, err := s.configRepo.Create(txCtx, config)
		if err != nil {
			return fmt.Errorf("%w: Apply - create config: %v", ErrInternal, err)
		}

		applied = created
		return nil
	})

	if err != nil {
		s.logger.Error("Apply: failed to apply config for company=%d: %v", req.CompanyID, err)
		return nil, err
	}

	s.logger.Info("Apply: successfully applied config id=%d for company=%d", applied.ID, req.CompanyID)
	return models.FromDomainConfig(applied, false), nil
}
