package gridconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с конфигурацией сетки расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации сетки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCompany получает конфигурацию сетки компании
func (r *Repository) GetByCompany(ctx context.Context, companyID int64) (*domain.GridConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"slot_height_px",
		"pixels_per_minute",
		"slot_duration_minutes",
		"business_start_hour",
		"business_end_hour",
		"lunch_start_hour",
		"lunch_end_hour",
		"default_duration_minutes",
		"working_days",
		"created_at",
		"updated_at",
	).
		From("grid_configs").
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.GridConfig
	var workingDays pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.CompanyID,
		&config.SlotHeightPx,
		&config.PixelsPerMinute,
		&config.SlotDurationMinutes,
		&config.BusinessStartHour,
		&config.BusinessEndHour,
		&config.LunchStartHour,
		&config.LunchEndHour,
		&config.DefaultDurationMinutes,
		&workingDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - scan config: %v", ErrScanRow, err)
	}

	config.WorkingDays = make([]int, len(workingDays))
	for i, d := range workingDays {
		config.WorkingDays[i] = int(d)
	}
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Create создает новую конфигурацию сетки.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, config *domain.GridConfig) (*domain.GridConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingDays := make(pq.Int64Array, len(config.WorkingDays))
	for i, d := range config.WorkingDays {
		workingDays[i] = int64(d)
	}

	query, args, err := psqlbuilder.Insert("grid_configs").
		Columns(
			"company_id",
			"slot_height_px",
			"pixels_per_minute",
			"slot_duration_minutes",
			"business_start_hour",
			"business_end_hour",
			"lunch_start_hour",
			"lunch_end_hour",
			"default_duration_minutes",
			"working_days",
		).
		Values(
			config.CompanyID,
			config.SlotHeightPx,
			config.PixelsPerMinute,
			config.SlotDurationMinutes,
			config.BusinessStartHour,
			config.BusinessEndHour,
			config.LunchStartHour,
			config.LunchEndHour,
			config.DefaultDurationMinutes,
			workingDays,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// DeleteByCompany удаляет конфигурацию сетки компании.
// Возвращает ErrConfigNotFound, если конфигурации не было.
func (r *Repository) DeleteByCompany(ctx context.Context, companyID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("grid_configs").
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByCompany - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByCompany - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByCompany - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}
