package get_grid_config

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/gridconfig/models"
)

type GridConfigService interface {
	GetByCompany(ctx context.Context, companyID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
