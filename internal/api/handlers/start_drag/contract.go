package start_drag

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/dragsession"
)

type DragManager interface {
	StartDrag(ctx context.Context, req *dragsession.StartDragRequest) (*domain.DragSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
