package end_drag

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/dragsession"
)

type DragManager interface {
	EndDrag(ctx context.Context, userID int64) (*dragsession.EndDragResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
