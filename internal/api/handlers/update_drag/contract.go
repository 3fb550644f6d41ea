package update_drag

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

type DragManager interface {
	UpdatePointer(userID int64, pos domain.PointerPosition) (*domain.DragSession, error)
	UpdateTarget(ctx context.Context, userID int64, pos domain.PointerPosition, dayColumn time.Time) (*domain.DragSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
