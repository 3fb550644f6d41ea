package get_drag_state

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

type DragManager interface {
	GetSession(userID int64) (*domain.DragSession, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
