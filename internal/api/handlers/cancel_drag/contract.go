package cancel_drag

type DragManager interface {
	CancelDrag(userID int64)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
