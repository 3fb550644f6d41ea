package drag_stream

import (
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

// PointerMessage входящее сообщение с позицией указателя.
// dayColumn определяет дневную колонку под указателем; без нее обновляется
// только позиция, целевое время не пересчитывается.
type PointerMessage struct {
	Pointer   handlers.PointerView `json:"pointer"`
	DayColumn string               `json:"dayColumn,omitempty"`
}

// StreamEvent исходящее событие потока
type StreamEvent struct {
	Type    string                    `json:"type"`
	Session *handlers.DragSessionView `json:"session,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

const (
	eventTypeSession = "session"
	eventTypeError   = "error"
)
