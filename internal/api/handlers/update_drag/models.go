package update_drag

import (
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// UpdateDragRequest HTTP request model.
// dayColumn определяет дневную колонку под указателем; без нее обновляется
// только позиция указателя, целевое время не пересчитывается.
type UpdateDragRequest struct {
	Pointer   handlers.PointerView `json:"pointer"`
	DayColumn string               `json:"dayColumn,omitempty"`
}

// ToPointerPosition конвертирует позицию указателя в доменную модель
func (r *UpdateDragRequest) ToPointerPosition() domain.PointerPosition {
	return domain.PointerPosition{
		X: r.Pointer.X,
		Y: r.Pointer.Y,
	}
}
