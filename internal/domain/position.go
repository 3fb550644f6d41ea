package domain

import "github.com/m04kA/SMC-CalendarService/pkg/types"

// GridPosition derived position of an appointment in the grid coordinate space.
// Recomputed from the current configuration and appointment snapshot, never persisted.
type GridPosition struct {
	Offset float64 // Смещение от начала рабочего дня (пиксели)
	Extent float64 // Протяженность записи (пиксели)
}

// DaySlot derived state of a single generated time slot within a day layout
type DaySlot struct {
	StartTime types.TimeString

	Available  bool // Слот свободен (нет пересечений с активными записями)
	Booked     bool // Слот занят активной записью
	LunchBreak bool // Слот попадает в обеденный перерыв
	PastDate   bool // Вся дата в прошлом
	PastTime   bool // Момент (дата + время) в прошлом

	Clickable bool // = Available && !past && !LunchBreak
	Disabled  bool // = past || LunchBreak
}
