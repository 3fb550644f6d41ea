package grid

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability"
)

// DayLayout вычисляет состояние всех слотов дня для отрисовки сетки.
// Для каждого сгенерированного слота выставляются флаги доступности,
// занятости, обеда и прошедшего времени.
//
// Флаги ортогональны: Available отражает только занятость записями
// (= !Booked), даже для обеденных и прошедших слотов. Итоговую
// кликабельность определяет Clickable = Available && !past && !lunch.
func (c *Calculator) DayLayout(date time.Time, appointments []*domain.Appointment, now time.Time) []domain.DaySlot {
	engine := availability.NewEngine(c.cfg)

	pastDate := availability.IsDateInPast(date, now)
	slots := engine.GenerateTimeSlots()

	layout := make([]domain.DaySlot, len(slots))
	for i, start := range slots {
		lunch := engine.IsLunchBreak(start)
		pastTime := availability.IsTimeInPast(date, start, now)
		booked := engine.OverlapsExisting(date, start, c.cfg.SlotDurationMinutes, appointments, 0)
		available := !booked

		past := pastDate || pastTime

		layout[i] = domain.DaySlot{
			StartTime:  start,
			Available:  available,
			Booked:     booked,
			LunchBreak: lunch,
			PastDate:   pastDate,
			PastTime:   pastTime,
			Clickable:  available && !past && !lunch,
			Disabled:   past || lunch,
		}
	}

	return layout
}
