package availability

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Engine движок проверки доступности слотов.
// Все методы - чистые функции над текущей конфигурацией сетки:
// рабочие часы, обеденный перерыв, прошедшее время, пересечения интервалов.
type Engine struct {
	cfg *domain.GridConfig
}

// NewEngine создает движок доступности для конфигурации cfg
func NewEngine(cfg *domain.GridConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Config возвращает конфигурацию, над которой работает движок
func (e *Engine) Config() *domain.GridConfig {
	return e.cfg
}

// IsWithinBusinessHours возвращает true, если час времени t попадает
// в рабочее окно [businessStart, businessEnd)
func (e *Engine) IsWithinBusinessHours(t types.TimeString) bool {
	hour := t.Hour()
	if hour < 0 {
		return false
	}
	return hour >= e.cfg.BusinessStartHour && hour < e.cfg.BusinessEndHour
}

// IsLunchBreak возвращает true, если час времени t попадает
// в обеденный перерыв [lunchStart, lunchEnd)
func (e *Engine) IsLunchBreak(t types.TimeString) bool {
	if !e.cfg.HasLunchBreak() {
		return false
	}
	hour := t.Hour()
	if hour < 0 {
		return false
	}
	return hour >= e.cfg.LunchStartHour && hour < e.cfg.LunchEndHour
}

// IsBookable возвращает true, если время внутри рабочих часов и вне обеда
func (e *Engine) IsBookable(t types.TimeString) bool {
	return e.IsWithinBusinessHours(t) && !e.IsLunchBreak(t)
}

// IsSlotAvailable проверяет, что слот [t, t+duration) можно забронировать:
// время bookable и интервал не пересекается ни с одной активной записью.
// Интервалы полуоткрытые - касание границами не считается пересечением.
func (e *Engine) IsSlotAvailable(date time.Time, t types.TimeString, appointments []*domain.Appointment, durationMinutes int) bool {
	if !e.IsBookable(t) {
		return false
	}
	return !e.OverlapsExisting(date, t, durationMinutes, appointments, 0)
}

// OverlapsExisting возвращает true, если интервал [t, t+duration) на дату date
// пересекается хотя бы с одной активной записью.
// Сравнение идет в минутах с начала суток: конец запрошенного интервала может
// выходить за полночь, пересечения при этом считаются как обычно.
// Запись с ID == excludeID игнорируется (используется при перетаскивании,
// чтобы запись не конфликтовала сама с собой).
func (e *Engine) OverlapsExisting(date time.Time, t types.TimeString, durationMinutes int, appointments []*domain.Appointment, excludeID int64) bool {
	slotStart, err := t.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	slotEnd := slotStart + durationMinutes

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if excludeID != 0 && appt.ID == excludeID {
			continue
		}
		if !isSameDay(appt.Date, date) {
			continue
		}

		apptStart, err := appt.StartTime.MinutesSinceMidnight()
		if err != nil {
			continue
		}
		apptEndTime, err := appt.EffectiveEndTime(e.cfg.DefaultDurationMinutes)
		if err != nil {
			// Конец записи вычислить не удалось - пропускаем
			continue
		}
		apptEnd, err := apptEndTime.MinutesSinceMidnight()
		if err != nil {
			continue
		}

		// Пересечение полуоткрытых интервалов: строгие неравенства,
		// граничные случаи (apptEnd == slotStart или apptStart == slotEnd) не считаются
		if apptStart < slotEnd && apptEnd > slotStart {
			return true
		}
	}

	return false
}

// GenerateTimeSlots генерирует все слоты рабочего дня с шагом slotDuration.
// Слот включается, только если он целиком помещается до конца рабочего дня.
func (e *Engine) GenerateTimeSlots() []types.TimeString {
	start, err := types.NewTimeStringFromMinutes(e.cfg.BusinessStartHour * 60)
	if err != nil {
		return nil
	}
	end, err := types.NewTimeStringFromMinutes(e.cfg.BusinessEndHour * 60)
	if err != nil {
		return nil
	}

	slots := make([]types.TimeString, 0)
	current := start

	for current.IsBefore(end) {
		slotEnd, err := current.AddMinutes(e.cfg.SlotDurationMinutes)
		if err != nil || slotEnd.IsAfter(end) {
			break
		}
		slots = append(slots, current)
		current = slotEnd
	}

	return slots
}

// HasAvailableSlotsForDay возвращает true, если на дату есть хотя бы один слот,
// который bookable, не в прошлом и не пересекается с активными записями
func (e *Engine) HasAvailableSlotsForDay(date time.Time, appointments []*domain.Appointment, now time.Time) bool {
	if IsDateInPast(date, now) {
		return false
	}

	for _, slot := range e.GenerateTimeSlots() {
		if !e.IsBookable(slot) {
			continue
		}
		if IsTimeInPast(date, slot, now) {
			continue
		}
		if e.OverlapsExisting(date, slot, e.cfg.SlotDurationMinutes, appointments, 0) {
			continue
		}
		return true
	}

	return false
}

// IsDateInPast проверяет, что дата строго раньше сегодняшнего дня
// (сравнение только по дате, без времени)
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// IsTimeInPast проверяет, что момент (дата + время) строго раньше now
func IsTimeInPast(date time.Time, t types.TimeString, now time.Time) bool {
	minutes, err := t.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	instant := time.Date(date.Year(), date.Month(), date.Day(), 0, minutes, 0, 0, now.Location())
	return instant.Before(now)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
