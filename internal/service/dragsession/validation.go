package dragsession

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// isValidDropPosition составная проверка цели сброса:
//
//  1. время начала bookable (рабочие часы, вне обеда);
//  2. вычисленный конец записи не выходит за конец рабочего дня
//     (ровно конец дня допускается) и не залезает в обеденный перерыв
//     (конец ровно на начале обеда допускается);
//  3. целевой интервал не пересекается ни с одной *другой* активной записью
//     (полуоткрытые интервалы, сама перетаскиваемая запись исключается).
func isValidDropPosition(
	cfg *domain.GridConfig,
	appt *domain.Appointment,
	targetDate time.Time,
	targetTime types.TimeString,
	appointments []*domain.Appointment,
) bool {
	engine := availability.NewEngine(cfg)

	if !engine.IsBookable(targetTime) {
		return false
	}

	duration := appt.EffectiveDurationMinutes(cfg.DefaultDurationMinutes)

	startMinutes, err := targetTime.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	endMinutes := startMinutes + duration

	// Конец не позже конца рабочего дня (ровно конец - допустимо)
	if endMinutes > cfg.BusinessEndHour*60 {
		return false
	}

	// Конец не залезает в обеденный перерыв (ровно начало обеда - допустимо)
	if cfg.HasLunchBreak() {
		lunchStart := cfg.LunchStartHour * 60
		if startMinutes < lunchStart && endMinutes > lunchStart {
			return false
		}
	}

	return !engine.OverlapsExisting(targetDate, targetTime, duration, appointments, appt.ID)
}
