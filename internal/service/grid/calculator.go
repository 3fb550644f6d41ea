package grid

import (
	"math"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Calculator преобразования между временем и координатным пространством сетки.
// Все методы - чистые функции над конфигурацией; пересоздается при каждой
// смене конфигурации (атомарная замена, без глобального состояния).
type Calculator struct {
	cfg *domain.GridConfig
}

// NewCalculator создает калькулятор координат для конфигурации cfg
func NewCalculator(cfg *domain.GridConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// Config возвращает конфигурацию, над которой работает калькулятор
func (c *Calculator) Config() *domain.GridConfig {
	return c.cfg
}

// CoordinateToTime преобразует вертикальное смещение в время начала слота.
// Время выравнивается вниз до границы слота и зажимается в
// [businessStart:00, businessEnd:00]. Тотальна для любого offset,
// включая отрицательные и сколь угодно большие значения.
func (c *Calculator) CoordinateToTime(offset float64) types.TimeString {
	slotIndex := int(math.Floor(offset / c.cfg.SlotHeightPx))

	minutes := c.cfg.BusinessStartHour*60 + slotIndex*c.cfg.SlotDurationMinutes
	minutes = clampMinutes(minutes, c.cfg.BusinessStartHour*60, c.cfg.BusinessEndHour*60)

	t, err := types.NewTimeStringFromMinutes(minutes)
	if err != nil {
		// Недостижимо: границы рабочего дня всегда внутри суток
		t, _ = types.NewTimeStringFromMinutes(c.cfg.BusinessStartHour * 60)
	}
	return t
}

// TimeToCoordinate преобразует время в непрерывное (не квантованное по слотам)
// вертикальное смещение: minutesSinceBusinessStart / slotDuration * slotHeight
func (c *Calculator) TimeToCoordinate(t types.TimeString) (float64, error) {
	minutes, err := t.MinutesSinceMidnight()
	if err != nil {
		return 0, err
	}
	sinceStart := minutes - c.cfg.BusinessStartHour*60
	return float64(sinceStart) / float64(c.cfg.SlotDurationMinutes) * c.cfg.SlotHeightPx, nil
}

// AlignTimeToGrid выравнивает время вниз до ближайшей границы слота,
// затем зажимает в рабочие часы (09:15 -> 09:00 при 30-минутной сетке)
func (c *Calculator) AlignTimeToGrid(t types.TimeString) (types.TimeString, error) {
	minutes, err := t.MinutesSinceMidnight()
	if err != nil {
		return "", err
	}

	startMinutes := c.cfg.BusinessStartHour * 60
	sinceStart := minutes - startMinutes
	aligned := startMinutes + floorDiv(sinceStart, c.cfg.SlotDurationMinutes)*c.cfg.SlotDurationMinutes
	aligned = clampMinutes(aligned, startMinutes, c.cfg.BusinessEndHour*60)

	return types.NewTimeStringFromMinutes(aligned)
}

// Position вычисляет позицию записи на сетке.
// Смещение - координата времени начала, протяженность - эффективная
// длительность записи, умноженная на масштаб.
func (c *Calculator) Position(appt *domain.Appointment) (domain.GridPosition, error) {
	offset, err := c.TimeToCoordinate(appt.StartTime)
	if err != nil {
		return domain.GridPosition{}, err
	}

	duration := appt.EffectiveDurationMinutes(c.cfg.DefaultDurationMinutes)

	return domain.GridPosition{
		Offset: offset,
		Extent: float64(duration) * c.cfg.PixelsPerMinute,
	}, nil
}

// PositionsForMany вычисляет позиции для набора записей.
// Записи с некорректным временем начала пропускаются.
func (c *Calculator) PositionsForMany(appointments []*domain.Appointment) map[int64]domain.GridPosition {
	positions := make(map[int64]domain.GridPosition, len(appointments))
	for _, appt := range appointments {
		pos, err := c.Position(appt)
		if err != nil {
			continue
		}
		positions[appt.ID] = pos
	}
	return positions
}

// floorDiv целочисленное деление с округлением вниз (и для отрицательных)
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func clampMinutes(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
