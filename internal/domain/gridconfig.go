package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidGridConfig возвращается при нарушении инвариантов конфигурации сетки
	ErrInvalidGridConfig = errors.New("invalid grid configuration")
)

// GridConfig represents the scheduling grid configuration for a company.
// Geometry (pixel scale), business hours, lunch break and default appointment
// duration. Replaced only atomically: an invalid config is rejected at
// validation time and the previous one stays in effect.
type GridConfig struct {
	ID        int64
	CompanyID int64

	// Геометрия сетки
	SlotHeightPx    float64 // Высота одного слота в пикселях
	PixelsPerMinute float64 // Масштаб: пикселей на минуту

	// Временные параметры
	SlotDurationMinutes int // Шаг сетки в минутах
	BusinessStartHour   int // Час начала рабочего дня [0, 23]
	BusinessEndHour     int // Час конца рабочего дня (строго больше начала)
	LunchStartHour      int // Час начала обеденного перерыва
	LunchEndHour        int // Час конца обеденного перерыва

	// DefaultDurationMinutes длительность записи по умолчанию,
	// когда у записи не задано ни явное окончание, ни длительность
	DefaultDurationMinutes int

	// WorkingDays рабочие дни недели (0 = воскресенье ... 6 = суббота)
	WorkingDays []int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the grid configuration invariants.
// Violations are wrapped ErrInvalidGridConfig.
func (c *GridConfig) Validate() error {
	if c.SlotHeightPx <= 0 {
		return fmt.Errorf("%w: slot height must be positive", ErrInvalidGridConfig)
	}
	if c.PixelsPerMinute <= 0 {
		return fmt.Errorf("%w: pixels per minute must be positive", ErrInvalidGridConfig)
	}
	if c.SlotDurationMinutes < MinSlotDurationMinutes || c.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidGridConfig, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	if c.BusinessStartHour < 0 || c.BusinessStartHour > 23 {
		return fmt.Errorf("%w: business start hour must be in [0, 23]", ErrInvalidGridConfig)
	}
	if c.BusinessEndHour < 0 || c.BusinessEndHour > 23 {
		return fmt.Errorf("%w: business end hour must be in [0, 23]", ErrInvalidGridConfig)
	}
	if c.BusinessEndHour <= c.BusinessStartHour {
		return fmt.Errorf("%w: business end hour must be after start hour", ErrInvalidGridConfig)
	}
	if c.LunchStartHour > c.LunchEndHour {
		return fmt.Errorf("%w: lunch start hour must not be after lunch end hour", ErrInvalidGridConfig)
	}
	// Пустой интервал (start == end) означает, что обеда нет
	if c.HasLunchBreak() {
		if c.LunchStartHour < c.BusinessStartHour || c.LunchEndHour > c.BusinessEndHour {
			return fmt.Errorf("%w: lunch break must be within business hours", ErrInvalidGridConfig)
		}
	}
	if c.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("%w: default appointment duration must be positive", ErrInvalidGridConfig)
	}
	for _, d := range c.WorkingDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: working day %d is out of range [0, 6]", ErrInvalidGridConfig, d)
		}
	}
	return nil
}

// HasLunchBreak returns true if the lunch interval is non-empty
func (c *GridConfig) HasLunchBreak() bool {
	return c.LunchStartHour < c.LunchEndHour
}

// BusinessDayMinutes returns the length of the business day in minutes
func (c *GridConfig) BusinessDayMinutes() int {
	return (c.BusinessEndHour - c.BusinessStartHour) * 60
}

// IsWorkingDay returns true if weekday belongs to the configured working-day set
func (c *GridConfig) IsWorkingDay(weekday time.Weekday) bool {
	for _, d := range c.WorkingDays {
		if int(weekday) == d {
			return true
		}
	}
	return false
}

// DefaultGridConfig возвращает конфигурацию по умолчанию для компании,
// у которой нет сохраненной конфигурации
func DefaultGridConfig(companyID int64) *GridConfig {
	return &GridConfig{
		CompanyID:              companyID,
		SlotHeightPx:           DefaultSlotHeightPx,
		PixelsPerMinute:        DefaultPixelsPerMinute,
		SlotDurationMinutes:    DefaultSlotDurationMinutes,
		BusinessStartHour:      DefaultBusinessStartHour,
		BusinessEndHour:        DefaultBusinessEndHour,
		LunchStartHour:         DefaultLunchStartHour,
		LunchEndHour:           DefaultLunchEndHour,
		DefaultDurationMinutes: DefaultAppointmentDurationMinutes,
		WorkingDays:            DefaultWorkingDays(),
	}
}
