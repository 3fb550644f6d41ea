package domain

// Default grid configuration values
const (
	DefaultSlotHeightPx               = 30.0
	DefaultPixelsPerMinute            = 1.0
	DefaultSlotDurationMinutes        = 30
	DefaultBusinessStartHour          = 8
	DefaultBusinessEndHour            = 20
	DefaultLunchStartHour             = 13
	DefaultLunchEndHour               = 15
	DefaultAppointmentDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours

	// DefaultViewScanDays глубина поиска ближайшего рабочего дня
	DefaultViewScanDays = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultWorkingDays возвращает рабочие дни по умолчанию (понедельник - суббота)
func DefaultWorkingDays() []int {
	return []int{1, 2, 3, 4, 5, 6}
}
