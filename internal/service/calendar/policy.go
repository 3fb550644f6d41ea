// Package calendar политика рабочих дней: определение рабочего дня,
// окно недели и подходящая дата представления по умолчанию.
package calendar

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Policy политика календаря над настроенным набором рабочих дней
type Policy struct {
	cfg *domain.GridConfig
}

// NewPolicy создает политику календаря для конфигурации cfg
func NewPolicy(cfg *domain.GridConfig) *Policy {
	return &Policy{cfg: cfg}
}

// IsBusinessDay возвращает true, если день недели входит в набор рабочих дней
func (p *Policy) IsBusinessDay(weekday time.Weekday) bool {
	return p.cfg.IsWorkingDay(weekday)
}

// BusinessDaysForWindow возвращает рабочие дни в окне из days дней,
// начиная со startDate включительно
func (p *Policy) BusinessDaysForWindow(startDate time.Time, days int) []time.Time {
	result := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		day := startDate.AddDate(0, 0, i)
		if p.IsBusinessDay(day.Weekday()) {
			result = append(result, day)
		}
	}
	return result
}

// AppropriateDefaultViewDate возвращает дату представления по умолчанию:
// сегодня, если сегодня рабочий день; иначе первый рабочий день в ближайшие
// 7 дней; если таких нет - сегодня (ограниченный перебор, без бесконечного цикла).
func (p *Policy) AppropriateDefaultViewDate(today time.Time) time.Time {
	if p.IsBusinessDay(today.Weekday()) {
		return today
	}
	for i := 1; i <= domain.DefaultViewScanDays; i++ {
		candidate := today.AddDate(0, 0, i)
		if p.IsBusinessDay(candidate.Weekday()) {
			return candidate
		}
	}
	return today
}
