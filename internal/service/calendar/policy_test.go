package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Рабочие дни по умолчанию: понедельник-суббота
func testPolicy() *Policy {
	return NewPolicy(domain.DefaultGridConfig(1))
}

func TestPolicy_IsBusinessDay(t *testing.T) {
	policy := testPolicy()

	assert.True(t, policy.IsBusinessDay(time.Monday))
	assert.True(t, policy.IsBusinessDay(time.Saturday))
	assert.False(t, policy.IsBusinessDay(time.Sunday))
}

func TestPolicy_BusinessDaysForWindow(t *testing.T) {
	policy := testPolicy()

	// Окно с понедельника 2026-03-09: 7 дней содержат одно воскресенье
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	days := policy.BusinessDaysForWindow(monday, 7)

	require.Len(t, days, 6)
	assert.Equal(t, monday, days[0])
	for _, day := range days {
		assert.NotEqual(t, time.Sunday, day.Weekday())
	}
}

func TestPolicy_AppropriateDefaultViewDate(t *testing.T) {
	policy := testPolicy()

	// Рабочий день остается как есть
	tuesday := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, tuesday, policy.AppropriateDefaultViewDate(tuesday))

	// Воскресенье переносится на понедельник
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, policy.AppropriateDefaultViewDate(sunday))
}

func TestPolicy_AppropriateDefaultViewDate_NoWorkingDays(t *testing.T) {
	cfg := domain.DefaultGridConfig(1)
	cfg.WorkingDays = []int{}
	policy := NewPolicy(cfg)

	// Без рабочих дней перебор ограничен и возвращает сегодня
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, policy.AppropriateDefaultViewDate(today))
}
