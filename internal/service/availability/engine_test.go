package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Конфигурация по умолчанию: рабочий день 08:00-20:00, обед 13:00-15:00
func testConfig() *domain.GridConfig {
	return domain.DefaultGridConfig(1)
}

func testDate() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func scheduled(id int64, start, end types.TimeString) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		CompanyID: 1,
		Date:      testDate(),
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusScheduled,
	}
}

func TestEngine_IsWithinBusinessHours(t *testing.T) {
	engine := NewEngine(testConfig())

	assert.True(t, engine.IsWithinBusinessHours("08:00"))
	assert.True(t, engine.IsWithinBusinessHours("12:30"))
	assert.True(t, engine.IsWithinBusinessHours("19:59"))

	// Граница [start, end): конец рабочего дня уже не рабочий час
	assert.False(t, engine.IsWithinBusinessHours("20:00"))
	assert.False(t, engine.IsWithinBusinessHours("07:59"))
	assert.False(t, engine.IsWithinBusinessHours("23:00"))

	assert.False(t, engine.IsWithinBusinessHours("bad"))
}

func TestEngine_IsLunchBreak(t *testing.T) {
	engine := NewEngine(testConfig())

	assert.True(t, engine.IsLunchBreak("13:00"))
	assert.True(t, engine.IsLunchBreak("14:59"))

	// Граница [start, end): конец обеда уже не обед
	assert.False(t, engine.IsLunchBreak("15:00"))
	assert.False(t, engine.IsLunchBreak("12:59"))
}

func TestEngine_IsLunchBreak_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.LunchStartHour = 0
	cfg.LunchEndHour = 0

	engine := NewEngine(cfg)
	assert.False(t, engine.IsLunchBreak("13:00"))
	assert.True(t, engine.IsBookable("13:00"))
}

func TestEngine_IsBookable(t *testing.T) {
	engine := NewEngine(testConfig())

	assert.True(t, engine.IsBookable("09:00"))
	assert.True(t, engine.IsBookable("15:00"))
	assert.False(t, engine.IsBookable("13:30"))
	assert.False(t, engine.IsBookable("20:00"))
	assert.False(t, engine.IsBookable("06:00"))
}

func TestEngine_OverlapsExisting(t *testing.T) {
	engine := NewEngine(testConfig())
	appointments := []*domain.Appointment{
		scheduled(1, "10:00", "11:00"),
	}

	// Пересечение внутри интервала
	assert.True(t, engine.OverlapsExisting(testDate(), "10:30", 30, appointments, 0))
	assert.True(t, engine.OverlapsExisting(testDate(), "09:45", 30, appointments, 0))
	assert.True(t, engine.OverlapsExisting(testDate(), "10:45", 30, appointments, 0))

	// Полуоткрытые интервалы: касание границами не пересечение
	assert.False(t, engine.OverlapsExisting(testDate(), "09:30", 30, appointments, 0))
	assert.False(t, engine.OverlapsExisting(testDate(), "11:00", 30, appointments, 0))

	// Вне интервала
	assert.False(t, engine.OverlapsExisting(testDate(), "12:00", 30, appointments, 0))
}

func TestEngine_OverlapsExisting_DurationPastMidnight(t *testing.T) {
	engine := NewEngine(testConfig())
	appointments := []*domain.Appointment{
		scheduled(1, "19:30", "20:00"),
	}

	// Интервал [19:00, 19:00+600m) выходит за полночь, но пересечение
	// с записью 19:30-20:00 все равно должно быть обнаружено
	assert.True(t, engine.OverlapsExisting(testDate(), "19:00", 600, appointments, 0))
	assert.False(t, engine.IsSlotAvailable(testDate(), "19:00", appointments, 600))

	// Касание границей остается не-пересечением и при огромной длительности
	assert.False(t, engine.OverlapsExisting(testDate(), "20:00", 600, appointments, 0))
}

func TestEngine_OverlapsExisting_Exclusions(t *testing.T) {
	engine := NewEngine(testConfig())

	cancelled := scheduled(2, "10:00", "11:00")
	cancelled.Status = domain.StatusCancelled

	otherDay := scheduled(3, "10:00", "11:00")
	otherDay.Date = testDate().AddDate(0, 0, 1)

	appointments := []*domain.Appointment{
		scheduled(1, "10:00", "11:00"),
		cancelled,
		otherDay,
	}

	// Отмененные записи и записи других дней не считаются
	assert.False(t, engine.OverlapsExisting(testDate().AddDate(0, 0, 2), "10:00", 30, appointments, 0))

	// excludeID игнорирует саму перетаскиваемую запись
	assert.False(t, engine.OverlapsExisting(testDate(), "10:00", 30, appointments, 1))
	assert.True(t, engine.OverlapsExisting(testDate(), "10:00", 30, appointments, 99))
}

func TestEngine_IsSlotAvailable(t *testing.T) {
	engine := NewEngine(testConfig())
	appointments := []*domain.Appointment{
		scheduled(1, "10:00", "11:00"),
	}

	assert.True(t, engine.IsSlotAvailable(testDate(), "09:00", appointments, 30))
	assert.False(t, engine.IsSlotAvailable(testDate(), "10:30", appointments, 30))
	assert.False(t, engine.IsSlotAvailable(testDate(), "13:00", appointments, 30))
	assert.False(t, engine.IsSlotAvailable(testDate(), "20:00", appointments, 30))
}

func TestEngine_GenerateTimeSlots(t *testing.T) {
	engine := NewEngine(testConfig())

	slots := engine.GenerateTimeSlots()
	require.NotEmpty(t, slots)

	// 12 часов по два 30-минутных слота
	assert.Len(t, slots, 24)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("19:30"), slots[len(slots)-1])
}

func TestEngine_GenerateTimeSlots_PartialLastSlot(t *testing.T) {
	cfg := testConfig()
	cfg.SlotDurationMinutes = 45

	engine := NewEngine(cfg)
	slots := engine.GenerateTimeSlots()
	require.NotEmpty(t, slots)

	// Последний слот должен целиком помещаться до 20:00
	last := slots[len(slots)-1]
	end, err := last.AddMinutes(45)
	require.NoError(t, err)
	assert.False(t, end.IsAfter("20:00"))
}

func TestEngine_HasAvailableSlotsForDay(t *testing.T) {
	engine := NewEngine(testConfig())
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, engine.HasAvailableSlotsForDay(testDate(), nil, now))

	// Прошедшая дата - слотов нет
	past := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	assert.False(t, engine.HasAvailableSlotsForDay(past, nil, now))
}

func TestEngine_HasAvailableSlotsForDay_FullyBooked(t *testing.T) {
	engine := NewEngine(testConfig())
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Записи покрывают весь рабочий день
	appointments := []*domain.Appointment{
		scheduled(1, "08:00", "13:00"),
		scheduled(2, "13:00", "20:00"),
	}

	assert.False(t, engine.HasAvailableSlotsForDay(testDate(), appointments, now))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), now))
	// Сегодня не прошедшая дата, даже вечером
	assert.False(t, IsDateInPast(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), now))
}

func TestIsTimeInPast(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsTimeInPast(today, "11:59", now))
	assert.False(t, IsTimeInPast(today, "12:00", now))
	assert.False(t, IsTimeInPast(today, "12:01", now))
}
