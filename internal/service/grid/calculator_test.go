package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Конфигурация по умолчанию: рабочий день 08:00-20:00,
// слот 30 минут высотой 30px, масштаб 1px/мин
func testConfig() *domain.GridConfig {
	return domain.DefaultGridConfig(1)
}

func TestCalculator_CoordinateToTime(t *testing.T) {
	calc := NewCalculator(testConfig())

	assert.Equal(t, types.TimeString("08:00"), calc.CoordinateToTime(0))
	assert.Equal(t, types.TimeString("08:30"), calc.CoordinateToTime(30))
	assert.Equal(t, types.TimeString("09:00"), calc.CoordinateToTime(60))

	// Выравнивание вниз до границы слота
	assert.Equal(t, types.TimeString("08:00"), calc.CoordinateToTime(29.9))
	assert.Equal(t, types.TimeString("08:30"), calc.CoordinateToTime(45))
}

func TestCalculator_CoordinateToTime_Clamping(t *testing.T) {
	calc := NewCalculator(testConfig())

	// Отрицательное смещение зажимается в начало рабочего дня
	assert.Equal(t, types.TimeString("08:00"), calc.CoordinateToTime(-1))
	assert.Equal(t, types.TimeString("08:00"), calc.CoordinateToTime(-100000))

	// Смещение за пределами сетки зажимается в конец рабочего дня
	assert.Equal(t, types.TimeString("20:00"), calc.CoordinateToTime(100000))
}

func TestCalculator_TimeToCoordinate(t *testing.T) {
	calc := NewCalculator(testConfig())

	offset, err := calc.TimeToCoordinate("08:00")
	require.NoError(t, err)
	assert.Equal(t, 0.0, offset)

	offset, err = calc.TimeToCoordinate("09:00")
	require.NoError(t, err)
	assert.Equal(t, 60.0, offset)

	// Координата непрерывна, не квантуется по слотам
	offset, err = calc.TimeToCoordinate("08:15")
	require.NoError(t, err)
	assert.Equal(t, 15.0, offset)

	_, err = calc.TimeToCoordinate("bad")
	assert.Error(t, err)
}

func TestCalculator_RoundTrip(t *testing.T) {
	calc := NewCalculator(testConfig())

	// На границах слотов преобразования взаимно обратны
	for minutes := 8 * 60; minutes < 20*60; minutes += 30 {
		slotTime, err := types.NewTimeStringFromMinutes(minutes)
		require.NoError(t, err)

		offset, err := calc.TimeToCoordinate(slotTime)
		require.NoError(t, err)
		assert.Equal(t, slotTime, calc.CoordinateToTime(offset), "round trip for %s", slotTime)
	}
}

func TestCalculator_AlignTimeToGrid(t *testing.T) {
	calc := NewCalculator(testConfig())

	aligned, err := calc.AlignTimeToGrid("09:15")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), aligned)

	aligned, err = calc.AlignTimeToGrid("09:30")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:30"), aligned)

	// До начала рабочего дня - зажимается в начало
	aligned, err = calc.AlignTimeToGrid("07:10")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("08:00"), aligned)

	// После конца рабочего дня - зажимается в конец
	aligned, err = calc.AlignTimeToGrid("21:45")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("20:00"), aligned)
}

func TestCalculator_Position(t *testing.T) {
	calc := NewCalculator(testConfig())

	appt := &domain.Appointment{
		ID:              1,
		Date:            time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		DurationMinutes: 60,
		Status:          domain.StatusScheduled,
	}

	pos, err := calc.Position(appt)
	require.NoError(t, err)
	assert.Equal(t, 60.0, pos.Offset)
	assert.Equal(t, 60.0, pos.Extent)
}

func TestCalculator_Position_ExplicitEndWins(t *testing.T) {
	calc := NewCalculator(testConfig())

	// Явный интервал 10:30-11:15 важнее duration
	appt := &domain.Appointment{
		ID:              2,
		StartTime:       "10:30",
		EndTime:         "11:15",
		DurationMinutes: 60,
		Status:          domain.StatusScheduled,
	}

	pos, err := calc.Position(appt)
	require.NoError(t, err)
	assert.Equal(t, 150.0, pos.Offset)
	assert.Equal(t, 45.0, pos.Extent)
}

func TestCalculator_Position_DefaultDuration(t *testing.T) {
	calc := NewCalculator(testConfig())

	// Без явного конца и длительности используется значение из конфигурации
	appt := &domain.Appointment{
		ID:        3,
		StartTime: "12:00",
		Status:    domain.StatusScheduled,
	}

	pos, err := calc.Position(appt)
	require.NoError(t, err)
	assert.Equal(t, 60.0, pos.Extent)
}

func TestCalculator_PositionsForMany_SkipsMalformed(t *testing.T) {
	calc := NewCalculator(testConfig())

	appointments := []*domain.Appointment{
		{ID: 1, StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusScheduled},
		{ID: 2, StartTime: "garbage", DurationMinutes: 30, Status: domain.StatusScheduled},
		{ID: 3, StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusScheduled},
	}

	positions := calc.PositionsForMany(appointments)
	assert.Len(t, positions, 2)
	assert.Contains(t, positions, int64(1))
	assert.Contains(t, positions, int64(3))
	assert.NotContains(t, positions, int64(2))
}
