package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewTimeStringFromString("9:30am")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, "00:00", ts.String())

	ts, err = NewTimeStringFromMinutes(13*60 + 45)
	require.NoError(t, err)
	assert.Equal(t, "13:45", ts.String())

	ts, err = NewTimeStringFromMinutes(23*60 + 59)
	require.NoError(t, err)
	assert.Equal(t, "23:59", ts.String())

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeString_MinutesSinceMidnight(t *testing.T) {
	minutes, err := TimeString("10:15").MinutesSinceMidnight()
	require.NoError(t, err)
	assert.Equal(t, 615, minutes)

	_, err = TimeString("garbage").MinutesSinceMidnight()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTimeString_Hour(t *testing.T) {
	assert.Equal(t, 14, TimeString("14:59").Hour())
	assert.Equal(t, 0, TimeString("00:30").Hour())
	assert.Equal(t, -1, TimeString("bad").Hour())
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.False(t, TimeString("18:00").IsAfter("18:00"))

	// Некорректные значения не сравниваются
	assert.False(t, TimeString("bad").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("bad"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "11:30", ts.String())

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeString_SubMinutes(t *testing.T) {
	diff, err := TimeString("11:30").SubMinutes("10:00")
	require.NoError(t, err)
	assert.Equal(t, 90, diff)

	diff, err = TimeString("10:00").SubMinutes("11:30")
	require.NoError(t, err)
	assert.Equal(t, -90, diff)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan([]byte("18:45")))
	assert.Equal(t, "18:45", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 3, 10, 9, 15, 30, 0, time.UTC)))
	assert.Equal(t, "09:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
