package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM (24-часовой)
const TimeFormat = "15:04"

const minutesPerDay = 24 * 60

var (
	// ErrInvalidFormat возвращается при некорректном формате времени
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrOutOfRange = errors.New("time is out of day range")
)

// TimeString время в формате "HH:MM" без привязки к дате и часовому поясу.
// Используется для времени начала слотов и записей в рамках одного дня.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// MinutesSinceMidnight возвращает количество минут с начала суток
func (t TimeString) MinutesSinceMidnight() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Hour возвращает часовую составляющую времени.
// Для некорректного значения возвращает -1.
func (t TimeString) Hour() int {
	minutes, err := t.MinutesSinceMidnight()
	if err != nil {
		return -1
	}
	return minutes / 60
}

// IsBefore возвращает true, если время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	m1, err1 := t.MinutesSinceMidnight()
	m2, err2 := other.MinutesSinceMidnight()
	if err1 != nil || err2 != nil {
		return false
	}
	return m1 < m2
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	m1, err1 := t.MinutesSinceMidnight()
	m2, err2 := other.MinutesSinceMidnight()
	if err1 != nil || err2 != nil {
		return false
	}
	return m1 > m2
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Возвращает ошибку, если результат выходит за пределы суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.MinutesSinceMidnight()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// SubMinutes возвращает разницу в минутах между t и other (t - other)
func (t TimeString) SubMinutes(other TimeString) (int, error) {
	m1, err := t.MinutesSinceMidnight()
	if err != nil {
		return 0, err
	}
	m2, err := other.MinutesSinceMidnight()
	if err != nil {
		return 0, err
	}
	return m1 - m2, nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Поддерживает строковое представление и time.Time (колонки типа TIME).
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		// Postgres TIME может прийти как "10:00:00" - обрезаем секунды
		if len(v) > len(TimeFormat) {
			v = v[:len(TimeFormat)]
		}
		*t = TimeString(v)
		return t.Validate()
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidFormat, value)
	}
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON десериализует время из строки "HH:MM"
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = TimeString(s)
	if s == "" {
		return nil
	}
	return t.Validate()
}
