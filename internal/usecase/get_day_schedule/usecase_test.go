package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

type fakeClient struct {
	appointments []*domain.Appointment
}

func (c *fakeClient) GetAppointments(_ context.Context, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return c.appointments, nil
}

type fakeConfigs struct{}

func (f *fakeConfigs) GetGridConfig(_ context.Context, companyID int64) (*domain.GridConfig, error) {
	return domain.DefaultGridConfig(companyID), nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(appointments []*domain.Appointment) *UseCase {
	uc := NewUseCase(&fakeClient{appointments: appointments}, &fakeConfigs{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	cancelled := &domain.Appointment{
		ID: 2, CompanyID: 1, Date: testDate(),
		StartTime: "12:00", EndTime: "13:00",
		Status: domain.StatusCancelled,
	}
	appointments := []*domain.Appointment{
		{
			ID: 1, CompanyID: 1, OwnerID: 100, Date: testDate(),
			StartTime: "09:00", EndTime: "10:00",
			Status: domain.StatusScheduled, ServiceName: "Стрижка",
		},
		cancelled,
	}

	uc := newTestUseCase(appointments)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, CompanyID: 1, Date: testDate()})
	require.NoError(t, err)

	assert.Equal(t, testDate(), resp.Date)
	// 12 часов по два 30-минутных слота
	assert.Len(t, resp.Slots, 24)
	assert.True(t, resp.HasAvailableSlots)

	// Отмененная запись не попадает ни в список, ни в позиции
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
	assert.Equal(t, 60, resp.Appointments[0].DurationMinutes)

	require.Contains(t, resp.Positions, int64(1))
	assert.NotContains(t, resp.Positions, int64(2))
	assert.Equal(t, 60.0, resp.Positions[1].Offset)
	assert.Equal(t, 60.0, resp.Positions[1].Extent)
}

func TestUseCase_Execute_SlotStates(t *testing.T) {
	appointments := []*domain.Appointment{
		{
			ID: 1, CompanyID: 1, Date: testDate(),
			StartTime: "09:00", EndTime: "10:00",
			Status: domain.StatusScheduled,
		},
	}

	uc := newTestUseCase(appointments)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, CompanyID: 1, Date: testDate()})
	require.NoError(t, err)

	byTime := make(map[string]domain.DaySlot, len(resp.Slots))
	for _, slot := range resp.Slots {
		byTime[slot.StartTime.String()] = slot
	}

	// Занятый слот
	assert.True(t, byTime["09:00"].Booked)
	assert.False(t, byTime["09:00"].Clickable)

	// Свободный рабочий слот
	assert.True(t, byTime["10:00"].Available)
	assert.True(t, byTime["10:00"].Clickable)

	// Обеденный перерыв: Available отражает только занятость записями,
	// некликабельность обеденного слота выражают Clickable и Disabled
	assert.True(t, byTime["13:00"].LunchBreak)
	assert.True(t, byTime["13:00"].Available)
	assert.True(t, byTime["13:00"].Disabled)
	assert.False(t, byTime["13:00"].Clickable)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, CompanyID: 0, Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1, CompanyID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
