package get_week_overview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

type fakeClient struct {
	appointments map[string][]*domain.Appointment
}

func (c *fakeClient) GetAppointments(_ context.Context, _ int64, date time.Time) ([]*domain.Appointment, error) {
	return c.appointments[date.Format(domain.DateFormat)], nil
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

func newTestUseCase(client *fakeClient, now time.Time) *UseCase {
	uc := NewUseCase(client, &fakeConfigs{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func TestUseCase_Execute_Window(t *testing.T) {
	// Понедельник 2026-03-09; в окне из 7 дней одно воскресенье
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	client := &fakeClient{appointments: map[string][]*domain.Appointment{
		"2026-03-10": {
			{
				ID: 1, CompanyID: 1, Date: monday.AddDate(0, 0, 1),
				StartTime: "10:00", EndTime: "11:00",
				Status: domain.StatusScheduled,
			},
			{
				ID: 2, CompanyID: 1, Date: monday.AddDate(0, 0, 1),
				StartTime: "12:00", EndTime: "13:00",
				Status: domain.StatusCancelled,
			},
		},
	}}

	uc := newTestUseCase(client, now)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, CompanyID: 1, StartDate: monday})
	require.NoError(t, err)

	require.Len(t, resp.Days, 6)
	assert.Equal(t, monday, resp.StartDate)
	assert.Equal(t, monday.Format(domain.DateFormat), resp.DefaultViewDate.Format(domain.DateFormat))

	assert.True(t, resp.Days[0].IsToday)
	assert.Equal(t, time.Monday, resp.Days[0].Weekday)

	// Отмененные записи не считаются
	tuesday := resp.Days[1]
	assert.Equal(t, 1, tuesday.AppointmentCount)
	assert.True(t, tuesday.HasAvailableSlots)
}

func TestUseCase_Execute_DefaultStartDate(t *testing.T) {
	// Воскресенье: окно начинается с ближайшего рабочего дня
	sunday := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeClient{}, sunday)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, CompanyID: 1})
	require.NoError(t, err)

	assert.Equal(t, monday.Format(domain.DateFormat), resp.StartDate.Format(domain.DateFormat))
	require.NotEmpty(t, resp.Days)
	assert.Equal(t, time.Monday, resp.Days[0].Weekday)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeClient{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CompanyID: 1, Days: 100})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
