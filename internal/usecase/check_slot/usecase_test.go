package check_slot

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

func TestUseCase_Execute_Available(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		CompanyID: 1, Date: testDate(), Time: "09:00",
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.True(t, resp.WithinBusinessHours)
	assert.False(t, resp.LunchBreak)
	assert.False(t, resp.InPast)
	assert.False(t, resp.Conflicts)
}

func TestUseCase_Execute_Reasons(t *testing.T) {
	appointments := []*domain.Appointment{
		{
			ID: 1, CompanyID: 1, Date: testDate(),
			StartTime: "10:00", EndTime: "11:00",
			Status: domain.StatusScheduled,
		},
	}
	uc := newTestUseCase(appointments)

	// Обеденный перерыв
	resp, err := uc.Execute(context.Background(), &Request{CompanyID: 1, Date: testDate(), Time: "13:00"})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.True(t, resp.LunchBreak)

	// Конфликт с существующей записью
	resp, err = uc.Execute(context.Background(), &Request{CompanyID: 1, Date: testDate(), Time: "10:30"})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.True(t, resp.Conflicts)

	// Прошедшая дата
	past := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	resp, err = uc.Execute(context.Background(), &Request{CompanyID: 1, Date: past, Time: "09:00"})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.True(t, resp.InPast)

	// Вне рабочих часов
	resp, err = uc.Execute(context.Background(), &Request{CompanyID: 1, Date: testDate(), Time: "22:00"})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.False(t, resp.WithinBusinessHours)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 0, Date: testDate(), Time: "09:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CompanyID: 1, Date: testDate(), Time: "bad"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CompanyID: 1, Time: "09:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
