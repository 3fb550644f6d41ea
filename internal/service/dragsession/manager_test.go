package dragsession

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/appointmentservice"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

type fakeClient struct {
	mu sync.Mutex

	appointments map[int64]*domain.Appointment
	permissions  *appointmentservice.Permissions

	relocateCalls int
	relocateErr   error

	lastRelocateDate time.Time
	lastRelocateTime types.TimeString
}

func (c *fakeClient) GetAppointment(_ context.Context, appointmentID int64) (*domain.Appointment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	appt, ok := c.appointments[appointmentID]
	if !ok {
		return nil, appointmentservice.ErrAppointmentNotFound
	}
	return appt, nil
}

func (c *fakeClient) GetAppointments(_ context.Context, _ int64, date time.Time) ([]*domain.Appointment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]*domain.Appointment, 0, len(c.appointments))
	for _, appt := range c.appointments {
		y1, m1, d1 := appt.Date.Date()
		y2, m2, d2 := date.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (c *fakeClient) RelocateAppointment(_ context.Context, _ int64, newDate time.Time, newTime types.TimeString) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.relocateCalls++
	c.lastRelocateDate = newDate
	c.lastRelocateTime = newTime
	return c.relocateErr
}

func (c *fakeClient) GetPermissions(_ context.Context, _, _ int64) (*appointmentservice.Permissions, error) {
	return c.permissions, nil
}

func (c *fakeClient) addAppointment(appt *domain.Appointment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.appointments[appt.ID] = appt
}

type fakeConfigs struct{}

func (f *fakeConfigs) GetGridConfig(_ context.Context, companyID int64) (*domain.GridConfig, error) {
	return domain.DefaultGridConfig(companyID), nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testDate() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:        10,
		CompanyID: 1,
		OwnerID:   100,
		Date:      testDate(),
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    domain.StatusScheduled,
	}
}

func newTestManager(t *testing.T) (*Manager, *fakeClient, *fixedClock) {
	t.Helper()

	client := &fakeClient{
		appointments: map[int64]*domain.Appointment{10: testAppointment()},
		permissions:  &appointmentservice.Permissions{CanDrag: true, CanViewDetails: true},
	}
	clock := &fixedClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	m := NewManager(client, &fakeConfigs{}, 2*time.Minute, nopLogger{})
	m.timeProvider = clock

	return m, client, clock
}

func startDrag(t *testing.T, m *Manager, userID int64) *domain.DragSession {
	t.Helper()
	session, err := m.StartDrag(context.Background(), &StartDragRequest{
		UserID:        userID,
		CompanyID:     1,
		AppointmentID: 10,
	})
	require.NoError(t, err)
	return session
}

func TestManager_StartDrag(t *testing.T) {
	m, _, _ := newTestManager(t)

	session := startDrag(t, m, 1)

	assert.Equal(t, domain.DragStateDragging, session.State)
	assert.Equal(t, int64(10), session.AppointmentID)
	assert.Equal(t, testDate(), session.OriginalDate)
	assert.True(t, session.IsValid)
	assert.True(t, m.IsDragging(1))

	// Снимок записей исходного дня загружен
	snapshot, ok := session.SnapshotFor(testDate())
	require.True(t, ok)
	assert.Len(t, snapshot, 1)
}

func TestManager_StartDrag_PermissionDenied(t *testing.T) {
	m, client, _ := newTestManager(t)
	client.permissions = &appointmentservice.Permissions{CanDrag: false, CanViewDetails: true}

	_, err := m.StartDrag(context.Background(), &StartDragRequest{UserID: 1, CompanyID: 1, AppointmentID: 10})
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.False(t, m.IsDragging(1))
}

func TestManager_StartDrag_AppointmentNotFound(t *testing.T) {
	m, _, _ := newTestManager(t)

	_, err := m.StartDrag(context.Background(), &StartDragRequest{UserID: 1, CompanyID: 1, AppointmentID: 999})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestManager_StartDrag_AlreadyDragging(t *testing.T) {
	m, _, _ := newTestManager(t)

	startDrag(t, m, 1)

	_, err := m.StartDrag(context.Background(), &StartDragRequest{UserID: 1, CompanyID: 1, AppointmentID: 10})
	assert.ErrorIs(t, err, ErrDragInProgress)

	// Другой пользователь не блокируется
	startDrag(t, m, 2)
}

func TestManager_UpdatePointer(t *testing.T) {
	m, _, _ := newTestManager(t)

	_, err := m.UpdatePointer(1, domain.PointerPosition{X: 1, Y: 2})
	assert.ErrorIs(t, err, ErrNoActiveDrag)

	startDrag(t, m, 1)

	session, err := m.UpdatePointer(1, domain.PointerPosition{X: 5, Y: 42})
	require.NoError(t, err)
	assert.Equal(t, 42.0, session.CurrentPointerPosition.Y)
	// Без контекста дневной колонки цель не определяется
	assert.False(t, session.HasTarget())
}

func TestManager_UpdateTarget_ValidDrop(t *testing.T) {
	m, _, _ := newTestManager(t)
	startDrag(t, m, 1)

	// Y=60 -> 09:00; конец 10:00 касается существующей записи,
	// но касание границами не пересечение
	session, err := m.UpdateTarget(context.Background(), 1, domain.PointerPosition{Y: 60}, testDate())
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("09:00"), session.TargetTime)
	assert.Equal(t, testDate(), session.TargetDate)
	assert.True(t, session.IsValid)
}

func TestManager_UpdateTarget_LunchBreakInvalid(t *testing.T) {
	m, _, _ := newTestManager(t)
	startDrag(t, m, 1)

	// Y=300 -> 13:00, обеденный перерыв
	session, err := m.UpdateTarget(context.Background(), 1, domain.PointerPosition{Y: 300}, testDate())
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("13:00"), session.TargetTime)
	assert.False(t, session.IsValid)
}

func TestManager_UpdateTarget_CrossDaySnapshot(t *testing.T) {
	m, client, _ := newTestManager(t)

	otherDay := testDate().AddDate(0, 0, 1)
	client.addAppointment(&domain.Appointment{
		ID:        20,
		CompanyID: 1,
		Date:      otherDay,
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    domain.StatusScheduled,
	})

	startDrag(t, m, 1)

	// Перенос на другой день: снимок целевого дня подгружается лениво,
	// конфликт с записью этого дня делает цель невалидной
	session, err := m.UpdateTarget(context.Background(), 1, domain.PointerPosition{Y: 60}, otherDay)
	require.NoError(t, err)

	assert.Equal(t, otherDay, session.TargetDate)
	assert.False(t, session.IsValid)
	assert.True(t, session.IsMovingToDifferentDay())

	_, ok := session.SnapshotFor(otherDay)
	assert.True(t, ok)
}

func TestManager_EndDrag_Success(t *testing.T) {
	m, client, _ := newTestManager(t)
	startDrag(t, m, 1)

	_, err := m.UpdateTarget(context.Background(), 1, domain.PointerPosition{Y: 60}, testDate())
	require.NoError(t, err)

	result, err := m.EndDrag(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.AppointmentID)
	assert.Equal(t, testDate(), result.NewDate)
	assert.Equal(t, types.TimeString("09:00"), result.NewTime)
	assert.False(t, result.MovedToDifferentDay)

	// Перенос вызван ровно один раз, сессия сброшена
	assert.Equal(t, 1, client.relocateCalls)
	assert.False(t, m.IsDragging(1))
}

func TestManager_EndDrag_NoTarget(t *testing.T) {
	m, client, _ := newTestManager(t)
	startDrag(t, m, 1)

	// Цель не определялась: перенос не вызывается, сессия сбрасывается
	_, err := m.EndDrag(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoDropTarget)
	assert.Equal(t, 0, client.relocateCalls)
	assert.False(t, m.IsDragging(1))
}

func TestManager_EndDrag_InvalidTarget(t *testing.T) {
	m, client, _ := newTestManager(t)
	startDrag(t, m, 1)

	_, err := m.UpdateTarget(context.Background(), 1, domain.PointerPosition{Y: 300}, testDate())
	require.NoError(t, err)

	_, err = m.EndDrag(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidDropTarget)
	assert.Equal(t, 0, client.relocateCalls)
	assert.False(t, m.IsDragging(1))
}

func TestManager_EndDrag_RevalidationCatchesFreshConflict(t *testing.T) {
	m, client, _ := newTestManager(t)
	startDrag(t, m, 1)

	_, err := m.UpdateTarget(context.Background(), 1, domain.PointerPosition{Y: 60}, testDate())
	require.NoError(t, err)

	// Пока шел drag, у компании появилась новая запись на целевое время
	client.addAppointment(&domain.Appointment{
		ID:        30,
		CompanyID: 1,
		Date:      testDate(),
		StartTime: "09:00",
		EndTime:   "09:30",
		Status:    domain.StatusScheduled,
	})

	_, err = m.EndDrag(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidDropTarget)
	assert.Equal(t, 0, client.relocateCalls)
}

func TestManager_EndDrag_RelocationRejected(t *testing.T) {
	m, client, _ := newTestManager(t)
	client.relocateErr = appointmentservice.ErrRelocationConflict

	startDrag(t, m, 1)
	_, err := m.UpdateTarget(context.Background(), 1, domain.PointerPosition{Y: 60}, testDate())
	require.NoError(t, err)

	_, err = m.EndDrag(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRelocationFailed)

	// Повторных попыток нет, сессия сброшена
	assert.Equal(t, 1, client.relocateCalls)
	assert.False(t, m.IsDragging(1))
}

func TestManager_EndDrag_NoSession(t *testing.T) {
	m, _, _ := newTestManager(t)

	_, err := m.EndDrag(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoActiveDrag)
}

func TestManager_CancelDrag_Idempotent(t *testing.T) {
	m, client, _ := newTestManager(t)

	// Отмена без сессии - no-op
	m.CancelDrag(1)

	startDrag(t, m, 1)
	m.CancelDrag(1)

	assert.False(t, m.IsDragging(1))
	assert.Equal(t, 0, client.relocateCalls)

	// Повторная отмена безопасна
	m.CancelDrag(1)
}

func TestManager_ExpireStale(t *testing.T) {
	m, _, clock := newTestManager(t)

	startDrag(t, m, 1)
	startDrag(t, m, 2)

	// Пользователь 2 продолжает двигать указатель
	clock.advance(90 * time.Second)
	_, err := m.UpdatePointer(2, domain.PointerPosition{Y: 10})
	require.NoError(t, err)

	clock.advance(60 * time.Second)

	expired := m.ExpireStale()
	assert.Equal(t, 1, expired)
	assert.False(t, m.IsDragging(1))
	assert.True(t, m.IsDragging(2))
}

func TestManager_GetSession(t *testing.T) {
	m, _, _ := newTestManager(t)

	_, ok := m.GetSession(1)
	assert.False(t, ok)

	startDrag(t, m, 1)

	session, ok := m.GetSession(1)
	require.True(t, ok)
	assert.Equal(t, int64(10), session.AppointmentID)
}

func TestManager_GetSession_ReturnsDetachedCopy(t *testing.T) {
	m, _, _ := newTestManager(t)
	startDrag(t, m, 1)

	before, ok := m.GetSession(1)
	require.True(t, ok)
	origin := before.CurrentPointerPosition

	_, err := m.UpdatePointer(1, domain.PointerPosition{X: 50, Y: 90})
	require.NoError(t, err)

	// Ранее выданная копия не меняется задним числом
	assert.Equal(t, origin, before.CurrentPointerPosition)

	after, ok := m.GetSession(1)
	require.True(t, ok)
	assert.Equal(t, 90.0, after.CurrentPointerPosition.Y)
}

func TestManager_ConcurrentPointerUpdatesAndReads(t *testing.T) {
	m, _, _ := newTestManager(t)
	startDrag(t, m, 1)

	// Обновления указателя и чтения состояния идут параллельно,
	// как при одновременных WebSocket-потоке и HTTP-запросах
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_, _ = m.UpdatePointer(1, domain.PointerPosition{X: float64(i), Y: float64(i)})
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if session, ok := m.GetSession(1); ok {
				_ = session.CurrentPointerPosition
				_ = session.IsValid
			}
		}
	}()

	wg.Wait()
	assert.True(t, m.IsDragging(1))
}
