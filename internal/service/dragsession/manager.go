package dragsession

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/appointmentservice"
	"github.com/m04kA/SMC-CalendarService/internal/service/grid"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Manager управляет drag-сессиями переноса записей.
// На одного пользователя допускается не более одной активной сессии;
// попытка начать новый drag при активной или коммитящейся сессии отклоняется
// (явный отказ вместо молчаливой перезаписи).
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*domain.DragSession

	client       AppointmentServiceClient
	configs      ConfigProvider
	timeProvider TimeProvider
	logger       Logger

	gauge       SessionGauge
	serviceName string

	sessionTTL time.Duration
}

// NewManager создает новый менеджер drag-сессий.
// sessionTTL - время жизни сессии без обновлений, после которого
// она удаляется janitor'ом (брошенная вкладка не блокирует пользователя).
func NewManager(
	client AppointmentServiceClient,
	configs ConfigProvider,
	sessionTTL time.Duration,
	logger Logger,
) *Manager {
	return &Manager{
		sessions:     make(map[int64]*domain.DragSession),
		client:       client,
		configs:      configs,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		sessionTTL:   sessionTTL,
	}
}

// EnableMetrics включает экспорт метрик активных сессий и переносов
func (m *Manager) EnableMetrics(gauge SessionGauge, serviceName string) {
	m.gauge = gauge
	m.serviceName = serviceName
}

// StartDragRequest параметры начала drag-сессии
type StartDragRequest struct {
	UserID         int64
	CompanyID      int64
	AppointmentID  int64
	OriginPosition domain.PointerPosition
}

// StartDrag начинает drag-сессию для записи.
// Отклоняется, если у пользователя уже есть активная или коммитящаяся сессия,
// либо если у пользователя нет права canDrag на эту запись.
func (m *Manager) StartDrag(ctx context.Context, req *StartDragRequest) (*domain.DragSession, error) {
	m.logger.Info("StartDrag: user=%d, company=%d, appointment=%d",
		req.UserID, req.CompanyID, req.AppointmentID)

	// Быстрая проверка guard'а до сетевых вызовов
	if err := m.checkNoActiveSession(req.UserID); err != nil {
		m.logger.Warn("StartDrag: rejected for user=%d: %v", req.UserID, err)
		return nil, err
	}

	// Конфигурация сетки на момент начала drag (снимок)
	cfg, err := m.configs.GetGridConfig(ctx, req.CompanyID)
	if err != nil {
		m.logger.Error("StartDrag: failed to get grid config for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get grid config: %v", ErrInternal, err)
	}

	// Права на запись - входной флаг, здесь не пересчитываются
	perms, err := m.client.GetPermissions(ctx, req.UserID, req.AppointmentID)
	if err != nil {
		m.logger.Error("StartDrag: failed to get permissions for user=%d, appointment=%d: %v",
			req.UserID, req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get permissions: %v", ErrInternal, err)
	}

	if !perms.CanDrag {
		m.logger.Warn("StartDrag: user=%d has no drag permission for appointment=%d",
			req.UserID, req.AppointmentID)
		return nil, ErrPermissionDenied
	}

	// Запись ищем в снимке записей компании
	appt, appointments, err := m.findAppointment(ctx, req.CompanyID, req.AppointmentID)
	if err != nil {
		return nil, err
	}

	now := m.timeProvider.Now()
	session := &domain.DragSession{
		UserID:        req.UserID,
		AppointmentID: req.AppointmentID,
		State:         domain.DragStateDragging,
		Appointment:   appt,
		Permissions:   domain.Permissions{CanDrag: perms.CanDrag, CanViewDetails: perms.CanViewDetails},
		Config:        cfg,

		OriginalPosition:       req.OriginPosition,
		OriginalDate:           appt.Date,
		CurrentPointerPosition: req.OriginPosition,

		IsValid:   true,
		StartedAt: now,
		UpdatedAt: now,
	}
	session.SetSnapshot(appt.Date, appointments)

	m.mu.Lock()
	defer m.mu.Unlock()

	// Перепроверка guard'а: пока шли сетевые вызовы, сессия могла появиться
	if existing, ok := m.sessions[req.UserID]; ok {
		if existing.State == domain.DragStateCommitting {
			return nil, ErrCommitInProgress
		}
		return nil, ErrDragInProgress
	}

	m.sessions[req.UserID] = session
	m.updateGaugeLocked()

	m.logger.Info("StartDrag: session started for user=%d, appointment=%d, origin_date=%s",
		req.UserID, req.AppointmentID, appt.Date.Format(domain.DateFormat))

	return session.Clone(), nil
}

// UpdatePointer записывает текущую позицию указателя.
// Сама по себе не определяет целевое время - для этого нужен контекст
// дневной колонки (см. UpdateTarget).
// Возвращает отсоединенную копию сессии: внутренний указатель мутируется
// под мьютексом и наружу не отдается.
func (m *Manager) UpdatePointer(userID int64, pos domain.PointerPosition) (*domain.DragSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[userID]
	if !ok || session.State != domain.DragStateDragging {
		return nil, ErrNoActiveDrag
	}

	session.CurrentPointerPosition = pos
	session.UpdatedAt = m.timeProvider.Now()

	return session.Clone(), nil
}

// UpdateTarget определяет целевые день и время по позиции указателя
// в контексте дневной колонки и перевалидирует сессию.
// targetTime = AlignTimeToGrid(CoordinateToTime(pos.Y)).
func (m *Manager) UpdateTarget(ctx context.Context, userID int64, pos domain.PointerPosition, dayColumn time.Time) (*domain.DragSession, error) {
	m.mu.Lock()
	session, ok := m.sessions[userID]
	if !ok || session.State != domain.DragStateDragging {
		m.mu.Unlock()
		return nil, ErrNoActiveDrag
	}

	cfg := session.Config
	_, hasSnapshot := session.SnapshotFor(dayColumn)
	companyID := session.Appointment.CompanyID
	m.mu.Unlock()

	// Снимок записей целевого дня подгружаем лениво, вне мьютекса
	var dayAppointments []*domain.Appointment
	if !hasSnapshot {
		appts, err := m.client.GetAppointments(ctx, companyID, dayColumn)
		if err != nil {
			m.logger.Error("UpdateTarget: failed to get appointments for %s: %v",
				dayColumn.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
		dayAppointments = appts
	}

	calc := grid.NewCalculator(cfg)
	targetTime, err := calc.AlignTimeToGrid(calc.CoordinateToTime(pos.Y))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve target time: %v", ErrInternal, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Сессия могла быть отменена, пока шел сетевой вызов
	session, ok = m.sessions[userID]
	if !ok || session.State != domain.DragStateDragging {
		return nil, ErrNoActiveDrag
	}

	if dayAppointments != nil {
		session.SetSnapshot(dayColumn, dayAppointments)
	}

	appointments, _ := session.SnapshotFor(dayColumn)

	session.CurrentPointerPosition = pos
	session.TargetDate = dayColumn
	session.TargetTime = targetTime
	session.IsValid = isValidDropPosition(session.Config, session.Appointment, dayColumn, targetTime, appointments)
	session.UpdatedAt = m.timeProvider.Now()

	return session.Clone(), nil
}

// EndDragResult результат успешного завершения drag-сессии
type EndDragResult struct {
	AppointmentID       int64
	NewDate             time.Time
	NewTime             types.TimeString
	MovedToDifferentDay bool
}

// EndDrag завершает drag-сессию.
// Без определенной цели или при невалидной цели возвращает ошибку, сбрасывая
// сессию и не вызывая перенос (запись логически остается на месте).
// При валидной цели перевалидирует по свежему снимку записей и вызывает
// внешний перенос ровно один раз; повторных попыток нет.
// Сессия сбрасывается при любом исходе.
func (m *Manager) EndDrag(ctx context.Context, userID int64) (*EndDragResult, error) {
	m.mu.Lock()

	session, ok := m.sessions[userID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrNoActiveDrag
	}
	if session.State == domain.DragStateCommitting {
		m.mu.Unlock()
		return nil, ErrCommitInProgress
	}

	if !session.HasTarget() {
		m.removeSessionLocked(userID)
		m.mu.Unlock()
		m.logger.Warn("EndDrag: no drop target resolved for user=%d, session discarded", userID)
		return nil, ErrNoDropTarget
	}

	if !session.IsValid {
		m.removeSessionLocked(userID)
		m.mu.Unlock()
		m.logger.Warn("EndDrag: invalid drop target for user=%d, session discarded", userID)
		return nil, ErrInvalidDropTarget
	}

	// Пока перенос не подтвержден внешним сервисом, сессия в состоянии
	// committing: новые StartDrag этого пользователя отклоняются
	session.State = domain.DragStateCommitting
	appt := session.Appointment
	cfg := session.Config
	targetDate := session.TargetDate
	targetTime := session.TargetTime
	movedToDifferentDay := session.IsMovingToDifferentDay()
	m.mu.Unlock()

	// Перевалидация по свежему снимку: записи могли измениться с начала drag
	freshAppointments, err := m.client.GetAppointments(ctx, appt.CompanyID, targetDate)
	if err != nil {
		m.discardSession(userID)
		m.logger.Error("EndDrag: failed to refresh appointments for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to refresh appointments: %v", ErrInternal, err)
	}

	if !isValidDropPosition(cfg, appt, targetDate, targetTime, freshAppointments) {
		m.discardSession(userID)
		m.logger.Warn("EndDrag: drop target became invalid on revalidation for user=%d, appointment=%d",
			userID, appt.ID)
		return nil, ErrInvalidDropTarget
	}

	if err := m.client.RelocateAppointment(ctx, appt.ID, targetDate, targetTime); err != nil {
		m.discardSession(userID)
		m.observeRelocation(false)
		m.logger.Error("EndDrag: relocation rejected for appointment=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrRelocationFailed, err)
	}

	m.discardSession(userID)
	m.observeRelocation(true)

	m.logger.Info("EndDrag: appointment=%d relocated to %s %s (cross_day=%t)",
		appt.ID, targetDate.Format(domain.DateFormat), targetTime, movedToDifferentDay)

	return &EndDragResult{
		AppointmentID:       appt.ID,
		NewDate:             targetDate,
		NewTime:             targetTime,
		MovedToDifferentDay: movedToDifferentDay,
	}, nil
}

// CancelDrag отменяет активную drag-сессию, отбрасывая состояние
// без обращения к внешнему сервису (мутаций еще не было).
// Безопасен всегда: при отсутствии сессии - no-op.
// Сессию в состоянии committing не трогает - перенос уже в полете.
func (m *Manager) CancelDrag(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[userID]
	if !ok || session.State == domain.DragStateCommitting {
		return
	}

	m.removeSessionLocked(userID)
	m.logger.Info("CancelDrag: session cancelled for user=%d", userID)
}

// GetSession возвращает отсоединенную копию текущей сессии пользователя
func (m *Manager) GetSession(userID int64) (*domain.DragSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[userID]
	if !ok {
		return nil, false
	}
	return session.Clone(), true
}

// IsDragging возвращает true, если у пользователя есть сессия
// в состоянии dragging
func (m *Manager) IsDragging(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[userID]
	return ok && session.State == domain.DragStateDragging
}

// ExpireStale удаляет dragging-сессии без обновлений дольше sessionTTL.
// Возвращает количество удаленных сессий.
func (m *Manager) ExpireStale() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.timeProvider.Now()
	expired := 0

	for userID, session := range m.sessions {
		if session.State != domain.DragStateDragging {
			continue
		}
		if now.Sub(session.UpdatedAt) > m.sessionTTL {
			delete(m.sessions, userID)
			expired++
			m.logger.Warn("ExpireStale: discarded stale session of user=%d (idle for %s)",
				userID, now.Sub(session.UpdatedAt))
		}
	}

	if expired > 0 {
		m.updateGaugeLocked()
	}

	return expired
}

// RunJanitor периодически удаляет протухшие сессии до закрытия stop
func (m *Manager) RunJanitor(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.ExpireStale()
		}
	}
}

func (m *Manager) checkNoActiveSession(userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[userID]
	if !ok {
		return nil
	}
	if session.State == domain.DragStateCommitting {
		return ErrCommitInProgress
	}
	return ErrDragInProgress
}

func (m *Manager) findAppointment(ctx context.Context, companyID, appointmentID int64) (*domain.Appointment, []*domain.Appointment, error) {
	appt, err := m.client.GetAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentservice.ErrAppointmentNotFound) {
			m.logger.Warn("StartDrag: appointment id=%d not found", appointmentID)
			return nil, nil, ErrAppointmentNotFound
		}
		m.logger.Error("StartDrag: failed to get appointment id=%d: %v", appointmentID, err)
		return nil, nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// Снимок записей исходного дня для валидации перетаскивания
	appointments, err := m.client.GetAppointments(ctx, companyID, appt.Date)
	if err != nil {
		m.logger.Error("StartDrag: failed to get appointments for company=%d: %v", companyID, err)
		return nil, nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	return appt, appointments, nil
}

func (m *Manager) discardSession(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeSessionLocked(userID)
}

func (m *Manager) removeSessionLocked(userID int64) {
	delete(m.sessions, userID)
	m.updateGaugeLocked()
}

func (m *Manager) updateGaugeLocked() {
	if m.gauge != nil {
		m.gauge.SetActiveDragSessions(m.serviceName, len(m.sessions))
	}
}

func (m *Manager) observeRelocation(success bool) {
	if m.gauge != nil {
		m.gauge.ObserveRelocation(m.serviceName, success)
	}
}
