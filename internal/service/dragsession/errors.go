package dragsession

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена в снимке
	ErrAppointmentNotFound = errors.New("dragsession: appointment not found")

	// ErrPermissionDenied возвращается, когда у пользователя нет права
	// перетаскивать запись (canDrag = false); состояние сессии не меняется
	ErrPermissionDenied = errors.New("dragsession: permission denied")

	// ErrDragInProgress возвращается при попытке начать drag,
	// когда у пользователя уже есть активная сессия
	ErrDragInProgress = errors.New("dragsession: drag already in progress")

	// ErrCommitInProgress возвращается при попытке начать drag,
	// пока предыдущий перенос еще не подтвержден внешним сервисом
	ErrCommitInProgress = errors.New("dragsession: previous drag is still committing")

	// ErrNoActiveDrag возвращается командами, требующими активной сессии
	ErrNoActiveDrag = errors.New("dragsession: no active drag session")

	// ErrNoDropTarget возвращается из EndDrag, когда цель не была определена;
	// сессия сбрасывается, перенос не вызывается
	ErrNoDropTarget = errors.New("dragsession: no drop target resolved")

	// ErrInvalidDropTarget возвращается из EndDrag при невалидной цели;
	// сессия сбрасывается, перенос не вызывается
	ErrInvalidDropTarget = errors.New("dragsession: invalid drop target")

	// ErrRelocationFailed возвращается, когда внешний сервис отклонил перенос;
	// повторных попыток не делается, сессия сбрасывается
	ErrRelocationFailed = errors.New("dragsession: relocation failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("dragsession: internal error")
)
