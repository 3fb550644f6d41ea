package end_drag

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/dragsession"
)

const (
	msgNoActiveDrag      = "активная drag-сессия не найдена"
	msgNoDropTarget      = "цель переноса не определена, перенос отменен"
	msgInvalidDropTarget = "недопустимая цель переноса, перенос отменен"
	msgRelocationFailed  = "внешний сервис отклонил перенос"
	msgCommitInProgress  = "перенос уже выполняется"
	msgUnauthorized      = "пользователь не аутентифицирован"
)

type Handler struct {
	manager DragManager
	logger  Logger
}

func NewHandler(manager DragManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/drag/end
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// ID пользователя из контекста (проставлен Auth middleware)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /companies/{id}/drag/end - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.manager.EndDrag(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, dragsession.ErrNoActiveDrag):
			h.logger.Warn("POST /companies/{id}/drag/end - No active drag: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNoActiveDrag)

		case errors.Is(err, dragsession.ErrCommitInProgress):
			h.logger.Warn("POST /companies/{id}/drag/end - Commit in progress: user_id=%d", userID)
			handlers.RespondConflict(w, msgCommitInProgress)

		case errors.Is(err, dragsession.ErrNoDropTarget):
			h.logger.Warn("POST /companies/{id}/drag/end - No drop target: user_id=%d", userID)
			handlers.RespondConflict(w, msgNoDropTarget)

		case errors.Is(err, dragsession.ErrInvalidDropTarget):
			h.logger.Warn("POST /companies/{id}/drag/end - Invalid drop target: user_id=%d", userID)
			handlers.RespondConflict(w, msgInvalidDropTarget)

		case errors.Is(err, dragsession.ErrRelocationFailed):
			h.logger.Warn("POST /companies/{id}/drag/end - Relocation rejected: user_id=%d, error=%v", userID, err)
			handlers.RespondConflict(w, msgRelocationFailed)

		default:
			h.logger.Error("POST /companies/{id}/drag/end - Failed to end drag: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{id}/drag/end - Appointment relocated: user_id=%d, appointment_id=%d, new_date=%s, new_time=%s",
		userID, result.AppointmentID, result.NewDate.Format(domain.DateFormat), result.NewTime)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}
