package update_drag

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/dragsession"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDayColumn   = "некорректный формат dayColumn, ожидается YYYY-MM-DD"
	msgNoActiveDrag       = "активная drag-сессия не найдена"
	msgUnauthorized       = "пользователь не аутентифицирован"
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

// Handle PATCH /api/v1/companies/{companyId}/drag/position
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// ID пользователя из контекста (проставлен Auth middleware)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /companies/{id}/drag/position - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Декодируем body
	var req UpdateDragRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /companies/{id}/drag/position - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var (
		session *domain.DragSession
		err     error
	)

	if req.DayColumn != "" {
		// С контекстом дневной колонки пересчитываются целевые день и время
		dayColumn, parseErr := time.Parse(domain.DateFormat, req.DayColumn)
		if parseErr != nil {
			h.logger.Warn("PATCH /companies/{id}/drag/position - Invalid day column: %v", parseErr)
			handlers.RespondBadRequest(w, msgInvalidDayColumn)
			return
		}
		session, err = h.manager.UpdateTarget(r.Context(), userID, req.ToPointerPosition(), dayColumn)
	} else {
		session, err = h.manager.UpdatePointer(userID, req.ToPointerPosition())
	}

	if err != nil {
		switch {
		case errors.Is(err, dragsession.ErrNoActiveDrag):
			h.logger.Warn("PATCH /companies/{id}/drag/position - No active drag: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNoActiveDrag)

		default:
			h.logger.Error("PATCH /companies/{id}/drag/position - Failed to update drag: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewDragSessionView(session))
}
