package get_drag_state

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
)

const (
	msgNoActiveDrag = "активная drag-сессия не найдена"
	msgUnauthorized = "пользователь не аутентифицирован"
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

// Handle GET /api/v1/companies/{companyId}/drag
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// ID пользователя из контекста (проставлен Auth middleware)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /companies/{id}/drag - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	session, ok := h.manager.GetSession(userID)
	if !ok {
		handlers.RespondNotFound(w, msgNoActiveDrag)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewDragSessionView(session))
}
