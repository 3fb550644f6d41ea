package cancel_drag

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
)

const (
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

// Handle POST /api/v1/companies/{companyId}/drag/cancel
// Идемпотентен: отмена без активной сессии - no-op с тем же ответом.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// ID пользователя из контекста (проставлен Auth middleware)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /companies/{id}/drag/cancel - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	h.manager.CancelDrag(userID)

	h.logger.Info("POST /companies/{id}/drag/cancel - Drag cancelled: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
