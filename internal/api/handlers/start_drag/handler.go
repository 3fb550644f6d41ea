package start_drag

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/service/dragsession"
)

const (
	msgInvalidCompanyID     = "некорректный ID компании"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingAppointmentID = "ID записи обязателен"
	msgAppointmentNotFound  = "запись не найдена"
	msgPermissionDenied     = "перетаскивание этой записи запрещено"
	msgDragInProgress       = "у пользователя уже есть активная drag-сессия"
	msgCommitInProgress     = "предыдущий перенос еще не завершен"
	msgUnauthorized         = "пользователь не аутентифицирован"
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

// Handle POST /api/v1/companies/{companyId}/drag/start
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/drag/start - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// ID пользователя из контекста (проставлен Auth middleware)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /companies/{id}/drag/start - Missing user ID in context: company_id=%d", companyID)
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Декодируем body
	var req StartDragRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/drag/start - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.AppointmentID <= 0 {
		h.logger.Warn("POST /companies/{id}/drag/start - Missing appointment ID: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	// Начинаем drag-сессию
	session, err := h.manager.StartDrag(r.Context(), req.ToServiceRequest(userID, companyID))
	if err != nil {
		switch {
		case errors.Is(err, dragsession.ErrAppointmentNotFound):
			h.logger.Warn("POST /companies/{id}/drag/start - Appointment not found: user_id=%d, appointment_id=%d",
				userID, req.AppointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, dragsession.ErrPermissionDenied):
			h.logger.Warn("POST /companies/{id}/drag/start - Permission denied: user_id=%d, appointment_id=%d",
				userID, req.AppointmentID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, dragsession.ErrDragInProgress):
			h.logger.Warn("POST /companies/{id}/drag/start - Drag already in progress: user_id=%d", userID)
			handlers.RespondConflict(w, msgDragInProgress)

		case errors.Is(err, dragsession.ErrCommitInProgress):
			h.logger.Warn("POST /companies/{id}/drag/start - Commit in progress: user_id=%d", userID)
			handlers.RespondConflict(w, msgCommitInProgress)

		default:
			h.logger.Error("POST /companies/{id}/drag/start - Failed to start drag: user_id=%d, appointment_id=%d, error=%v",
				userID, req.AppointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{id}/drag/start - Drag started: user_id=%d, appointment_id=%d",
		userID, req.AppointmentID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.NewDragSessionView(session))
}
