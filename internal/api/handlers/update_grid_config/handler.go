package update_grid_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	gridconfigService "github.com/m04kA/SMC-CalendarService/internal/service/gridconfig"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректная конфигурация сетки"
	msgUnauthorized       = "пользователь не аутентифицирован"
)

type Handler struct {
	service GridConfigService
	logger  Logger
}

func NewHandler(service GridConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/companies/{companyId}/grid-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/grid-config - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// ID пользователя из контекста (проставлен Auth middleware)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /companies/{id}/grid-config - Missing user ID in context: company_id=%d", companyID)
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Декодируем body
	var req UpdateGridConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companies/{id}/grid-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Применяем конфигурацию (сервис валидирует инварианты до записи)
	result, err := h.service.Apply(r.Context(), req.ToServiceRequest(userID, companyID))
	if err != nil {
		switch {
		case errors.Is(err, gridconfigService.ErrInvalidConfig):
			h.logger.Warn("PUT /companies/{id}/grid-config - Invalid config: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		case errors.Is(err, gridconfigService.ErrInvalidInput):
			h.logger.Warn("PUT /companies/{id}/grid-config - Invalid input: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /companies/{id}/grid-config - Failed to apply config: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /companies/{id}/grid-config - Config applied: company_id=%d, config_id=%d",
		companyID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
