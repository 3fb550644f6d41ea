package get_grid_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
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

// Handle GET /api/v1/companies/{companyId}/grid-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/grid-config - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// Сервис вернет значения по умолчанию, если конфигурация не сохранена
	result, err := h.service.GetByCompany(r.Context(), companyID)
	if err != nil {
		h.logger.Error("GET /companies/{id}/grid-config - Failed to get config: company_id=%d, error=%v",
			companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companies/{id}/grid-config - Config retrieved: company_id=%d, is_default=%t",
		companyID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
