package get_week_overview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	getWeekOverview "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week_overview"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidParams    = "некорректные параметры запроса, ожидается startDate=YYYY-MM-DD и целое days"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetWeekOverviewUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/schedule/week
// Query params: startDate (optional, YYYY-MM-DD), days (optional, 1..31)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем companyId из URL
	companyIDStr := vars["companyId"]
	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/schedule/week - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	// Формируем запрос к use case (с парсингом опциональных параметров)
	useCaseReq, err := ToUseCaseRequest(userID, companyID,
		r.URL.Query().Get("startDate"), r.URL.Query().Get("days"))
	if err != nil {
		h.logger.Warn("GET /companies/{id}/schedule/week - Invalid params: company_id=%d, error=%v", companyID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getWeekOverview.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/schedule/week - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /companies/{id}/schedule/week - Failed to build overview: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /companies/{id}/schedule/week - Overview built: company_id=%d, days_count=%d",
		companyID, len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
