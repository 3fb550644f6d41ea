package get_day_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	getDaySchedule "github.com/m04kA/SMC-CalendarService/internal/usecase/get_day_schedule"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/schedule
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем companyId из URL
	companyIDStr := vars["companyId"]
	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/schedule - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /companies/{id}/schedule - Missing date: company_id=%d", companyID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// ID пользователя опционален (публичный роут), используется для логирования
	userID, _ := middleware.GetUserID(r.Context())

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(userID, companyID, dateStr)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/schedule - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /companies/{id}/schedule - Failed to build schedule: company_id=%d, date=%s, error=%v",
				companyID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /companies/{id}/schedule - Schedule built: company_id=%d, date=%s, slots_count=%d, appointments_count=%d",
		companyID, dateStr, len(response.Slots), len(response.Appointments))
	handlers.RespondJSON(w, http.StatusOK, response)
}
