package check_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	checkSlot "github.com/m04kA/SMC-CalendarService/internal/usecase/check_slot"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgMissingDate      = "дата обязательна"
	msgMissingTime      = "время обязательно"
	msgInvalidParams    = "некорректные параметры запроса, ожидается date=YYYY-MM-DD, time=HH:MM"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/schedule/check-slot
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM),
// duration (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем companyId из URL
	companyIDStr := vars["companyId"]
	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/schedule/check-slot - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /companies/{id}/schedule/check-slot - Missing date: company_id=%d", companyID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := query.Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /companies/{id}/schedule/check-slot - Missing time: company_id=%d", companyID)
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	// Формируем запрос к use case
	useCaseReq, err := ToUseCaseRequest(userID, companyID, dateStr, timeStr, query.Get("duration"))
	if err != nil {
		h.logger.Warn("GET /companies/{id}/schedule/check-slot - Invalid params: company_id=%d, error=%v", companyID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSlot.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/schedule/check-slot - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /companies/{id}/schedule/check-slot - Failed to check slot: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{id}/schedule/check-slot - Slot checked: company_id=%d, date=%s, time=%s, available=%t",
		companyID, dateStr, timeStr, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
