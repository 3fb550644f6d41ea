package get_day_schedule

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request модель запроса дневного расписания
type Request struct {
	UserID    int64     // ID пользователя (для логирования, не влияет на результат)
	CompanyID int64     // ID компании
	Date      time.Time // Дата, на которую строится сетка (без времени)
}

// Response модель ответа с дневной раскладкой сетки
type Response struct {
	Date      time.Time
	CompanyID int64

	Slots        []domain.DaySlot              // Состояние всех слотов дня
	Appointments []AppointmentView             // Активные записи дня
	Positions    map[int64]domain.GridPosition // Позиции записей на сетке по ID

	HasAvailableSlots bool // Есть ли хотя бы один доступный слот
}

// AppointmentView представление записи для отрисовки на сетке.
// Детали клиента сюда не попадают - их выдает AppointmentService
// с учетом прав просмотра.
type AppointmentView struct {
	ID              int64
	OwnerID         int64
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	ServiceName     string
}
