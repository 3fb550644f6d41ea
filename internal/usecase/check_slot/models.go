package check_slot

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request модель запроса проверки слота
type Request struct {
	UserID          int64            // ID пользователя (для логирования)
	CompanyID       int64            // ID компании
	Date            time.Time        // Дата слота
	Time            types.TimeString // Время начала слота
	DurationMinutes int              // Длительность; 0 - длительность слота из конфигурации
}

// Response результат проверки слота с причинами недоступности
type Response struct {
	Available bool // Итоговая доступность слота

	WithinBusinessHours bool // Время внутри рабочих часов
	LunchBreak          bool // Время попадает в обеденный перерыв
	InPast              bool // Момент уже прошел
	Conflicts           bool // Интервал пересекается с активной записью
}
