package get_week_overview

import "time"

// Request модель запроса недельного обзора
type Request struct {
	UserID    int64     // ID пользователя (для логирования, не влияет на результат)
	CompanyID int64     // ID компании
	StartDate time.Time // Начало окна; нулевое значение - окно от даты по умолчанию
	Days      int       // Размер окна в днях; 0 - неделя
}

// DayOverview сводка по одному рабочему дню окна
type DayOverview struct {
	Date              time.Time
	Weekday           time.Weekday
	IsToday           bool
	IsPast            bool
	AppointmentCount  int  // Количество активных записей
	HasAvailableSlots bool // Есть ли хотя бы один доступный слот
}

// Response модель ответа с недельным обзором.
// Days содержит только рабочие дни окна.
type Response struct {
	CompanyID       int64
	StartDate       time.Time
	DefaultViewDate time.Time // Подходящая дата представления по умолчанию
	Days            []DayOverview
}
