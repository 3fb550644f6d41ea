package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ApplyConfigRequest запрос на применение конфигурации сетки компании
type ApplyConfigRequest struct {
	UserID    int64 // ID пользователя (для логирования и аудита)
	CompanyID int64

	SlotHeightPx           float64
	PixelsPerMinute        float64
	SlotDurationMinutes    int
	BusinessStartHour      int
	BusinessEndHour        int
	LunchStartHour         int
	LunchEndHour           int
	DefaultDurationMinutes int
	WorkingDays            []int
}

// ToDomainConfig конвертирует запрос в доменную конфигурацию
func (r *ApplyConfigRequest) ToDomainConfig() *domain.GridConfig {
	return &domain.GridConfig{
		CompanyID:              r.CompanyID,
		SlotHeightPx:           r.SlotHeightPx,
		PixelsPerMinute:        r.PixelsPerMinute,
		SlotDurationMinutes:    r.SlotDurationMinutes,
		BusinessStartHour:      r.BusinessStartHour,
		BusinessEndHour:        r.BusinessEndHour,
		LunchStartHour:         r.LunchStartHour,
		LunchEndHour:           r.LunchEndHour,
		DefaultDurationMinutes: r.DefaultDurationMinutes,
		WorkingDays:            r.WorkingDays,
	}
}

// ConfigResponse ответ с конфигурацией сетки
type ConfigResponse struct {
	ID        int64
	CompanyID int64

	SlotHeightPx           float64
	PixelsPerMinute        float64
	SlotDurationMinutes    int
	BusinessStartHour      int
	BusinessEndHour        int
	LunchStartHour         int
	LunchEndHour           int
	DefaultDurationMinutes int
	WorkingDays            []int

	IsDefault bool // true, если у компании нет сохраненной конфигурации

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainConfig конвертирует доменную конфигурацию в ответ сервиса
func FromDomainConfig(config *domain.GridConfig, isDefault bool) *ConfigResponse {
	return &ConfigResponse{
		ID:                     config.ID,
		CompanyID:              config.CompanyID,
		SlotHeightPx:           config.SlotHeightPx,
		PixelsPerMinute:        config.PixelsPerMinute,
		SlotDurationMinutes:    config.SlotDurationMinutes,
		BusinessStartHour:      config.BusinessStartHour,
		BusinessEndHour:        config.BusinessEndHour,
		LunchStartHour:         config.LunchStartHour,
		LunchEndHour:           config.LunchEndHour,
		DefaultDurationMinutes: config.DefaultDurationMinutes,
		WorkingDays:            config.WorkingDays,
		IsDefault:              isDefault,
		CreatedAt:              config.CreatedAt,
		UpdatedAt:              config.UpdatedAt,
	}
}
