package appointmentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с AppointmentService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента AppointmentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAppointment получает запись по ID
func (c *Client) GetAppointment(ctx context.Context, appointmentID int64) (*domain.Appointment, error) {
	url := fmt.Sprintf("%s/internal/appointments/%d", c.baseURL, appointmentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAppointmentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var appt Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appt); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result, err := appt.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to convert appointment: %v", ErrInvalidResponse, err)
	}

	return result, nil
}

// GetAppointments получает снимок записей компании на дату
func (c *Client) GetAppointments(ctx context.Context, companyID int64, date time.Time) ([]*domain.Appointment, error) {
	url := fmt.Sprintf("%s/internal/companies/%d/appointments?date=%s",
		c.baseURL, companyID, date.Format(domain.DateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var appointments []Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointments); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result := make([]*domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		converted, err := appt.ToDomain()
		if err != nil {
			// Некорректную запись пропускаем, но фиксируем в логах
			c.log.Warn("GetAppointments: skipping malformed appointment id=%d: %v", appt.ID, err)
			continue
		}
		result = append(result, converted)
	}

	return result, nil
}

// RelocateAppointment переносит запись на новые дату и время.
// Должен вызываться не более одного раза на подтвержденный drag.
func (c *Client) RelocateAppointment(ctx context.Context, appointmentID int64, newDate time.Time, newTime types.TimeString) error {
	url := fmt.Sprintf("%s/internal/appointments/%d/relocate", c.baseURL, appointmentID)

	payload, err := json.Marshal(RelocateRequest{
		Date:      newDate.Format(domain.DateFormat),
		StartTime: newTime.String(),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrAppointmentNotFound
	case http.StatusConflict:
		return ErrRelocationConflict
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// GetPermissions получает права пользователя на запись.
// Права вычисляются AppointmentService по роли и владению и передаются
// в этот сервис как входные флаги.
func (c *Client) GetPermissions(ctx context.Context, userID, appointmentID int64) (*Permissions, error) {
	url := fmt.Sprintf("%s/internal/appointments/%d/permissions?userId=%d", c.baseURL, appointmentID, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAppointmentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var perms Permissions
	if err := json.NewDecoder(resp.Body).Decode(&perms); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &perms, nil
}
