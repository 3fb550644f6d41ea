package drag_stream

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/dragsession"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second

	maxMessageSize = 4096

	msgNoActiveDrag = "активная drag-сессия не найдена"
	msgUnauthorized = "пользователь не аутентифицирован"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin проверяет API gateway
		return true
	},
}

type Handler struct {
	manager DragManager
	logger  Logger
}

func NewHandler(manager DragManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/drag/stream
// Поднимает WebSocket поток drag-сессии: клиент шлет позиции указателя,
// сервер отвечает актуальным состоянием сессии после каждого обновления.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// ID пользователя из контекста (проставлен Auth middleware)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /companies/{id}/drag/stream - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Поток имеет смысл только при активной сессии
	session, ok := h.manager.GetSession(userID)
	if !ok {
		handlers.RespondNotFound(w, msgNoActiveDrag)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/drag/stream - Upgrade failed: user_id=%d, error=%v", userID, err)
		return
	}

	h.logger.Info("GET /companies/{id}/drag/stream - Stream opened: user_id=%d, appointment_id=%d",
		userID, session.AppointmentID)

	// Один writer на соединение: ответы и ping'и сериализуются мьютексом
	var writeMu sync.Mutex
	writeEvent := func(event *StreamEvent) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(event)
	}

	stopPing := make(chan struct{})
	go h.pingLoop(conn, &writeMu, stopPing)

	defer func() {
		close(stopPing)
		conn.Close()
		h.logger.Info("GET /companies/{id}/drag/stream - Stream closed: user_id=%d", userID)
	}()

	// Начальное состояние сессии
	if err := writeEvent(&StreamEvent{Type: eventTypeSession, Session: handlers.NewDragSessionView(session)}); err != nil {
		return
	}

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("GET /companies/{id}/drag/stream - Read error: user_id=%d, error=%v", userID, err)
			}
			return
		}

		event := h.handleMessage(r, userID, message)
		if err := writeEvent(event); err != nil {
			return
		}

		// После потери сессии поток больше не нужен
		if event.Type == eventTypeError && event.Error == msgNoActiveDrag {
			return
		}
	}
}

// handleMessage обрабатывает входящее сообщение с позицией указателя
func (h *Handler) handleMessage(r *http.Request, userID int64, message []byte) *StreamEvent {
	var msg PointerMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		return &StreamEvent{Type: eventTypeError, Error: "некорректное сообщение"}
	}

	pos := domain.PointerPosition{X: msg.Pointer.X, Y: msg.Pointer.Y}

	var (
		session *domain.DragSession
		err     error
	)

	if msg.DayColumn != "" {
		dayColumn, parseErr := time.Parse(domain.DateFormat, msg.DayColumn)
		if parseErr != nil {
			return &StreamEvent{Type: eventTypeError, Error: "некорректный формат dayColumn"}
		}
		session, err = h.manager.UpdateTarget(r.Context(), userID, pos, dayColumn)
	} else {
		session, err = h.manager.UpdatePointer(userID, pos)
	}

	if err != nil {
		if errors.Is(err, dragsession.ErrNoActiveDrag) {
			return &StreamEvent{Type: eventTypeError, Error: msgNoActiveDrag}
		}
		h.logger.Error("GET /companies/{id}/drag/stream - Update failed: user_id=%d, error=%v", userID, err)
		return &StreamEvent{Type: eventTypeError, Error: "не удалось обновить сессию"}
	}

	return &StreamEvent{Type: eventTypeSession, Session: handlers.NewDragSessionView(session)}
}

// pingLoop периодически шлет ping, чтобы поддерживать соединение живым
func (h *Handler) pingLoop(conn *websocket.Conn, writeMu *sync.Mutex, stop <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			writeMu.Lock()
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := conn.WriteMessage(websocket.PingMessage, nil)
			writeMu.Unlock()
			if err != nil {
				return
			}
		case <-stop:
			return
		}
	}
}
