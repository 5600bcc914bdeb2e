package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/tumpangan/liveride/internal/pkg/constants"
	"github.com/tumpangan/liveride/internal/pkg/logger"
	"github.com/tumpangan/liveride/internal/pkg/models"
)

// client wraps a connection with a write lock. gorilla/websocket allows at
// most one concurrent writer per connection.
type client struct {
	*models.WebSocketClient
	writeMu sync.Mutex
}

// Manager manages WebSocket connections, client state and room membership.
// Rooms are fanout destinations: one per ride and one per user.
type Manager struct {
	sync.RWMutex
	clients  map[string]*client             // user id -> connection
	rooms    map[string]map[string]struct{} // room -> set of user ids
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*client),
		rooms:   make(map[string]map[string]struct{}),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	wsClient, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(wsClient, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// AddClient registers a client and joins its private user room
func (m *Manager) AddClient(wsClient *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[wsClient.UserID] = &client{WebSocketClient: wsClient}
	m.joinRoomLocked(constants.RoomUserPrefix+wsClient.UserID, wsClient.UserID)
}

// RemoveClient removes a client and its room memberships
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
	for room, members := range m.rooms {
		delete(members, userID)
		if len(members) == 0 {
			delete(m.rooms, room)
		}
	}
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	cl, exists := m.clients[userID]
	if !exists {
		return nil, false
	}
	return cl.WebSocketClient, true
}

// JoinRoom adds a connected user to a room
func (m *Manager) JoinRoom(room, userID string) {
	m.Lock()
	defer m.Unlock()
	m.joinRoomLocked(room, userID)
}

func (m *Manager) joinRoomLocked(room, userID string) {
	members, ok := m.rooms[room]
	if !ok {
		members = make(map[string]struct{})
		m.rooms[room] = members
	}
	members[userID] = struct{}{}
}

// LeaveRoom removes a user from a room
func (m *Manager) LeaveRoom(room, userID string) {
	m.Lock()
	defer m.Unlock()
	if members, ok := m.rooms[room]; ok {
		delete(members, userID)
		if len(members) == 0 {
			delete(m.rooms, room)
		}
	}
}

// CloseRoom drops all membership of a room
func (m *Manager) CloseRoom(room string) {
	m.Lock()
	defer m.Unlock()
	delete(m.rooms, room)
}

// RoomMembers returns the user ids currently in a room
func (m *Manager) RoomMembers(room string) []string {
	m.RLock()
	defer m.RUnlock()
	members := make([]string, 0, len(m.rooms[room]))
	for userID := range m.rooms[room] {
		members = append(members, userID)
	}
	return members
}

// InRoom reports whether a user is a member of a room
func (m *Manager) InRoom(room, userID string) bool {
	m.RLock()
	defer m.RUnlock()
	_, ok := m.rooms[room][userID]
	return ok
}

// BroadcastToRoom sends an event to every connected member of a room.
// Delivery is best-effort: per-client failures are logged and skipped.
func (m *Manager) BroadcastToRoom(room, event string, data interface{}) {
	m.RLock()
	targets := make([]*client, 0, len(m.rooms[room]))
	for userID := range m.rooms[room] {
		if cl, ok := m.clients[userID]; ok {
			targets = append(targets, cl)
		}
	}
	m.RUnlock()

	for _, cl := range targets {
		if err := m.send(cl, event, data); err != nil {
			logger.Warn("Error broadcasting to room member",
				logger.String("room", room),
				logger.String("user_id", cl.UserID),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}

// NotifyUser sends an event to one user's private room
func (m *Manager) NotifyUser(userID, event string, data interface{}) {
	m.RLock()
	cl, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := m.send(cl, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
	}
}

// SendMessage sends a message to a WebSocket connection
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // nil connection tolerated for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error event to a WebSocket connection
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

func (m *Manager) send(cl *client, event string, data interface{}) error {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()
	return m.SendMessage(cl.Conn, event, data)
}
