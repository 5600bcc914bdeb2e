package websocket

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/tumpangan/liveride/internal/pkg/apperrors"
	"github.com/tumpangan/liveride/internal/pkg/constants"
	"github.com/tumpangan/liveride/internal/pkg/logger"
	"github.com/tumpangan/liveride/internal/pkg/models"
	wspkg "github.com/tumpangan/liveride/internal/pkg/websocket"
	"github.com/tumpangan/liveride/services/liveride"
)

// TrackingWSHandler serves the client side of the real-time channel: clients
// join ride rooms and may push tracking commands over the same connection.
type TrackingWSHandler struct {
	hub        *wspkg.Manager
	trackingUC liveride.TrackingUC
}

// NewTrackingWSHandler creates a new WebSocket tracking handler
func NewTrackingWSHandler(hub *wspkg.Manager, trackingUC liveride.TrackingUC) *TrackingWSHandler {
	return &TrackingWSHandler{
		hub:        hub,
		trackingUC: trackingUC,
	}
}

// HandleWebSocket upgrades the connection and runs the message loop
func (h *TrackingWSHandler) HandleWebSocket(c echo.Context) error {
	return h.hub.HandleConnection(c, h.handleClientConnection)
}

// handleClientConnection manages one client's connection lifetime
func (h *TrackingWSHandler) handleClientConnection(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	h.hub.AddClient(client)
	defer h.hub.RemoveClient(client.UserID)

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	return h.messageLoop(client)
}

// messageLoop reads and dispatches incoming messages
func (h *TrackingWSHandler) messageLoop(client *models.WebSocketClient) error {
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return err
		}

		if err := h.handleMessage(client, msg); err != nil {
			logger.Warn("Error handling WebSocket message",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// handleMessage routes a client event to its handler
func (h *TrackingWSHandler) handleMessage(client *models.WebSocketClient, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return h.hub.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case constants.EventJoinRide:
		return h.handleJoinRide(client, wsMsg.Data)
	case constants.EventUpdateLocation:
		return h.handleLocationUpdate(client, wsMsg.Data)
	case constants.EventEndPassengerRide:
		return h.handleEndPassengerRide(client, wsMsg.Data)
	default:
		return h.hub.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Unknown event type")
	}
}

// handleJoinRide puts an authorized participant into the ride room and
// replies with the current ride snapshot
func (h *TrackingWSHandler) handleJoinRide(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.WSJoinRideRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.hub.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid join request format")
	}

	userID, err := parseUserID(client.UserID)
	if err != nil {
		return h.hub.SendErrorMessage(client.Conn, constants.ErrorUnauthorized, "Invalid user id")
	}

	details, err := h.trackingUC.AuthorizeRideJoin(context.Background(), req.RideID, userID)
	if err != nil {
		appErr := apperrors.FromError(err)
		return h.hub.SendErrorMessage(client.Conn, appErr.Code, appErr.Message)
	}

	h.hub.JoinRoom(constants.RoomRidePrefix+req.RideID, client.UserID)

	return h.hub.SendMessage(client.Conn, constants.EventRideDetails, details)
}

// handleLocationUpdate lets the driver push location reports over the socket
func (h *TrackingWSHandler) handleLocationUpdate(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.WSLocationUpdate
	if err := json.Unmarshal(data, &req); err != nil {
		return h.hub.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid location update format")
	}

	driverID, err := parseUserID(client.UserID)
	if err != nil {
		return h.hub.SendErrorMessage(client.Conn, constants.ErrorUnauthorized, "Invalid user id")
	}

	if _, err := h.trackingUC.UpdateLocation(context.Background(), req.RideID, driverID, req.Latitude, req.Longitude); err != nil {
		appErr := apperrors.FromError(err)
		return h.hub.SendErrorMessage(client.Conn, appErr.Code, appErr.Message)
	}

	return nil
}

// handleEndPassengerRide ends one passenger leg from the socket
func (h *TrackingWSHandler) handleEndPassengerRide(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.WSEndPassengerRide
	if err := json.Unmarshal(data, &req); err != nil {
		return h.hub.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid end ride format")
	}

	callerID, err := parseUserID(client.UserID)
	if err != nil {
		return h.hub.SendErrorMessage(client.Conn, constants.ErrorUnauthorized, "Invalid user id")
	}

	if req.PassengerID == "" {
		req.PassengerID = client.UserID
	}

	if _, err := h.trackingUC.EndRideForPassenger(context.Background(), req.RideID, req.PassengerID, callerID); err != nil {
		appErr := apperrors.FromError(err)
		return h.hub.SendErrorMessage(client.Conn, appErr.Code, appErr.Message)
	}

	return nil
}

func parseUserID(userID string) (uuid.UUID, error) {
	return uuid.Parse(userID)
}
