package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient represents an authenticated WebSocket connection
type WebSocketClient struct {
	UserID string
	Role   string
	Conn   *websocket.Conn
}

// WebSocketClaims represents JWT claims used for WebSocket authentication
type WebSocketClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// WSJoinRideRequest is the payload of a join_ride client event
type WSJoinRideRequest struct {
	RideID string `json:"ride_id"`
}

// WSLocationUpdate is the payload of an update_location client event
type WSLocationUpdate struct {
	RideID    string  `json:"ride_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// WSEndPassengerRide is the payload of an end_passenger_ride client event
type WSEndPassengerRide struct {
	RideID      string `json:"ride_id"`
	PassengerID string `json:"passenger_id"`
}
