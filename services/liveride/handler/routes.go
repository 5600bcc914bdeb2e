package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tumpangan/liveride/internal/pkg/middleware"
	"github.com/tumpangan/liveride/internal/pkg/models"
	wspkg "github.com/tumpangan/liveride/internal/pkg/websocket"
	"github.com/tumpangan/liveride/services/liveride"
	httphandler "github.com/tumpangan/liveride/services/liveride/handler/http"
	wshandler "github.com/tumpangan/liveride/services/liveride/handler/websocket"
)

// Handler bundles the HTTP and WebSocket entry points of the service
type Handler struct {
	tracking *httphandler.TrackingHandler
	rides    *httphandler.RideHandler
	ws       *wshandler.TrackingWSHandler
	jwtCfg   models.JWTConfig
}

// NewHandler creates the service handler
func NewHandler(
	trackingUC liveride.TrackingUC,
	rideUC liveride.RideUC,
	hub *wspkg.Manager,
	jwtCfg models.JWTConfig,
) *Handler {
	return &Handler{
		tracking: httphandler.NewTrackingHandler(trackingUC),
		rides:    httphandler.NewRideHandler(rideUC),
		ws:       wshandler.NewTrackingWSHandler(hub, trackingUC),
		jwtCfg:   jwtCfg,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.jwtCfg)

	// Ride offering routes
	rides := e.Group("/rides", auth)
	rides.POST("", h.rides.CreateRide)
	rides.GET("/available", h.rides.GetAvailableRides)
	rides.GET("/mine", h.rides.GetMyRides)
	rides.POST("/:rideID/join", h.rides.JoinRide)
	rides.POST("/:rideID/requests/:passengerID", h.rides.HandleJoinRequest)

	// Live tracking routes
	live := e.Group("/live", auth)
	live.POST("/start", h.tracking.StartRide)
	live.POST("/:rideID/location", h.tracking.UpdateLocation)
	live.POST("/:rideID/passengers/:passengerID/end", h.tracking.EndRideForPassenger)
	live.POST("/end", h.tracking.EndRide)
	live.GET("/:rideID/status", h.tracking.GetRideStatus)

	// Real-time channel (token validated during the upgrade handshake)
	e.GET("/ws", h.ws.HandleWebSocket)
}
