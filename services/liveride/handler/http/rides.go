package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tumpangan/liveride/internal/pkg/apperrors"
	"github.com/tumpangan/liveride/internal/pkg/logger"
	"github.com/tumpangan/liveride/internal/pkg/middleware"
	"github.com/tumpangan/liveride/internal/pkg/models"
	"github.com/tumpangan/liveride/internal/utils"
	"github.com/tumpangan/liveride/services/liveride"
)

// RideHandler handles HTTP requests for ride offerings
type RideHandler struct {
	rideUC liveride.RideUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC liveride.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

// CreateRide publishes a new ride offering
func (h *RideHandler) CreateRide(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthenticatedResponse(c, "")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, apperrors.CodeInvalidRequest, "invalid request body")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), driverID, req)
	if err != nil {
		logger.Warn("Failed to create ride",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride created successfully", ride)
}

// GetAvailableRides lists open rides, optionally filtered by origin and destination
func (h *RideHandler) GetAvailableRides(c echo.Context) error {
	rides, err := h.rideUC.GetAvailableRides(c.Request().Context(), c.QueryParam("origin"), c.QueryParam("destination"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Available rides", rides)
}

// GetMyRides lists the calling driver's rides
func (h *RideHandler) GetMyRides(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthenticatedResponse(c, "")
	}

	rides, err := h.rideUC.GetDriverRides(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver rides", rides)
}

// JoinRide files a join request for the calling passenger
func (h *RideHandler) JoinRide(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthenticatedResponse(c, "")
	}
	rideID := c.Param("rideID")

	var req models.JoinRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, apperrors.CodeInvalidRequest, "invalid request body")
	}

	request, err := h.rideUC.JoinRide(c.Request().Context(), rideID, userID, req)
	if err != nil {
		logger.Warn("Failed to join ride",
			logger.String("ride_id", rideID),
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Join request filed", request)
}

// HandleJoinRequest lets the driver accept or reject a pending join request
func (h *RideHandler) HandleJoinRequest(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthenticatedResponse(c, "")
	}
	rideID := c.Param("rideID")
	passengerID := c.Param("passengerID")

	var body models.HandleRequestBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, apperrors.CodeInvalidRequest, "invalid request body")
	}

	request, err := h.rideUC.HandleJoinRequest(c.Request().Context(), rideID, passengerID, driverID, body.Status)
	if err != nil {
		logger.Warn("Failed to handle join request",
			logger.String("ride_id", rideID),
			logger.String("passenger_id", passengerID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Join request handled", request)
}
