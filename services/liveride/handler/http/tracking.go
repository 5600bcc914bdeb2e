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

// TrackingHandler handles HTTP requests for live ride tracking
type TrackingHandler struct {
	trackingUC liveride.TrackingUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC liveride.TrackingUC) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
	}
}

// StartRide starts live tracking for a ride
func (h *TrackingHandler) StartRide(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthenticatedResponse(c, "")
	}

	var req models.StartRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, apperrors.CodeInvalidRequest, "invalid request body")
	}

	resp, err := h.trackingUC.StartRide(c.Request().Context(), req.RideID, driverID)
	if err != nil {
		logger.Warn("Failed to start ride",
			logger.String("ride_id", req.RideID),
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride started successfully", resp)
}

// UpdateLocation appends a driver location report to the ride's log
func (h *TrackingHandler) UpdateLocation(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthenticatedResponse(c, "")
	}
	rideID := c.Param("rideID")

	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, apperrors.CodeInvalidRequest, "invalid request body")
	}

	entry, err := h.trackingUC.UpdateLocation(c.Request().Context(), rideID, driverID, req.Latitude, req.Longitude)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", entry)
}

// EndRideForPassenger ends one passenger's leg of the ride
func (h *TrackingHandler) EndRideForPassenger(c echo.Context) error {
	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthenticatedResponse(c, "")
	}
	rideID := c.Param("rideID")
	passengerID := c.Param("passengerID")

	resp, err := h.trackingUC.EndRideForPassenger(c.Request().Context(), rideID, passengerID, callerID)
	if err != nil {
		logger.Warn("Failed to end passenger ride",
			logger.String("ride_id", rideID),
			logger.String("passenger_id", passengerID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Passenger ride ended", resp)
}

// EndRide force-completes the whole ride
func (h *TrackingHandler) EndRide(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthenticatedResponse(c, "")
	}

	var req models.EndRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, apperrors.CodeInvalidRequest, "invalid request body")
	}

	tracking, err := h.trackingUC.EndRide(c.Request().Context(), req.RideID, driverID)
	if err != nil {
		logger.Warn("Failed to end ride",
			logger.String("ride_id", req.RideID),
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride ended successfully", tracking)
}

// GetRideStatus returns the live view of a ride to a participant
func (h *TrackingHandler) GetRideStatus(c echo.Context) error {
	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthenticatedResponse(c, "")
	}
	rideID := c.Param("rideID")

	status, err := h.trackingUC.GetRideStatus(c.Request().Context(), rideID, callerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride status", status)
}
