package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the overall status of a ride offering
type RideStatus string

const (
	RideStatusOpen       RideStatus = "open"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCanceled   RideStatus = "canceled"
)

// RequestStatus represents the status of a passenger's join request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// Ride represents a trip offering created by a driver
type Ride struct {
	RideID         uuid.UUID  `json:"ride_id" db:"ride_id"`
	DriverID       uuid.UUID  `json:"driver_id" db:"driver_id"`
	Origin         string     `json:"origin" db:"origin"`
	Destination    string     `json:"destination" db:"destination"`
	TotalSeats     int        `json:"total_seats" db:"total_seats"`
	AvailableSeats int        `json:"available_seats" db:"available_seats"`
	Distance       float64    `json:"distance" db:"distance"` // in kilometers
	Duration       int        `json:"duration" db:"duration"` // in minutes
	Status         RideStatus `json:"status" db:"status"`
	OriginLat      float64    `json:"origin_lat" db:"origin_lat"`
	OriginLng      float64    `json:"origin_lng" db:"origin_lng"`
	DestinationLat float64    `json:"destination_lat" db:"destination_lat"`
	DestinationLng float64    `json:"destination_lng" db:"destination_lng"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	StartedAt      *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty" db:"completed_at"`

	Passengers []PassengerRequest `json:"passengers,omitempty"`
}

// PassengerRequest represents a passenger's request to join a ride
type PassengerRequest struct {
	RideID          uuid.UUID     `json:"ride_id" db:"ride_id"`
	UserID          uuid.UUID     `json:"user_id" db:"user_id"`
	Status          RequestStatus `json:"status" db:"status"`
	PickupLocation  string        `json:"pickup_location" db:"pickup_location"`
	DropoffLocation string        `json:"dropoff_location" db:"dropoff_location"`
	RequestedAt     time.Time     `json:"requested_at" db:"requested_at"`
	ApprovedAt      *time.Time    `json:"approved_at,omitempty" db:"approved_at"`
}

// CreateRideRequest is the body of a driver's create ride call. Distance is
// optional; when omitted it is derived from the origin and destination
// coordinates.
type CreateRideRequest struct {
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	TotalSeats     int     `json:"total_seats"`
	Distance       float64 `json:"distance"`
	Duration       int     `json:"duration"`
	OriginLat      float64 `json:"origin_lat"`
	OriginLng      float64 `json:"origin_lng"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLng float64 `json:"destination_lng"`
}

// JoinRideRequest is the body of a passenger's join request
type JoinRideRequest struct {
	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`
}

// HandleRequestBody is the body of the driver's accept/reject decision
type HandleRequestBody struct {
	Status RequestStatus `json:"status"`
}
