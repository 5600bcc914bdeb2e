package models

import "time"

// Location represents a geographic coordinate pair
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp" db:"recorded_at"`
}

// LocationEntry is one entry in a ride's append-only location log.
// Sequence is the 1-based position of the entry within the log.
type LocationEntry struct {
	RideID   string   `json:"ride_id" db:"ride_id"`
	Sequence int64    `json:"sequence" db:"seq"`
	Location Location `json:"location"`
	Geohash  string   `json:"geohash,omitempty" db:"geohash"`
}

// LocationUpdateRequest is the body of a driver location update
type LocationUpdateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
