package apperrors

// Specific error codes surfaced to clients. Codes are stable API; kinds map
// them onto the HTTP taxonomy.
const (
	CodeMissingRideID         = "MISSING_RIDE_ID"
	CodeInvalidRideID         = "INVALID_RIDE_ID"
	CodeInvalidCoordinates    = "INVALID_COORDINATES"
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeRideNotFound          = "RIDE_NOT_FOUND"
	CodePassengerNotFound     = "PASSENGER_NOT_FOUND"
	CodeRequestNotFound       = "REQUEST_NOT_FOUND"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeUnauthorizedDriver    = "UNAUTHORIZED_DRIVER"
	CodeDuplicateRide         = "DUPLICATE_RIDE"
	CodeDuplicateRequest      = "DUPLICATE_REQUEST"
	CodePassengerAlreadyEnded = "PASSENGER_ALREADY_ENDED"
	CodeNoAcceptedPassengers  = "NO_ACCEPTED_PASSENGERS"
	CodeNoAvailableSeats      = "NO_AVAILABLE_SEATS"
	CodeRideNotOpen           = "RIDE_NOT_OPEN"
	CodeServiceUnavailable    = "SERVICE_UNAVAILABLE"
	CodeStartRideFailed       = "START_RIDE_FAILED"
	CodeInternal              = "INTERNAL_ERROR"
)
