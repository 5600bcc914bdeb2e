package constants

// Redis key formats
const (
	// Latest committed location per ride, written only after the location
	// append transaction commits. Read-through projection, never authoritative.
	KeyRideLocation = "rides:location:%s" // Format: rides:location:{ride_id}
)
