package tracking

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrInvalidTrackingID     = errors.New("invalid tracking id")

	ErrTrackingNotFound     = errors.New("tracking not found")
	ErrTrackingExists       = errors.New("tracking already exists for shipment")
	ErrTrackingClosed       = errors.New("tracking already closed")
	ErrInvalidSecurityToken = errors.New("invalid security token")
	ErrConcurrentUpdate     = errors.New("concurrent tracking update")

	ErrCheckpointNotFound        = errors.New("checkpoint not found")
	ErrCheckpointAlreadyVerified = errors.New("checkpoint already verified")
	ErrInvalidCheckpointCode     = errors.New("invalid checkpoint code")

	ErrRouteProvider = errors.New("route provider unavailable")
)
