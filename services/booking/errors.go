package booking

import "errors"

var (
	// ErrInvalidRequest marks a submission missing a required field. The
	// arbiter rejects rather than inserting a partial record.
	ErrInvalidRequest = errors.New("invalid booking request")
	// ErrNotFound marks a lookup miss on an id-based operation.
	ErrNotFound = errors.New("booking not found")
	// ErrStoreUnavailable marks a collaborator failure; callers surface it as
	// a service-unavailable outcome without retrying here.
	ErrStoreUnavailable = errors.New("booking store unavailable")
)
