package errs

import "errors"

// Closed set of business error variants surfaced by the usecase layers.
// Handlers switch on these to pick a response status; nothing below this
// set leaks out of the engine unclassified.
var (
	// Lookup errors
	ErrClassNotFound    = errors.New("class not found")
	ErrAttendeeNotFound = errors.New("user has neither a booking nor a waitlist entry")

	// Booking conflicts
	ErrAlreadyBooked     = errors.New("user already booked")
	ErrAlreadyWaitlisted = errors.New("user already on waitlist")
	ErrSeatTaken         = errors.New("seat already taken")
	ErrCapacityExceeded  = errors.New("booking list exceeds max capacity")
	ErrClassInactive     = errors.New("class is no longer active")

	// Invalid requests
	ErrSeatBookingDisabled = errors.New("seat booking is disabled for this class")
	ErrSeatOutOfRange      = errors.New("seat number out of range")
	ErrInvalidClass        = errors.New("invalid class definition")

	// Completion pipeline
	ErrUnsupportedCombination = errors.New("unsupported category/intensity combination")

	// Operation errors
	ErrConflictRetryExhausted  = errors.New("concurrent update conflict, retries exhausted")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
