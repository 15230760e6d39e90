package hebcal

import "errors"

// Conversion failures are classified so callers can decide what is worth
// surfacing. Every error returned by Client wraps exactly one of these.
var (
	// ErrUnavailable covers network failures and timeouts, anything that
	// prevented a response from arriving at all.
	ErrUnavailable = errors.New("converter service unavailable")

	// ErrStatus means the service answered with a non-2xx status.
	ErrStatus = errors.New("converter service returned error status")

	// ErrBadResponse means the response body could not be decoded as JSON.
	ErrBadResponse = errors.New("converter response is not valid JSON")

	// ErrIncomplete means the JSON decoded but the converted date fields
	// are absent.
	ErrIncomplete = errors.New("converter response is missing date fields")
)
