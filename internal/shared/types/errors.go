package types

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationFailed indicates the evcc login call was rejected.
	ErrAuthenticationFailed = errors.New("authentication against the evcc API failed")

	// ErrNoChargingData is the non-error outcome of a period without any
	// charging sessions: nothing is rendered or mailed, the run succeeds.
	ErrNoChargingData = errors.New("no charging sessions found for the requested period")

	// ErrInvalidMonth rejects --month values outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// ConnectivityError indicates the evcc endpoint could not be reached at all.
type ConnectivityError struct {
	URL string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("could not reach evcc at %q: %v", e.URL, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// HTTPStatusError carries a non-success status returned by the evcc API.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("evcc API returned status %d", e.StatusCode)
}
