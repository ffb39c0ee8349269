package providerclient

import (
	"errors"
	"fmt"
)

type FetchReason string

const (
	ReasonNetwork   FetchReason = "network"
	ReasonStatus    FetchReason = "status"
	ReasonMalformed FetchReason = "malformed"
)

// FetchError is returned for every failed provider query. It is never fatal,
// the sync cycle is skipped and retried on the next tick.
type FetchError struct {
	Op         string
	Reason     FetchReason
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Reason == ReasonStatus {
		return fmt.Sprintf("%s: unexpected status code %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}
