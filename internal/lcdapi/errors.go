package lcdapi

import (
	"errors"
	"fmt"
)

var (
	ErrNoBaseURL      = errors.New("no render server URL configured")
	ErrServerRejected = errors.New("render server reported an error")
	ErrSaveCanceled   = errors.New("save dialog was dismissed")
)

// StatusError reports a non-2xx HTTP response. Status keeps the full
// status line so messages shown to the user carry the code and text.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("render server returned %s", e.Status)
}
