package api

import (
	"errors"
	"fmt"
)

// ValidationError reports required fields that failed the client-side
// pre-flight check. No network call is made when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthRequiredError signals an HTTP 401. The caller must not retry and
// should prompt the user to re-authenticate.
type AuthRequiredError struct {
	Endpoint string
}

func (e *AuthRequiredError) Error() string {
	return fmt.Sprintf("authentication required (401 from %s)", e.Endpoint)
}

// BadRequestError carries the server-provided message for an HTTP 400.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	if e.Message == "" {
		return "bad request"
	}
	return "bad request: " + e.Message
}

// ConflictError signals an HTTP 409: the task changed on the server since
// it was fetched. The caller should re-fetch and retry the edit.
type ConflictError struct {
	TaskID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("task #%d was modified by someone else, re-fetch and try again", e.TaskID)
}

// ServerError signals an HTTP 5xx, a transient condition worth retrying.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// NetworkError wraps a transport failure where no response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// CalendarUnavailableError signals a 404/400 from a calendar endpoint.
// It means the calendar feature is absent on this backend, not that the
// operation failed; callers log it instead of surfacing a hard error.
type CalendarUnavailableError struct {
	Endpoint string
}

func (e *CalendarUnavailableError) Error() string {
	return "calendar sync is not available on this server"
}

// IsAuthRequired reports whether err is (or wraps) an AuthRequiredError.
func IsAuthRequired(err error) bool {
	var authErr *AuthRequiredError
	return errors.As(err, &authErr)
}

// IsCalendarUnavailable reports whether err means the calendar feature
// is absent rather than broken.
func IsCalendarUnavailable(err error) bool {
	var calErr *CalendarUnavailableError
	return errors.As(err, &calErr)
}
