package errors

import (
	stderr "errors"
	"fmt"
	"strings"
	"time"
)

// StateTimeoutError reports that a project did not reach any of the awaited
// states before the wait elapsed.
type StateTimeoutError struct {
	Project string
	States  []string
	Elapsed time.Duration
}

// Error is an implementation of the error interface.
func (t *StateTimeoutError) Error() string {
	return fmt.Sprintf("%s did not reach state %s within %v",
		t.Project, strings.Join(t.States, " or "), t.Elapsed)
}

// IsStateTimeout reports whether StateTimeoutError is part of the error chain.
func IsStateTimeout(e error) bool {
	var st *StateTimeoutError
	return stderr.As(e, &st)
}

// UnreachableError reports that the server could not be contacted at all.
type UnreachableError struct {
	URL string
	Err error
}

// Error is an implementation of the error interface.
func (u *UnreachableError) Error() string {
	return fmt.Sprintf("could not reach server at %s: %v", u.URL, u.Err)
}

// Unwrap supports errors.Is/As on the transport cause.
func (u *UnreachableError) Unwrap() error {
	return u.Err
}

// HTTPStatusError reports a non-success HTTP status from the server.
type HTTPStatusError struct {
	URL    string
	Status int
}

// Error is an implementation of the error interface.
func (h *HTTPStatusError) Error() string {
	return fmt.Sprintf("server at %s responded with status %d", h.URL, h.Status)
}

// AuthRequiredError reports that the server rejected a request for lack of
// credentials.
type AuthRequiredError struct {
	Host string
}

// Error is an implementation of the error interface.
func (a *AuthRequiredError) Error() string {
	return fmt.Sprintf("server at %s requires authentication", a.Host)
}

// IsAuthRequired reports whether AuthRequiredError is part of the error chain.
func IsAuthRequired(e error) bool {
	var ar *AuthRequiredError
	return stderr.As(e, &ar)
}

// VersionError reports a server older than the minimum this client supports.
type VersionError struct {
	Found   string
	Minimum string
}

// Error is an implementation of the error interface.
func (v *VersionError) Error() string {
	return fmt.Sprintf("server version %q is not supported, minimum is %q", v.Found, v.Minimum)
}
