package errors

import (
	stderr "errors"
	"fmt"
)

// ProjectNotFoundError is a domain error for a project ID absent from a
// session's cache. Absence is a normal condition for stale event references.
type ProjectNotFoundError struct {
	ID string
}

// Error is an implementation of the error interface.
func (n *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %q not found", n.ID)
}

// NotFoundProject returns the project ID and true if ProjectNotFoundError is
// part of the error chain.
func NotFoundProject(e error) (_ string, ok bool) {
	var nf *ProjectNotFoundError
	if !stderr.As(e, &nf) {
		return "", false
	}
	return nf.ID, true
}

// ConnectionNotFoundError is a domain error for a connection URL with no
// live session.
type ConnectionNotFoundError struct {
	URL string
}

// Error is an implementation of the error interface.
func (n *ConnectionNotFoundError) Error() string {
	return fmt.Sprintf("no connection to %q", n.URL)
}
