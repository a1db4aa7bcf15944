package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// ErrDuplicateConnection reports that a session already exists for a URL.
	ErrDuplicateConnection = New("a connection to this server already exists")
	// ErrAuthCancelled reports that the user cancelled a login flow. This is
	// a quiet abort, not a hard failure.
	ErrAuthCancelled = New("login cancelled")
	// ErrProjectDeleted reports that the project was removed from the server.
	ErrProjectDeleted = New("project was deleted")
)

// IsQuietAbort reports whether the error should be surfaced to the user at
// all. User-cancelled flows are dropped silently.
func IsQuietAbort(e error) bool {
	return stderr.Is(e, ErrAuthCancelled)
}
