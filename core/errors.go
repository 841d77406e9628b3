package core

import "fmt"

// ModelErrorCause classifies why a generation call failed.
type ModelErrorCause string

const (
	// CauseTimeout indicates the call exceeded its configured deadline.
	CauseTimeout ModelErrorCause = "timeout"
	// CauseAuth indicates the backend rejected the credentials.
	CauseAuth ModelErrorCause = "auth"
	// CauseRateLimited indicates the backend throttled the call.
	CauseRateLimited ModelErrorCause = "rate_limited"
	// CauseBackend covers any other backend-reported failure.
	CauseBackend ModelErrorCause = "backend_error"
)

// ModelInvocationError reports a failed generation call together with a
// cause classification. Fatal to the current turn.
type ModelInvocationError struct {
	Cause ModelErrorCause
	Err   error
}

// Error implements the error interface.
func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("model invocation failed (%s): %v", e.Cause, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e *ModelInvocationError) Unwrap() error { return e.Err }

// SessionStoreError reports a storage-layer fault (read, write, delete or
// serialization failure). Fatal to the current turn.
type SessionStoreError struct {
	Op       string
	ThreadID string
	Err      error
}

// Error implements the error interface.
func (e *SessionStoreError) Error() string {
	return fmt.Sprintf("session store %s failed for thread %q: %v", e.Op, e.ThreadID, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e *SessionStoreError) Unwrap() error { return e.Err }

// ContextSourceError reports an unreadable or schema-invalid knowledge
// source. Recovered locally by the provider's fallback chain and never
// surfaced to the end user.
type ContextSourceError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *ContextSourceError) Error() string {
	return fmt.Sprintf("context source %q unavailable: %v", e.Source, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e *ContextSourceError) Unwrap() error { return e.Err }

// MalformedInputError reports an empty or unusable inbound message. Handled
// before any session mutation.
type MalformedInputError struct {
	Reason string
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Reason)
}
