package taxonomy

import "fmt"

// Error pairs a catalog definition with optional free-text details. It is
// the carrier type raised through normal control flow when an operation
// aborts with taxonomy metadata attached: callers that catch it can inspect
// Definition and Details without re-parsing text.
type Error struct {
	def     AgentError
	details string
}

// NewError wraps def in a raise-able carrier. details may be empty.
func NewError(def AgentError, details string) *Error {
	return &Error{def: def, details: details}
}

// NewErrorf wraps def with formatted details.
func NewErrorf(def AgentError, format string, args ...any) *Error {
	return &Error{def: def, details: fmt.Sprintf(format, args...)}
}

// Error implements the error interface. The rendering is
// "[code] name: description", extended with " — details" when present.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("[%d] %s: %s", e.def.Code, e.def.Name, e.def.Description)
	if e.details != "" {
		msg = fmt.Sprintf("%s — %s", msg, e.details)
	}
	return msg
}

// Definition returns the catalog definition the carrier wraps.
func (e *Error) Definition() AgentError {
	if e == nil {
		return AgentError{}
	}
	return e.def
}

// Details returns the optional free-text details, empty when absent.
func (e *Error) Details() string {
	if e == nil {
		return ""
	}
	return e.details
}

// Code returns the wrapped definition's numeric code.
func (e *Error) Code() int {
	if e == nil {
		return 0
	}
	return e.def.Code
}

// Retryable reports whether the wrapped definition permits a safe retry.
func (e *Error) Retryable() bool {
	if e == nil {
		return false
	}
	return e.def.Retryable
}
