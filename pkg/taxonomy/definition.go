package taxonomy

import "fmt"

// Severity is the operational urgency tier of an error, independent of its
// category.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Valid reports whether s is one of the four allowed severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// AgentError is a single standardised agent error definition. It is an
// immutable value type: construct it with NewAgentError (or validate a
// literal with Validate) and pass it by value.
type AgentError struct {
	Code        int      `json:"code" yaml:"code"`
	Category    Category `json:"category" yaml:"category"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Retryable   bool     `json:"retryable" yaml:"retryable"`
	Severity    Severity `json:"severity" yaml:"severity"`
}

// ValidationError reports an AgentError that violates its own invariants.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid agent error: %s: %s", e.Field, e.Reason)
}

// NewAgentError constructs a validated AgentError.
func NewAgentError(code int, category Category, name, description string, retryable bool, severity Severity) (AgentError, error) {
	def := AgentError{
		Code:        code,
		Category:    category,
		Name:        name,
		Description: description,
		Retryable:   retryable,
		Severity:    severity,
	}
	if err := def.Validate(); err != nil {
		return AgentError{}, err
	}
	return def, nil
}

// Validate checks the definition's invariants: a positive code and a known
// severity level.
func (d AgentError) Validate() error {
	if d.Code <= 0 {
		return &ValidationError{
			Field:  "code",
			Reason: fmt.Sprintf("must be a positive integer, got %d", d.Code),
		}
	}
	if !d.Severity.Valid() {
		return &ValidationError{
			Field:  "severity",
			Reason: fmt.Sprintf("must be one of critical, high, medium, low, got %q", d.Severity),
		}
	}
	return nil
}
