package taxonomy

import "time"

// timestampLayout is ISO-8601 UTC with microsecond precision and an explicit
// offset marker. A fixed-width fraction is used instead of RFC3339Nano so the
// sub-second component never collapses away.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// ResponseBody is the inner object of a structured error response. The key
// set and nesting are wire-stable: do not add, rename, or reorder fields
// without a protocol version bump.
type ResponseBody struct {
	Code        int      `json:"code"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Retryable   bool     `json:"retryable"`
	Details     *string  `json:"details"`
	Timestamp   string   `json:"timestamp"`
}

// Response is a serialisable error response: a single "error" key wrapping
// the definition, optional details, and a generation timestamp.
type Response struct {
	Error ResponseBody `json:"error"`
}

// CreateErrorResponse renders def into a structured response with a fresh
// UTC timestamp. An empty details string is treated as absent and marshals
// as JSON null; the "details" key itself is always present.
func CreateErrorResponse(def AgentError, details string) Response {
	body := ResponseBody{
		Code:        def.Code,
		Name:        def.Name,
		Category:    def.Category,
		Description: def.Description,
		Severity:    def.Severity,
		Retryable:   def.Retryable,
		Timestamp:   time.Now().UTC().Format(timestampLayout),
	}
	if details != "" {
		body.Details = &details
	}
	return Response{Error: body}
}
