// Package taxonomy provides the standardised AumAI agent error catalog:
// stable numeric error codes, category grouping, fault classification, and
// structured response formatting.
//
// Each error definition has:
//   - A stable positive numeric code (e.g. 103, 302)
//   - A category (model, tool, security, resource, orchestration, data)
//   - A short machine-readable name (snake_case, stable across versions)
//   - A human-readable description
//   - A retryable flag and an operational severity
//
// Codes follow a scheme where the hundreds digit denotes the category:
//   - 1xx: model errors
//   - 2xx: tool errors
//   - 3xx: security errors
//   - 4xx: resource errors
//   - 5xx: orchestration errors
//   - 6xx: data errors
//
// The built-in registry is constructed once at package initialisation and is
// read-only thereafter; callers needing a custom error set should build their
// own Registry, which is fully independent of the built-in one.
//
// Example usage:
//
//	def, err := taxonomy.Lookup(302)
//	if errors.Is(err, taxonomy.ErrUnknownCode) {
//		// Handle unregistered code
//	}
//
//	def = taxonomy.Classify(opErr)            // total, falls back to 601
//	resp := taxonomy.CreateErrorResponse(def, "no access to /etc/passwd")
package taxonomy
