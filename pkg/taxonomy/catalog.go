package taxonomy

// Stable codes for the built-in catalog. The hundreds digit of each code
// matches its category's assigned range.
const (
	CodeModelNotFound         = 101
	CodeModelContextOverflow  = 102
	CodeModelTimeout          = 103
	CodeModelRateLimit        = 104
	CodeModelOutputParseError = 105

	CodeToolNotFound             = 201
	CodeToolInvocationError      = 202
	CodeToolInputValidationError = 203
	CodeToolTimeout              = 204
	CodeToolOutputSchemaMismatch = 205

	CodeAuthFailed           = 301
	CodePermissionDenied     = 302
	CodePolicyViolation      = 303
	CodeInjectionDetected    = 304
	CodeSandboxEscapeAttempt = 305

	CodeResourceExhausted       = 401
	CodeBudgetExceeded          = 402
	CodeStorageQuotaExceeded    = 403
	CodeNetworkUnreachable      = 404
	CodeDiskWriteError          = 405
	CodeConnectionPoolExhausted = 406

	CodeMaxIterationsExceeded   = 501
	CodePlanParseError          = 502
	CodeDependencyCycleDetected = 503
	CodeHandoffFailed           = 504

	CodeDataSchemaViolation  = 601
	CodeDataNotFound         = 602
	CodeDataCorruption       = 603
	CodePIIDetected          = 604
	CodeEncodingError        = 605
	CodeMissingRequiredField = 606
)

// builtinDefs is the complete static catalog. The built-in registry is built
// from this list once at package initialisation.
var builtinDefs = []AgentError{
	// 1xx — Model errors
	{Code: CodeModelNotFound, Category: CategoryModel, Name: "model_not_found",
		Description: "The requested model identifier does not exist or is unavailable.",
		Retryable:   false, Severity: SeverityHigh},
	{Code: CodeModelContextOverflow, Category: CategoryModel, Name: "model_context_overflow",
		Description: "The input exceeds the model's maximum context window.",
		Retryable:   false, Severity: SeverityMedium},
	{Code: CodeModelTimeout, Category: CategoryModel, Name: "model_timeout",
		Description: "The model did not respond within the allowed time limit.",
		Retryable:   true, Severity: SeverityHigh},
	{Code: CodeModelRateLimit, Category: CategoryModel, Name: "model_rate_limit",
		Description: "The model provider has rate-limited the current API key or account.",
		Retryable:   true, Severity: SeverityMedium},
	{Code: CodeModelOutputParseError, Category: CategoryModel, Name: "model_output_parse_error",
		Description: "The model response could not be parsed into the expected structured format.",
		Retryable:   true, Severity: SeverityMedium},

	// 2xx — Tool errors
	{Code: CodeToolNotFound, Category: CategoryTool, Name: "tool_not_found",
		Description: "The agent called a tool that is not registered or available.",
		Retryable:   false, Severity: SeverityHigh},
	{Code: CodeToolInvocationError, Category: CategoryTool, Name: "tool_invocation_error",
		Description: "The tool raised an unhandled exception during execution.",
		Retryable:   true, Severity: SeverityHigh},
	{Code: CodeToolInputValidationError, Category: CategoryTool, Name: "tool_input_validation_error",
		Description: "The arguments supplied to the tool failed schema validation.",
		Retryable:   false, Severity: SeverityMedium},
	{Code: CodeToolTimeout, Category: CategoryTool, Name: "tool_timeout",
		Description: "The tool did not complete within the configured deadline.",
		Retryable:   true, Severity: SeverityHigh},
	{Code: CodeToolOutputSchemaMismatch, Category: CategoryTool, Name: "tool_output_schema_mismatch",
		Description: "The tool returned output that does not match its declared schema.",
		Retryable:   false, Severity: SeverityMedium},

	// 3xx — Security errors
	{Code: CodeAuthFailed, Category: CategorySecurity, Name: "auth_failed",
		Description: "Authentication credentials are missing, invalid, or expired.",
		Retryable:   false, Severity: SeverityCritical},
	{Code: CodePermissionDenied, Category: CategorySecurity, Name: "permission_denied",
		Description: "The agent lacks the required permissions to perform the action.",
		Retryable:   false, Severity: SeverityCritical},
	{Code: CodePolicyViolation, Category: CategorySecurity, Name: "policy_violation",
		Description: "The requested action violates a configured security policy.",
		Retryable:   false, Severity: SeverityCritical},
	{Code: CodeInjectionDetected, Category: CategorySecurity, Name: "injection_detected",
		Description: "A prompt or command injection attempt was detected and blocked.",
		Retryable:   false, Severity: SeverityCritical},
	{Code: CodeSandboxEscapeAttempt, Category: CategorySecurity, Name: "sandbox_escape_attempt",
		Description: "The agent attempted an action outside its permitted sandbox boundary.",
		Retryable:   false, Severity: SeverityCritical},

	// 4xx — Resource errors
	{Code: CodeResourceExhausted, Category: CategoryResource, Name: "resource_exhausted",
		Description: "A system resource (memory, CPU, file descriptors) has been exhausted.",
		Retryable:   true, Severity: SeverityHigh},
	{Code: CodeBudgetExceeded, Category: CategoryResource, Name: "budget_exceeded",
		Description: "The operation exceeded the allocated cost or token budget.",
		Retryable:   false, Severity: SeverityHigh},
	{Code: CodeStorageQuotaExceeded, Category: CategoryResource, Name: "storage_quota_exceeded",
		Description: "The agent's persistent storage quota has been exceeded.",
		Retryable:   false, Severity: SeverityMedium},
	{Code: CodeNetworkUnreachable, Category: CategoryResource, Name: "network_unreachable",
		Description: "The target network endpoint is not reachable from the agent's environment.",
		Retryable:   true, Severity: SeverityHigh},
	{Code: CodeDiskWriteError, Category: CategoryResource, Name: "disk_write_error",
		Description: "A write operation to the filesystem failed due to permission or space issues.",
		Retryable:   true, Severity: SeverityHigh},
	{Code: CodeConnectionPoolExhausted, Category: CategoryResource, Name: "connection_pool_exhausted",
		Description: "All connections in the pool are in use; the request cannot be served.",
		Retryable:   true, Severity: SeverityHigh},

	// 5xx — Orchestration errors
	{Code: CodeMaxIterationsExceeded, Category: CategoryOrchestration, Name: "max_iterations_exceeded",
		Description: "The agent exceeded the maximum allowed reasoning or action loop iterations.",
		Retryable:   false, Severity: SeverityHigh},
	{Code: CodePlanParseError, Category: CategoryOrchestration, Name: "plan_parse_error",
		Description: "The agent's plan or task decomposition could not be parsed.",
		Retryable:   true, Severity: SeverityMedium},
	{Code: CodeDependencyCycleDetected, Category: CategoryOrchestration, Name: "dependency_cycle_detected",
		Description: "A circular dependency was found in the agent's task graph.",
		Retryable:   false, Severity: SeverityHigh},
	{Code: CodeHandoffFailed, Category: CategoryOrchestration, Name: "handoff_failed",
		Description: "An attempt to hand off control to another agent or process failed.",
		Retryable:   true, Severity: SeverityHigh},

	// 6xx — Data errors
	{Code: CodeDataSchemaViolation, Category: CategoryData, Name: "data_schema_violation",
		Description: "Input or output data does not conform to the expected schema.",
		Retryable:   false, Severity: SeverityMedium},
	{Code: CodeDataNotFound, Category: CategoryData, Name: "data_not_found",
		Description: "A required data record or artifact could not be located.",
		Retryable:   false, Severity: SeverityMedium},
	{Code: CodeDataCorruption, Category: CategoryData, Name: "data_corruption",
		Description: "A data artifact is present but its contents are malformed or corrupted.",
		Retryable:   false, Severity: SeverityHigh},
	{Code: CodePIIDetected, Category: CategoryData, Name: "pii_detected",
		Description: "Personally identifiable information was found in a context where it is forbidden.",
		Retryable:   false, Severity: SeverityCritical},
	{Code: CodeEncodingError, Category: CategoryData, Name: "encoding_error",
		Description: "A data encoding or decoding error occurred (e.g. invalid UTF-8 sequence).",
		Retryable:   false, Severity: SeverityMedium},
	{Code: CodeMissingRequiredField, Category: CategoryData, Name: "missing_required_field",
		Description: "A required field is absent from the supplied data payload.",
		Retryable:   false, Severity: SeverityMedium},
}
