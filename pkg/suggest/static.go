package suggest

import "github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"

// Static returns the built-in suggestion for code, falling back from the
// per-code table to the per-category table to a generic recommendation.
func Static(code int) Suggestion {
	if s, ok := codeSuggestions[code]; ok {
		return s
	}
	if def, ok := taxonomy.Get(code); ok {
		if s, ok := categorySuggestions[def.Category]; ok {
			return s
		}
	}
	return genericSuggestion
}

var codeSuggestions = map[int]Suggestion{
	taxonomy.CodeModelNotFound: {
		Summary:    "Verify the model identifier and ensure the provider has it available.",
		Confidence: "high",
		Steps: []string{
			"Check that the model_id matches an active model in the provider dashboard.",
			"Update the model configuration to a currently available model.",
			"Confirm the account has access to the requested model tier.",
		},
		References: []string{"https://docs.aumai.dev/errors/101"},
	},
	taxonomy.CodeModelContextOverflow: {
		Summary:    "Reduce the input size or enable context-window chunking.",
		Confidence: "high",
		Steps: []string{
			"Measure the token count of the prompt before sending.",
			"Truncate or summarise historical context to fit within the limit.",
			"Consider using a model with a larger context window.",
		},
		References: []string{"https://docs.aumai.dev/errors/102"},
	},
	taxonomy.CodeModelTimeout: {
		Summary:    "Retry the request with an exponential back-off strategy.",
		Confidence: "high",
		Steps: []string{
			"Wait at least 2 seconds before the first retry.",
			"Use exponential back-off with jitter for subsequent retries.",
			"Set a maximum retry budget (e.g., 3 attempts).",
			"Alert if retries are exhausted without success.",
		},
		References: []string{"https://docs.aumai.dev/errors/103"},
	},
	taxonomy.CodeModelRateLimit: {
		Summary:    "Back off and retry after the rate-limit reset window expires.",
		Confidence: "high",
		Steps: []string{
			"Inspect the Retry-After header in the provider response.",
			"Implement token-bucket or leaky-bucket rate limiting client-side.",
			"Consider distributing load across multiple API keys if permitted.",
		},
		References: []string{"https://docs.aumai.dev/errors/104"},
	},
	taxonomy.CodeModelOutputParseError: {
		Summary:    "Retry with a clearer prompt that enforces the expected output schema.",
		Confidence: "medium",
		Steps: []string{
			"Add a JSON schema or structured-output instruction to the system prompt.",
			"Enable provider-level JSON mode if available.",
			"Validate the output against the schema and retry if parsing fails.",
		},
		References: []string{"https://docs.aumai.dev/errors/105"},
	},
	taxonomy.CodeToolNotFound: {
		Summary:    "Register the missing tool before invoking the agent.",
		Confidence: "high",
		Steps: []string{
			"Check the tool registry for the expected tool name.",
			"Ensure the tool package is installed and imported.",
			"Restart the agent after registering the missing tool.",
		},
		References: []string{"https://docs.aumai.dev/errors/201"},
	},
	taxonomy.CodeToolInvocationError: {
		Summary:    "Wrap the tool in defensive error handling and retry.",
		Confidence: "medium",
		Steps: []string{
			"Add recovery handling inside the tool implementation.",
			"Log the full stack trace for post-mortem analysis.",
			"Retry the tool invocation if the error is transient.",
		},
		References: []string{"https://docs.aumai.dev/errors/202"},
	},
	taxonomy.CodeToolInputValidationError: {
		Summary:    "Fix the input schema and validate arguments before tool invocation.",
		Confidence: "high",
		Steps: []string{
			"Review the tool's input schema documentation.",
			"Add schema validation at the call site.",
			"Return a structured error to the agent so it can self-correct.",
		},
		References: []string{"https://docs.aumai.dev/errors/203"},
	},
	taxonomy.CodeAuthFailed: {
		Summary:    "Refresh or reissue credentials and re-authenticate.",
		Confidence: "high",
		Steps: []string{
			"Check credential expiry timestamps.",
			"Rotate the API key or JWT token.",
			"Verify that environment variables are correctly injected.",
		},
		References: []string{"https://docs.aumai.dev/errors/301"},
	},
	taxonomy.CodePermissionDenied: {
		Summary:    "Grant the required permissions to the agent's identity.",
		Confidence: "high",
		Steps: []string{
			"Review the IAM or RBAC policy for the agent role.",
			"Add the required permission or scope.",
			"Avoid granting blanket admin permissions; use least-privilege.",
		},
		References: []string{"https://docs.aumai.dev/errors/302"},
	},
	taxonomy.CodeResourceExhausted: {
		Summary:    "Reduce memory usage or increase the resource limit.",
		Confidence: "medium",
		Steps: []string{
			"Profile memory usage to identify the largest allocations.",
			"Process data in smaller batches.",
			"Increase container/VM memory limits if the workload requires it.",
		},
		References: []string{"https://docs.aumai.dev/errors/401"},
	},
	taxonomy.CodeNetworkUnreachable: {
		Summary:    "Check network connectivity and retry with back-off.",
		Confidence: "high",
		Steps: []string{
			"Ping the target endpoint to verify reachability.",
			"Review firewall and VPC routing rules.",
			"Implement retry logic with exponential back-off.",
		},
		References: []string{"https://docs.aumai.dev/errors/404"},
	},
	taxonomy.CodeMaxIterationsExceeded: {
		Summary:    "Increase the iteration budget or redesign the task decomposition.",
		Confidence: "medium",
		Steps: []string{
			"Analyse the agent's reasoning trace to find the loop.",
			"Increase max_iterations if the task is legitimately complex.",
			"Add a termination condition to the agent's planning step.",
		},
		References: []string{"https://docs.aumai.dev/errors/501"},
	},
	taxonomy.CodeDataSchemaViolation: {
		Summary:    "Validate the data against the expected schema before processing.",
		Confidence: "high",
		Steps: []string{
			"Add a schema validation step at the data ingestion boundary.",
			"Log the invalid payload for debugging.",
			"Return a structured error to the upstream caller.",
		},
		References: []string{"https://docs.aumai.dev/errors/601"},
	},
	taxonomy.CodePIIDetected: {
		Summary:    "Redact or remove PII before passing data to the agent.",
		Confidence: "high",
		Steps: []string{
			"Run a PII detection scan on all input data.",
			"Replace detected PII with placeholder tokens.",
			"Review data handling policies and update consent records.",
		},
		References: []string{"https://docs.aumai.dev/errors/604"},
	},
}

var categorySuggestions = map[taxonomy.Category]Suggestion{
	taxonomy.CategoryModel: {
		Summary:    "Investigate the model provider configuration and retry.",
		Confidence: "low",
		Steps: []string{
			"Review the model configuration for the failing agent.",
			"Check the provider status page for outages.",
			"Retry the operation after verifying the configuration.",
		},
	},
	taxonomy.CategoryTool: {
		Summary:    "Inspect the tool registry and fix the failing tool.",
		Confidence: "low",
		Steps: []string{
			"List all registered tools and verify the expected tool is present.",
			"Review the tool's error logs for root-cause details.",
			"Fix the tool implementation and redeploy.",
		},
	},
	taxonomy.CategorySecurity: {
		Summary:    "Review the agent's security policy and credentials.",
		Confidence: "low",
		Steps: []string{
			"Audit the agent's permissions and role assignments.",
			"Rotate all credentials involved in the failing operation.",
			"Escalate to the security team if a breach is suspected.",
		},
	},
	taxonomy.CategoryResource: {
		Summary:    "Free resources or scale the agent's environment.",
		Confidence: "low",
		Steps: []string{
			"Profile the agent's resource consumption.",
			"Reduce batch sizes to lower peak resource usage.",
			"Scale up the agent's compute allocation.",
		},
	},
	taxonomy.CategoryOrchestration: {
		Summary:    "Simplify the agent's task graph and add loop guards.",
		Confidence: "low",
		Steps: []string{
			"Visualise the task dependency graph.",
			"Add explicit termination conditions to all loops.",
			"Limit the maximum depth of recursive sub-task calls.",
		},
	},
	taxonomy.CategoryData: {
		Summary:    "Validate data at all system boundaries.",
		Confidence: "low",
		Steps: []string{
			"Add schema validation at the data ingestion point.",
			"Log raw payloads for inspection.",
			"Sanitise and normalise inputs before processing.",
		},
	},
}

var genericSuggestion = Suggestion{
	Summary:    "Review the agent logs and consult the AumAI error taxonomy documentation.",
	Confidence: "low",
	Steps: []string{
		"Inspect the agent's structured error response for details.",
		"Cross-reference the error code with the AumAI error taxonomy.",
		"Escalate to the engineering team if the issue persists.",
	},
	References: []string{"https://docs.aumai.dev/errors"},
}
