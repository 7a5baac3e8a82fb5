package httpapi

// InvokeRequest is the body of POST /invoke. Question is a pointer so that a
// missing field can be told apart from an empty string.
type InvokeRequest struct {
	Question *string `json:"question"`
}

type InvokeResponse struct {
	Answer    string   `json:"answer"`
	Reasoning *string  `json:"reasoning"`
	Sources   []string `json:"sources"`
}

type HealthResponse struct {
	Status          string `json:"status"`
	AgentStatus     string `json:"agent_status"`
	ModelConfigured string `json:"model_configured"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

const (
	AgentStatusInitialized    = "initialized"
	AgentStatusNotInitialized = "not_initialized"

	invocationFailedReasoning = "An error occurred during processing."
	notInitializedDetail      = "Agent not initialized. Check server logs for errors."
)
