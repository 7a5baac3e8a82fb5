package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"gaia-pathfinder/internal/application/port/input"
	"gaia-pathfinder/internal/application/port/output"

	"github.com/google/uuid"
)

// Handler serves the agent over HTTP. The runner is attached after start-up
// with SetRunner; until then /invoke answers 503.
type Handler struct {
	mu     sync.RWMutex
	runner input.AgentRunner
	model  string
	logger output.LoggerPort
}

func NewHandler(model string, logger output.LoggerPort) *Handler {
	return &Handler{model: model, logger: logger}
}

func (h *Handler) SetRunner(runner input.AgentRunner) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.runner = runner
}

func (h *Handler) currentRunner() input.AgentRunner {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.runner
}

func (h *Handler) Invoke(w http.ResponseWriter, r *http.Request) {
	var req InvokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}
	if req.Question == nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "Field 'question' is required"})
		return
	}

	runner := h.currentRunner()
	if runner == nil {
		h.logger.Error("Invoke called before agent initialization")
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Detail: notInitializedDetail})
		return
	}

	sessionID := uuid.New().String()
	log := h.logger.WithField("session_id", sessionID)
	log.Info("Received question", "question", *req.Question)

	defer runner.Release(sessionID)

	state, err := runner.Invoke(r.Context(), sessionID, *req.Question)
	if err != nil {
		log.Error("Agent invocation failed", "error", err)
		reasoning := invocationFailedReasoning
		writeJSON(w, http.StatusOK, InvokeResponse{
			Answer:    fmt.Sprintf("Error: Agent invocation failed: %v", err),
			Reasoning: &reasoning,
			Sources:   []string{},
		})
		return
	}

	answer := state.FinalAnswer()
	log.Info("Returning answer", "answer_len", len(answer.Answer), "sources", len(answer.Sources))

	sources := answer.Sources
	if sources == nil {
		sources = []string{}
	}
	writeJSON(w, http.StatusOK, InvokeResponse{
		Answer:    answer.Answer,
		Reasoning: answer.Reasoning,
		Sources:   sources,
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := AgentStatusNotInitialized
	if h.currentRunner() != nil {
		status = AgentStatusInitialized
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:          "healthy",
		AgentStatus:     status,
		ModelConfigured: h.model,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
