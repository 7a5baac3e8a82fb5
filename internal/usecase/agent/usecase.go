package agent

import (
	"context"
	"fmt"

	"gaia-pathfinder/internal/application/port/input"
	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/domain/entity"
	"gaia-pathfinder/internal/usecase/extractor"
)

var _ input.AgentRunner = (*UseCase)(nil)

// UseCase runs the single-step agent: START -> AGENT -> END, or
// START -> LIMIT_REACHED -> END when the guard trips. There is no edge back
// to AGENT, so a run makes at most one completion call.
type UseCase struct {
	llm          output.LLMPort
	guard        *Guard
	checkpoints  output.Checkpointer
	logger       output.LoggerPort
	systemPrompt string
}

func New(
	llm output.LLMPort,
	checkpoints output.Checkpointer,
	logger output.LoggerPort,
	systemPrompt string,
	maxIterations int,
) *UseCase {
	return &UseCase{
		llm:          llm,
		guard:        NewGuard(maxIterations),
		checkpoints:  checkpoints,
		logger:       logger,
		systemPrompt: systemPrompt,
	}
}

// Invoke runs a fresh state for question and returns the state read back
// from the checkpoint stored under sessionID.
func (uc *UseCase) Invoke(ctx context.Context, sessionID, question string) (*entity.AgentState, error) {
	state, err := uc.Run(ctx, entity.NewAgentState(sessionID, question))
	if err != nil {
		return nil, err
	}

	uc.checkpoints.Put(sessionID, state)

	final, ok := uc.checkpoints.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("read checkpoint %s: not found", sessionID)
	}
	return final, nil
}

func (uc *UseCase) Release(sessionID string) {
	uc.checkpoints.Delete(sessionID)
}

// Run drives state through the pipeline and returns it. Completion and
// extraction failures are recorded in the state rather than returned; the
// only error is cancellation of ctx.
func (uc *UseCase) Run(ctx context.Context, state *entity.AgentState) (*entity.AgentState, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run agent: %w", err)
	}

	log := uc.logger.WithField("session_id", state.SessionID)

	if uc.guard.Allow(state) {
		log.Info("Agent iteration", "iteration", state.Iteration, "max_iterations", uc.guard.MaxIterations())
		if err := uc.agentStep(ctx, state, log); err != nil {
			return nil, err
		}
	} else {
		log.Warn("Agent reached maximum iterations. Stopping.", "max_iterations", uc.guard.MaxIterations())
	}

	log.Info("Agent workflow completed.", "iteration", state.Iteration, "steps", len(state.StepLog))
	return state, nil
}

func (uc *UseCase) agentStep(ctx context.Context, state *entity.AgentState, log output.LoggerPort) error {
	resp, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			entity.SystemMessage(uc.systemPrompt),
			entity.UserMessage(state.CurrentQuestion),
		},
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("agent step: %w", ctxErr)
		}
		uc.recordError(state, log, err)
		return nil
	}

	answer, err := extractor.Extract(resp.Message.Content)
	if err != nil {
		uc.recordError(state, log, err)
		return nil
	}

	state.AppendStep(entity.FinalAnswerStep(answer))
	state.AppendMessage(entity.AssistantMessage(answer.Answer))

	log.Info("Structured answer produced",
		"answer_len", len(answer.Answer),
		"reasoning_len", len(answer.ReasoningText()),
		"sources", len(answer.Sources),
	)
	return nil
}

func (uc *UseCase) recordError(state *entity.AgentState, log output.LoggerPort, err error) {
	msg := fmt.Sprintf("Error in agent processing: %v", err)
	log.Error("Agent step failed", "error", err)

	state.AppendMessage(entity.AssistantMessage("LLM Error: " + msg))
	state.AppendStep(entity.ErrorStep(msg))
}
