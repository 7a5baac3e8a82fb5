package agent

import (
	"fmt"

	"gaia-pathfinder/internal/domain/entity"
)

const limitMessageFormat = "I've reached the maximum number of steps (%d). Here's my best answer based on what I've learned so far."

func LimitMessage(maxIterations int) string {
	return fmt.Sprintf(limitMessageFormat, maxIterations)
}

// Guard bounds the number of completion calls a run may make.
type Guard struct {
	maxIterations int
}

func NewGuard(maxIterations int) *Guard {
	return &Guard{maxIterations: maxIterations}
}

func (g *Guard) MaxIterations() int {
	return g.maxIterations
}

// Allow reports whether state may make another completion call. When the
// limit is reached it appends the limit message and an
// iteration_limit_reached step and leaves Iteration untouched; otherwise it
// increments Iteration by one.
func (g *Guard) Allow(state *entity.AgentState) bool {
	if state.Iteration >= g.maxIterations {
		state.AppendMessage(entity.AssistantMessage(LimitMessage(g.maxIterations)))
		state.AppendStep(entity.IterationLimitStep(g.maxIterations))
		return false
	}

	state.Iteration++
	return true
}
