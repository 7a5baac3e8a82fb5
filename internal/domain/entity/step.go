package entity

type StepKind string

const (
	StepFinalAnswer           StepKind = "final_answer"
	StepIterationLimitReached StepKind = "iteration_limit_reached"
	StepErrorMessage          StepKind = "error_message"
)

// StepEvent is one entry of a run's step log. Payload depends on Kind:
// StructuredAnswer for final_answer, the configured maximum (int) for
// iteration_limit_reached and a message string for error_message.
type StepEvent struct {
	Kind    StepKind `json:"type"`
	Payload any      `json:"content"`
}

func FinalAnswerStep(answer StructuredAnswer) StepEvent {
	return StepEvent{Kind: StepFinalAnswer, Payload: answer}
}

func IterationLimitStep(maxIterations int) StepEvent {
	return StepEvent{Kind: StepIterationLimitReached, Payload: maxIterations}
}

func ErrorStep(message string) StepEvent {
	return StepEvent{Kind: StepErrorMessage, Payload: message}
}
