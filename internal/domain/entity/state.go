package entity

import "strings"

const NoFinalAnswerMessage = "Agent processing completed. No definitive final answer found."

// AgentState is owned by a single request for the duration of one run.
// Messages and StepLog only grow; use the Append methods to modify them.
type AgentState struct {
	SessionID       string
	Messages        []Message
	CurrentQuestion string
	Iteration       int
	StepLog         []StepEvent
}

func NewAgentState(sessionID, question string) *AgentState {
	return &AgentState{
		SessionID:       sessionID,
		Messages:        []Message{UserMessage(question)},
		CurrentQuestion: question,
	}
}

func (s *AgentState) AppendMessage(msg Message) {
	s.Messages = append(s.Messages, msg)
}

func (s *AgentState) AppendStep(step StepEvent) {
	s.StepLog = append(s.StepLog, step)
}

func (s *AgentState) LastAssistantMessage() (Message, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleAssistant {
			return s.Messages[i], true
		}
	}
	return Message{}, false
}

// FinalAnswer maps a terminal state to the answer handed to callers.
// The first final_answer step wins, then the last assistant message, then a
// fixed placeholder. The result always carries a non-empty answer.
func (s *AgentState) FinalAnswer() StructuredAnswer {
	for _, step := range s.StepLog {
		if step.Kind != StepFinalAnswer {
			continue
		}
		if answer, ok := step.Payload.(StructuredAnswer); ok && strings.TrimSpace(answer.Answer) != "" {
			return answer
		}
	}

	if msg, ok := s.LastAssistantMessage(); ok {
		if answer, err := NewStructuredAnswer(msg.Content, "", nil); err == nil {
			return answer
		}
	}

	return StructuredAnswer{Answer: NoFinalAnswerMessage, Sources: []string{}}
}

// Clone returns a snapshot that shares no slices with s.
func (s *AgentState) Clone() *AgentState {
	clone := *s
	clone.Messages = append([]Message(nil), s.Messages...)
	clone.StepLog = append([]StepEvent(nil), s.StepLog...)
	return &clone
}
