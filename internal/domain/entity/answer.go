package entity

import (
	"errors"
	"strings"
)

var ErrEmptyAnswer = errors.New("answer cannot be empty")

// StructuredAnswer is the validated (answer, reasoning, sources) triple
// returned to callers. Answer is never blank; Reasoning is nil when absent.
type StructuredAnswer struct {
	Answer    string   `json:"answer"`
	Reasoning *string  `json:"reasoning"`
	Sources   []string `json:"sources"`
}

// NewStructuredAnswer validates answer and builds the record. An empty
// reasoning is stored as absent and a nil sources slice as an empty one.
func NewStructuredAnswer(answer, reasoning string, sources []string) (StructuredAnswer, error) {
	if strings.TrimSpace(answer) == "" {
		return StructuredAnswer{}, ErrEmptyAnswer
	}

	result := StructuredAnswer{
		Answer:  answer,
		Sources: make([]string, len(sources)),
	}
	copy(result.Sources, sources)

	if reasoning != "" {
		r := reasoning
		result.Reasoning = &r
	}

	return result, nil
}

func (a StructuredAnswer) ReasoningText() string {
	if a.Reasoning == nil {
		return ""
	}
	return *a.Reasoning
}
