// Package extractor turns a free-text completion into a structured answer
// by matching conventional section labels.
package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"gaia-pathfinder/internal/domain/entity"
)

// Whitespace classes include Unicode separators such as U+00A0, which RE2's
// \s does not.
var (
	// Captures up to the next blank line or end of text.
	reasoningPattern = regexp.MustCompile(`(?is)(?:Reasoning|Thought process|Rationale):[\s\p{Z}]*(.*?)(?:\n\n|\z)`)
	sourcePattern    = regexp.MustCompile(`(?i)(?:Source|Reference):[\s\p{Z}]*(https?://[^\s\p{Z}]+)`)
)

var (
	findReasoning = reasoningPattern.FindStringSubmatch
	findSources   = sourcePattern.FindAllStringSubmatch
)

// Extract builds a StructuredAnswer from completion. The answer is always the
// full completion text, including any reasoning or source lines. Extract is a
// pure function of its input.
//
// The only error is entity.ErrEmptyAnswer, returned when completion is blank.
func Extract(completion string) (entity.StructuredAnswer, error) {
	reasoning, sources := Scan(completion)

	answer, err := entity.NewStructuredAnswer(completion, reasoning, sources)
	if err != nil {
		return entity.StructuredAnswer{}, fmt.Errorf("extract answer: %w", err)
	}
	return answer, nil
}

// Scan returns the trimmed reasoning section and every labelled source URL in
// order of appearance, duplicates included. A failure while matching yields
// no reasoning and no sources.
func Scan(text string) (reasoning string, sources []string) {
	defer func() {
		if r := recover(); r != nil {
			reasoning, sources = "", []string{}
		}
	}()

	if m := findReasoning(text); m != nil {
		reasoning = strings.TrimSpace(m[1])
	}

	matches := findSources(text, -1)
	sources = make([]string, 0, len(matches))
	for _, m := range matches {
		sources = append(sources, m[1])
	}

	return reasoning, sources
}
