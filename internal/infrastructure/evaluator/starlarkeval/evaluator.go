// Package starlarkeval runs short calculation snippets in a Starlark
// interpreter. Snippets see only the Starlark universe plus the math module;
// there is no file, network, or host access.
package starlarkeval

import (
	"context"
	"errors"
	"strings"
	"time"

	"gaia-pathfinder/internal/application/port/output"

	"go.starlark.net/lib/math"
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var _ output.EvaluatorPort = (*Evaluator)(nil)

const noOutputResult = "Execution Result: None"

func init() {
	// Allow top-level if/for/while and rebinding, as in a scratch script.
	resolve.AllowGlobalReassign = true
	resolve.AllowRecursion = true
}

type Config struct {
	MaxSteps uint64
	Timeout  time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxSteps: 1_000_000,
		Timeout:  5 * time.Second,
	}
}

type Evaluator struct {
	cfg Config
}

func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Evaluate runs code and reports what it produced. A bare expression yields
// "Execution Result: <value>" unless it only printed, in which case the
// printed text is returned. Statements yield their printed text, or
// "Execution Result: None" when they print nothing.
func (e *Evaluator) Evaluate(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", errors.New("no code provided")
	}

	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	var printed []string
	thread := &starlark.Thread{
		Name: "code_execution",
		Print: func(_ *starlark.Thread, msg string) {
			printed = append(printed, msg)
		},
	}
	if e.cfg.MaxSteps > 0 {
		thread.SetMaxExecutionSteps(e.cfg.MaxSteps)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	predeclared := starlark.StringDict{"math": math.Module}

	value, err := starlark.Eval(thread, "snippet.star", code, predeclared)
	if err == nil {
		if value == starlark.None && len(printed) > 0 {
			return strings.Join(printed, "\n"), nil
		}
		return "Execution Result: " + display(value), nil
	}

	var syntaxErr syntax.Error
	if !errors.As(err, &syntaxErr) {
		return "", evalError(err)
	}

	// Not an expression; run it as a file of statements.
	printed = printed[:0]
	if _, err := starlark.ExecFile(thread, "snippet.star", code, predeclared); err != nil {
		return "", evalError(err)
	}
	if len(printed) == 0 {
		return noOutputResult, nil
	}
	return strings.Join(printed, "\n"), nil
}

func display(v starlark.Value) string {
	if s, ok := starlark.AsString(v); ok {
		return s
	}
	return v.String()
}

func evalError(err error) error {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return errors.New(evalErr.Msg)
	}
	return err
}
