package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gaia-pathfinder/internal/application/port/input"
	"gaia-pathfinder/internal/di"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer one question and print the structured answer as JSON",
	RunE:  runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	question, err := readQuestion(args, os.Stdin)
	if err != nil {
		return err
	}

	settings := loadSettings()
	log, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer log.Close()

	container, err := di.NewContainer(settings, log)
	if err != nil {
		return err
	}

	return ask(cmd.Context(), container.Agent, question, cmd.OutOrStdout())
}

func ask(ctx context.Context, runner input.AgentRunner, question string, out io.Writer) error {
	sessionID := uuid.New().String()
	defer runner.Release(sessionID)

	state, err := runner.Invoke(ctx, sessionID, question)
	if err != nil {
		return fmt.Errorf("agent invocation failed: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(state.FinalAnswer())
}

// readQuestion joins args, or reads the first non-empty line of in when no
// args are given.
func readQuestion(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		if q := strings.TrimSpace(strings.Join(args, " ")); q != "" {
			return q, nil
		}
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if q := strings.TrimSpace(scanner.Text()); q != "" {
			return q, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read question: %w", err)
	}
	return "", errors.New("no question given")
}
