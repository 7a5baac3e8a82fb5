package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/di"
	"gaia-pathfinder/internal/domain/entity"

	"github.com/spf13/cobra"
)

var toolCmd = &cobra.Command{
	Use:   "tool",
	Short: "Run one agent tool directly",
}

var toolSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run web_search",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToolCommand(cmd, entity.ToolWebSearch, map[string]string{"query": strings.Join(args, " ")})
	},
}

var toolEvalCmd = &cobra.Command{
	Use:   "eval <code>",
	Short: "Run code_execution",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToolCommand(cmd, entity.ToolCodeExecution, map[string]string{"code": strings.Join(args, " ")})
	},
}

func init() {
	toolCmd.AddCommand(toolSearchCmd, toolEvalCmd)
}

func runToolCommand(cmd *cobra.Command, name entity.ToolName, arguments map[string]string) error {
	settings := loadSettings()
	log, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer log.Close()

	return runTool(cmd.Context(), di.NewToolRegistry(settings, log), name, arguments, cmd.OutOrStdout())
}

func runTool(ctx context.Context, registry output.ToolRegistry, name entity.ToolName, arguments map[string]string, out io.Writer) error {
	t, ok := registry.Get(name)
	if !ok {
		return fmt.Errorf("tool %q is not registered", name)
	}

	data, err := json.Marshal(arguments)
	if err != nil {
		return err
	}

	result, err := t.Execute(ctx, string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	_, err = fmt.Fprintln(out, result)
	return err
}
