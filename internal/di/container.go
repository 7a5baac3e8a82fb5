package di

import (
	"fmt"

	"gaia-pathfinder/internal/adapter/tool"
	"gaia-pathfinder/internal/application/port/input"
	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/application/service"
	"gaia-pathfinder/internal/infrastructure/checkpoint"
	"gaia-pathfinder/internal/infrastructure/config"
	"gaia-pathfinder/internal/infrastructure/evaluator/starlarkeval"
	"gaia-pathfinder/internal/infrastructure/llm"
	"gaia-pathfinder/internal/infrastructure/prompts"
	"gaia-pathfinder/internal/infrastructure/search/offline"
	"gaia-pathfinder/internal/infrastructure/search/tavily"
	"gaia-pathfinder/internal/usecase/agent"
)

type Container struct {
	Settings    config.Settings
	Logger      output.LoggerPort
	LLM         output.LLMPort
	Tools       output.ToolRegistry
	Checkpoints output.Checkpointer
	Agent       input.AgentRunner
}

// NewContainer wires the agent for settings. It fails only on configuration
// errors such as an unknown provider or a missing API key; no network call
// is made.
func NewContainer(settings config.Settings, log output.LoggerPort) (*Container, error) {
	client, err := llm.New(settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	tools := NewToolRegistry(settings, log)

	systemPrompt, err := prompts.GenerateSystemPrompt(prompts.SystemPromptTemplate, tools)
	if err != nil {
		return nil, fmt.Errorf("failed to render system prompt: %w", err)
	}

	checkpoints := checkpoint.NewMemoryCheckpointer()
	uc := agent.New(client, checkpoints, log, systemPrompt, settings.MaxAgentIterations)

	return &Container{
		Settings:    settings,
		Logger:      log,
		LLM:         client,
		Tools:       tools,
		Checkpoints: checkpoints,
		Agent:       uc,
	}, nil
}

// NewToolRegistry registers web_search and code_execution. Search goes to
// Tavily when a key is configured and to the offline backend otherwise.
func NewToolRegistry(settings config.Settings, log output.LoggerPort) *service.ToolRegistryImpl {
	var search output.SearchPort
	if settings.TavilyAPIKey != "" {
		search = tavily.NewTavilyAdapter(tavily.DefaultConfig(settings.TavilyAPIKey), log)
	} else {
		search = offline.NewOfflineAdapter(log)
	}

	evaluator := starlarkeval.NewEvaluator(starlarkeval.DefaultConfig())

	registry := service.NewToolRegistry()
	registry.Register(tool.NewWebSearchTool(search, log))
	registry.Register(tool.NewCodeExecutionTool(evaluator, log))
	return registry
}
