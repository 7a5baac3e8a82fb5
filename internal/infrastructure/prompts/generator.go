package prompts

import (
	"bytes"
	"text/template"

	"gaia-pathfinder/internal/application/port/output"
)

type ToolInfo struct {
	Name        string
	Description string
}

type SystemPromptData struct {
	Tools []ToolInfo
}

// GenerateSystemPrompt renders baseTemplate with the registry's tools in name
// order.
func GenerateSystemPrompt(baseTemplate string, toolRegistry output.ToolRegistry) (string, error) {
	definitions := toolRegistry.Definitions()
	toolInfos := make([]ToolInfo, 0, len(definitions))

	for _, def := range definitions {
		toolInfos = append(toolInfos, ToolInfo{
			Name:        def.Name.String(),
			Description: def.Description,
		})
	}

	data := SystemPromptData{
		Tools: toolInfos,
	}

	tmpl, err := template.New("system").Option("missingkey=error").Parse(baseTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
