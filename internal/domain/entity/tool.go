package entity

type ToolName string

const (
	ToolWebSearch     ToolName = "web_search"
	ToolCodeExecution ToolName = "code_execution"
)

func (t ToolName) String() string {
	return string(t)
}

type ToolDefinition struct {
	Name        ToolName
	Description string
	Parameters  map[string]interface{}
}

type SearchResult struct {
	Title   string `json:"title,omitempty"`
	URL     string `json:"url"`
	Content string `json:"content"`
}
