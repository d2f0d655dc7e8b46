package llm

import "context"

// Message roles. Tool results travel as RoleTool messages carrying the
// ToolCallID they answer.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

type Message struct {
	Role       string
	Content    string
	ToolCalls  []ToolCall // set on assistant messages that requested tools
	ToolCallID string     // set on tool-result messages
}

// ToolCall is a model-emitted request to invoke a named tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // raw JSON object
}

// ToolDef declares a callable tool to the model.
type ToolDef struct {
	Name        string
	Description string
	Parameters  map[string]any // JSON schema
}

type Response struct {
	Content   string
	ToolCalls []ToolCall
	Model     string
}

type Provider interface {
	Chat(ctx context.Context, messages []Message, tools []ToolDef) (*Response, error)
}
