// Package assistant implements the conversational core: per-turn variable
// extraction, a windowed conversation history, and the tool dispatch loop.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"valet/internal/extract"
	"valet/internal/llm"
	"valet/internal/profile"
	"valet/internal/trace"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// historyWindow caps how much history reaches the model. The full history is
// retained in memory for the process lifetime.
const historyWindow = 6

// fallbackReply is returned whenever a turn fails at any step. A turn never
// propagates an error to the caller.
const fallbackReply = "I'm experiencing technical difficulties. Please try again."

// PromptFunc builds the system prompt from the current profile and time.
type PromptFunc func(prof *profile.Profile, now time.Time) string

type Option func(*Assistant)

// WithNow overrides the time source used for the system prompt.
func WithNow(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

type Assistant struct {
	name      string
	provider  llm.Provider
	extractor *extract.Extractor
	registry  *Registry
	prof      *profile.Profile
	prompt    PromptFunc
	now       func() time.Time

	mu      sync.Mutex
	history []llm.Message
}

func New(name string, provider llm.Provider, extractor *extract.Extractor, registry *Registry, prof *profile.Profile, prompt PromptFunc, opts ...Option) *Assistant {
	a := &Assistant{
		name:      name,
		provider:  provider,
		extractor: extractor,
		registry:  registry,
		prof:      prof,
		prompt:    prompt,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Assistant) Name() string { return a.name }

// Profile exposes the assistant's profile, mainly for inspection.
func (a *Assistant) Profile() *profile.Profile { return a.prof }

// Chat processes one user utterance and returns the reply. Extraction errors
// are swallowed; model and tool failures collapse into a generic apology, so
// the return value is always a non-empty string.
func (a *Assistant) Chat(ctx context.Context, input string) string {
	truncated := input
	if r := []rune(truncated); len(r) > 200 {
		truncated = string(r[:200])
	}
	ctx, span := trace.Tracer().Start(ctx, "assistant.turn",
		oteltrace.WithAttributes(
			attribute.String("assistant.name", a.name),
			attribute.String("user.message", truncated),
		),
	)
	defer span.End()

	a.extractor.Update(ctx, input, a.prof)

	a.mu.Lock()
	defer a.mu.Unlock()

	a.history = append(a.history, llm.Message{Role: llm.RoleUser, Content: input})

	resp, err := a.provider.Chat(ctx, a.window(), a.registry.Defs())
	if err != nil {
		return a.fail(span, "model call failed", err)
	}

	if len(resp.ToolCalls) == 0 {
		a.history = append(a.history, llm.Message{Role: llm.RoleAssistant, Content: resp.Content})
		return resp.Content
	}

	a.history = append(a.history, llm.Message{
		Role:      llm.RoleAssistant,
		Content:   resp.Content,
		ToolCalls: resp.ToolCalls,
	})

	for _, call := range resp.ToolCalls {
		slog.Info("tool call", "assistant", a.name, "tool", call.Name, "arguments", call.Arguments)
		a.history = append(a.history, llm.Message{
			Role:       llm.RoleTool,
			Content:    a.execute(ctx, call),
			ToolCallID: call.ID,
		})
	}

	final, err := a.provider.Chat(ctx, a.window(), nil)
	if err != nil {
		return a.fail(span, "summary call failed", err)
	}

	a.history = append(a.history, llm.Message{Role: llm.RoleAssistant, Content: final.Content})
	return final.Content
}

// execute resolves a tool call against the registry and runs it. Failures
// become tool-result text so the summarizing model call can explain them.
func (a *Assistant) execute(ctx context.Context, call llm.ToolCall) string {
	t, ok := a.registry.Get(call.Name)
	if !ok {
		slog.Warn("unknown tool call", "assistant", a.name, "tool", call.Name)
		return fmt.Sprintf("Tool %s could not be executed.", call.Name)
	}

	result, err := withTrace(t).Execute(ctx, call.Arguments)
	if err != nil {
		slog.Warn("tool execution failed", "assistant", a.name, "tool", call.Name, "error", err)
		return fmt.Sprintf("Error executing tool %s: %v", call.Name, err)
	}
	return result
}

// window returns the system prompt plus the most recent history entries.
func (a *Assistant) window() []llm.Message {
	msgs := []llm.Message{{Role: llm.RoleSystem, Content: a.prompt(a.prof, a.now())}}
	h := a.history
	if len(h) > historyWindow {
		h = h[len(h)-historyWindow:]
	}
	return append(msgs, h...)
}

func (a *Assistant) fail(span oteltrace.Span, msg string, err error) string {
	slog.Error(msg, "assistant", a.name, "error", err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return fallbackReply
}
