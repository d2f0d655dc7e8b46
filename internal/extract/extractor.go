// Package extract asks the model to spot profile updates in the latest user
// utterance and folds them into the editable profile. The step is best-effort
// by design: any failure is logged and the update is skipped.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"valet/internal/llm"
	"valet/internal/profile"
)

const promptTemplate = `Extract user information from this message:
"%s"

Current editable variables: %s

INSTRUCTIONS:
1. Analyze for mentions of the user wanting to change or add new details to %s.
2. Return ONLY a JSON object with fields to update, adding new values to lists. Do not include any explanations or additional text.
3. If no relevant information is found, return an empty JSON object {}.`

type Extractor struct {
	provider llm.Provider
	hint     string // human-readable list of the fields worth extracting
}

func NewExtractor(provider llm.Provider, hint string) *Extractor {
	return &Extractor{provider: provider, hint: hint}
}

// Update extracts profile changes from the utterance and applies them.
// Nothing the model returns is trusted beyond its shape: unknown fields are
// ignored and every value is deduplicated on append.
func (e *Extractor) Update(ctx context.Context, utterance string, prof *profile.Profile) {
	prompt := fmt.Sprintf(promptTemplate, utterance, prof.EditableJSON(), e.hint)

	resp, err := e.provider.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, nil)
	if err != nil {
		slog.Warn("variable extraction failed", "error", err)
		return
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		slog.Debug("variable extraction: no updates detected")
		return
	}

	var updates map[string]any
	if err := json.Unmarshal([]byte(content), &updates); err != nil {
		slog.Warn("variable extraction returned malformed JSON", "error", err, "response", content)
		return
	}

	for field, value := range updates {
		for _, v := range flatten(value) {
			if prof.Append(field, v) {
				slog.Debug("profile updated", "field", field, "value", v)
			}
		}
	}
}

// flatten renders a JSON value as one string per entry. Lists contribute one
// entry per item; non-zero scalars one; nulls and zero values none.
func flatten(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, flatten(item)...)
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case float64:
		if v == 0 {
			return nil
		}
		return []string{fmt.Sprintf("%v", v)}
	case bool:
		if !v {
			return nil
		}
		return []string{"true"}
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}
