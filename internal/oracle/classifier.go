package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ziadkadry99/claimpilot/internal/llm"
)

// Classifier determines the user's intent for a single message.
type Classifier struct {
	provider llm.Provider
	model    string
}

// NewClassifier creates a Classifier over the given provider.
func NewClassifier(provider llm.Provider, model string) *Classifier {
	return &Classifier{provider: provider, model: model}
}

// Classify returns the intent of the message. Malformed model output is
// returned as an error; the caller decides the fallback.
func (c *Classifier) Classify(ctx context.Context, text string) (Intent, error) {
	resp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		Model: c.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: classifierSystemPrompt},
			{Role: llm.RoleUser, Content: text},
		},
		MaxTokens:   256,
		Temperature: 0,
		JSONMode:    true,
	})
	if err != nil {
		return Intent{}, fmt.Errorf("intent completion: %w", err)
	}

	var intent Intent
	if err := json.Unmarshal([]byte(extractJSON(resp.Content)), &intent); err != nil {
		return Intent{}, fmt.Errorf("parsing intent response: %w", err)
	}

	switch intent.Action {
	case ActionCreate, ActionRetrieve, ActionUnknown:
	default:
		return Intent{}, fmt.Errorf("unrecognized intent action %q", intent.Action)
	}

	// query_details only makes sense for retrieval.
	if intent.Action != ActionRetrieve {
		intent.QueryDetails = ""
	}
	intent.QueryDetails = strings.TrimSpace(intent.QueryDetails)

	return intent, nil
}

// extractJSON trims any prose or markdown fences around a JSON object in the
// model output.
func extractJSON(content string) string {
	jsonStr := content
	if idx := strings.Index(content, "{"); idx >= 0 {
		jsonStr = content[idx:]
	}
	if idx := strings.LastIndex(jsonStr, "}"); idx >= 0 {
		jsonStr = jsonStr[:idx+1]
	}
	return jsonStr
}
