package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ziadkadry99/claimpilot/internal/claims"
	"github.com/ziadkadry99/claimpilot/internal/llm"
)

// QueryGen turns free-text retrieval details into a validated read-only
// SQL query, or a rejection when no safe query can be produced.
type QueryGen struct {
	provider llm.Provider
	model    string
}

// NewQueryGen creates a QueryGen over the given provider.
func NewQueryGen(provider llm.Provider, model string) *QueryGen {
	return &QueryGen{provider: provider, model: model}
}

// Generate produces a QueryResult for the given retrieval details. Model
// output that fails the read-only validation becomes a rejection, never a
// query: a rejection is data, an error means the oracle itself failed.
func (g *QueryGen) Generate(ctx context.Context, details string) (QueryResult, error) {
	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model: g.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: queryGenSystemPrompt},
			{Role: llm.RoleUser, Content: details},
		},
		MaxTokens:   512,
		Temperature: 0,
		JSONMode:    true,
	})
	if err != nil {
		return QueryResult{}, fmt.Errorf("query completion: %w", err)
	}

	var raw struct {
		SQL          string `json:"sql"`
		Explanation  string `json:"explanation"`
		ErrorMessage string `json:"error_message"`
	}
	if err := json.Unmarshal([]byte(extractJSON(resp.Content)), &raw); err != nil {
		return QueryResult{}, fmt.Errorf("parsing query response: %w", err)
	}

	if raw.ErrorMessage != "" {
		return QueryResult{Rejection: raw.ErrorMessage}, nil
	}

	sql := strings.TrimSpace(raw.SQL)
	if sql == "" {
		return QueryResult{}, fmt.Errorf("query response contained neither sql nor error_message")
	}

	if err := claims.ValidateReadOnly(sql); err != nil {
		return QueryResult{Rejection: fmt.Sprintf("The generated query was rejected: %v.", err)}, nil
	}

	return QueryResult{SQL: sql, Explanation: strings.TrimSpace(raw.Explanation)}, nil
}
