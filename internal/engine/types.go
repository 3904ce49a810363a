// Package engine orchestrates one conversational turn: it routes a user
// message through classification, extraction, query generation, execution,
// synthesis, and submission, and always produces exactly one final response.
package engine

import (
	"context"

	"github.com/ziadkadry99/claimpilot/internal/claims"
	"github.com/ziadkadry99/claimpilot/internal/oracle"
)

// Classifier determines the intent of a user message.
type Classifier interface {
	Classify(ctx context.Context, text string) (oracle.Intent, error)
}

// Extractor pulls explicitly mentioned claim details out of a message.
type Extractor interface {
	Extract(ctx context.Context, text string) (claims.Partial, error)
}

// QueryGenerator turns retrieval details into a query or a rejection.
type QueryGenerator interface {
	Generate(ctx context.Context, details string) (oracle.QueryResult, error)
}

// Executor runs a validated read-only query and returns its rows in order.
type Executor interface {
	Run(ctx context.Context, query string) ([]claims.Row, error)
}

// Submitter persists a complete claim and returns the stored record.
type Submitter interface {
	Submit(ctx context.Context, draft claims.Draft) (*claims.Claim, error)
}

// Synthesizer completes a partial claim, returning the draft plus notes
// about any substitutions it made.
type Synthesizer interface {
	Synthesize(p claims.Partial) (claims.Draft, []string)
}

// TurnState is the working memory for a single turn. It is created fresh per
// turn and threaded through each stage; every field is written by exactly one
// stage. Either the create-path fields or the retrieve-path fields are
// populated, never both.
type TurnState struct {
	// Input is the raw user message for this turn.
	Input string `json:"input"`

	// Intent is set by the classification stage. Never nil after a turn:
	// classification failure is recovered as ActionUnknown so routing stays
	// well-defined.
	Intent *oracle.Intent `json:"intent,omitempty"`

	// Create path.
	Partial   *claims.Partial `json:"partial,omitempty"`
	Draft     *claims.Draft   `json:"draft,omitempty"`
	Submitted *claims.Claim   `json:"submitted,omitempty"`
	SubmitErr string          `json:"submit_error,omitempty"`

	// Retrieve path. Rows is nil when the query never executed and empty
	// (non-nil) when it executed with no matches.
	Query    *oracle.QueryResult `json:"query,omitempty"`
	Rows     []claims.Row        `json:"rows,omitempty"`
	QueryErr string              `json:"query_error,omitempty"`

	// FinalResponse is set exactly once before the turn ends, on every path.
	FinalResponse string `json:"final_response"`

	// Steps is an informational log of the stages this turn went through.
	Steps []string `json:"steps,omitempty"`
}

func (st *TurnState) step(s string) {
	st.Steps = append(st.Steps, s)
}
