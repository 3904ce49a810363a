// Package oracle implements the language-model oracles that turn free text
// into structured claim intents, partial claims, and read-only SQL.
package oracle

// Action is the classified intent of a user message.
type Action string

const (
	ActionCreate   Action = "create"
	ActionRetrieve Action = "retrieve"
	ActionUnknown  Action = "unknown"
)

// Intent holds the classified action plus any retrieval details the user
// mentioned. QueryDetails is empty unless Action is ActionRetrieve.
type Intent struct {
	Action       Action `json:"action"`
	QueryDetails string `json:"query_details,omitempty"`
}

// QueryResult is a tagged variant: either a validated read-only query
// (SQL, optionally Explanation) or a Rejection explaining why no query
// could be generated. Exactly one of SQL and Rejection is set.
type QueryResult struct {
	SQL         string `json:"sql,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Rejection   string `json:"rejection,omitempty"`
}

// Rejected reports whether the result carries a rejection instead of a query.
func (q QueryResult) Rejected() bool {
	return q.Rejection != ""
}
