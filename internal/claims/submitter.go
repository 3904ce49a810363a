package claims

import "context"

// StoreSubmitter submits claims directly to a local store, without going
// through the HTTP API. Used by the CLI chat loop and the MCP server.
type StoreSubmitter struct {
	store *Store
}

// NewStoreSubmitter creates a submitter over the given store.
func NewStoreSubmitter(store *Store) *StoreSubmitter {
	return &StoreSubmitter{store: store}
}

// Submit persists the draft and returns the stored claim.
func (s *StoreSubmitter) Submit(ctx context.Context, draft Draft) (*Claim, error) {
	return s.store.Insert(ctx, draft)
}
