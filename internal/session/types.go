// Package session keeps the ordered message transcript for each chat
// session. The orchestration engine is stateless across turns; conversational
// continuity lives here.
package session

import "time"

// Session identifies one conversation. Turns within a session are expected
// to be processed one at a time by the caller.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is one entry in a session transcript. Steps carries the engine's
// intermediate step log for assistant messages; it is informational only.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // "user", "assistant", or "system"
	Content   string    `json:"content"`
	Steps     []string  `json:"steps,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
