package entity

import "time"

// Role is a conversation role in the enrichment transcript.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one turn of the enrichment conversation.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// EnrichmentSession is the state of an in-flight enrichment conversation.
// It is owned by the session store and mutated only through the orchestrator.
// The transcript is append-only; its order is the only ordering guarantee.
type EnrichmentSession struct {
	Content        ProposalContent
	MissingOrWeak  []MissingOrWeakItem
	Transcript     []ChatMessage
	Client         *Client
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
