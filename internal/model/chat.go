package model

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn sent to the completion provider. Never persisted.
type ChatMessage struct {
	Role    string
	Content string
}

// KnowledgeEntry is a static policy or how-to answer.
type KnowledgeEntry struct {
	Topic    string
	Keywords []string
	Answer   string
}
