package core

// Role identifies the author of a conversation message.
type Role string

const (
	// RoleUser marks a message sent by the end user.
	RoleUser Role = "user"
	// RoleAssistant marks a generated reply.
	RoleAssistant Role = "assistant"
	// RoleSystem marks instruction text injected ahead of the conversation.
	RoleSystem Role = "system"
)

// Message is a single immutable conversation entry. Within a session,
// messages are strictly ordered by Sequence with no gaps or duplicates.
type Message struct {
	Role     Role   `json:"role"`
	Content  string `json:"content"`
	Sequence int    `json:"sequence"`
}

// NewUserMessage creates an unsequenced user message. The store assigns the
// sequence number on append.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an unsequenced assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
