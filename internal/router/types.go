package router

import "context"

// Source says which path produced a reply.
type Source string

const (
	SourceFlow       Source = "flow"
	SourceCommand    Source = "command"
	SourceKnowledge  Source = "knowledge"
	SourceRefusal    Source = "refusal"
	SourceOutOfScope Source = "out_of_scope"
	SourceGateway    Source = "gateway"
	SourceError      Source = "error"
)

// Input is one incoming chat message.
type Input struct {
	ConversationID string
	Message        string
	// EmployeeID is the caller's stored id. Commands may override it with an argument.
	EmployeeID string
}

// Output is the reply to show. Action is set when the gateway asked for a command.
type Output struct {
	Reply  string
	Source Source
	Action string
}

// Notifier pushes out-of-band messages such as "break over" into a conversation.
type Notifier interface {
	Notify(ctx context.Context, conversationID, text string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, conversationID, text string) error

func (f NotifierFunc) Notify(ctx context.Context, conversationID, text string) error {
	return f(ctx, conversationID, text)
}
