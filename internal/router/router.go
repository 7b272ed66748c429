package router

import (
	"context"
	"errors"
	"strings"

	"mccrew-ai/internal/gateway"
	"mccrew-ai/internal/model"
	"mccrew-ai/internal/session"
	"mccrew-ai/internal/topic"
)

// Handle classifies one message and answers it. Order: active quiz, slash
// command, scope refusals, knowledge match, shift/pay intents, gateway.
func (r *TopicRouter) Handle(ctx context.Context, input Input) (Output, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return Output{}, ErrEmptyMessage
	}

	sess := r.loadSession(ctx, input.ConversationID)
	employeeID := strings.TrimSpace(input.EmployeeID)
	if employeeID == "" {
		employeeID = sess.EmployeeID
	}

	isCommand := strings.HasPrefix(msg, "/")

	if sess.Quiz != nil && !isCommand {
		return Output{Reply: r.answerQuiz(ctx, &sess, msg), Source: SourceFlow}, nil
	}

	if isCommand {
		return Output{Reply: r.dispatch(ctx, &sess, employeeID, msg), Source: SourceCommand}, nil
	}

	cat := topic.Classify(msg)
	switch cat {
	case topic.CategoryCoding:
		return Output{Reply: cat.Refusal(), Source: SourceRefusal}, nil
	case topic.CategoryOffTopic:
		return Output{Reply: cat.Refusal(), Source: SourceOutOfScope}, nil
	}

	if entry, ok := r.kb.Match(msg); ok {
		return Output{Reply: formatKnowledge(entry), Source: SourceKnowledge}, nil
	}

	if line, ok := matchIntent(msg); ok {
		return Output{Reply: r.dispatch(ctx, &sess, employeeID, line), Source: SourceCommand}, nil
	}

	return r.askGateway(ctx, &sess, employeeID, msg), nil
}

// askGateway forwards the question and re-dispatches a returned action once.
func (r *TopicRouter) askGateway(ctx context.Context, sess *model.Session, employeeID, msg string) Output {
	in := gateway.AskInput{
		Question: msg,
		Persona:  r.opts.Persona,
		Context:  gateway.NewContext(r.opts.StoreName, employeeID, r.payConfig(ctx)),
	}
	if r.opts.SendCatalogue {
		in.Knowledge = r.kb.Text()
	}

	out, err := r.gw.Ask(ctx, in)
	if err != nil {
		r.l.Warnf(ctx, "%s: gateway: %v", LogPrefixHandle, err)
		return Output{Reply: ReplyGatewayFailure, Source: SourceError}
	}
	if out.Refused {
		return Output{Reply: out.Reply.Text, Source: SourceRefusal}
	}

	result := Output{Reply: out.Reply.Text, Source: SourceGateway}
	if !out.Reply.HasAction() {
		return result
	}

	action := normalizeAction(out.Reply.Action)
	result.Action = action
	if !isActionCommand(action) {
		r.l.Infof(ctx, "%s: ignoring action %q", LogPrefixHandle, action)
		return result
	}

	if cmdReply := r.dispatch(ctx, sess, employeeID, action); cmdReply != "" {
		result.Reply = joinReplies(result.Reply, cmdReply)
	}
	return result
}

// payConfig is best effort: the gateway still runs without it.
func (r *TopicRouter) payConfig(ctx context.Context) *model.PayConfig {
	cfg, err := r.crew.GetPayConfig(ctx)
	if err != nil {
		r.l.Warnf(ctx, "%s: pay config: %v", LogPrefixHandle, err)
		return nil
	}
	return &cfg
}

// loadSession returns the stored session, or a fresh one for new conversations.
func (r *TopicRouter) loadSession(ctx context.Context, conversationID string) model.Session {
	if conversationID == "" {
		return model.Session{}
	}
	sess, err := r.sessions.Get(ctx, conversationID)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			r.l.Warnf(ctx, "%s: load session: %v", LogPrefixHandle, err)
		}
		return model.Session{ConversationID: conversationID}
	}
	return sess
}

func (r *TopicRouter) saveSession(ctx context.Context, sess *model.Session) {
	if sess.ConversationID == "" {
		return
	}
	sess.UpdatedAt = r.now()
	if err := r.sessions.Save(ctx, *sess); err != nil {
		r.l.Warnf(ctx, "%s: save session: %v", LogPrefixHandle, err)
	}
}

// RememberEmployee stores the employee id for channels that cannot send it per message.
func (r *TopicRouter) RememberEmployee(ctx context.Context, conversationID, employeeID string) error {
	if conversationID == "" {
		return session.ErrMissingID
	}
	sess := r.loadSession(ctx, conversationID)
	sess.EmployeeID = strings.TrimSpace(employeeID)
	sess.UpdatedAt = r.now()
	return r.sessions.Save(ctx, sess)
}

func joinReplies(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}
