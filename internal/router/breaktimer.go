package router

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"mccrew-ai/internal/model"
)

func (r *TopicRouter) cmdBreak(ctx context.Context, sess *model.Session, employeeID string, args []string) string {
	if len(args) != 1 {
		return UsageBreak
	}
	minutes, err := strconv.Atoi(args[0])
	if err != nil || minutes < 1 || minutes > MaxBreakMinutes {
		return UsageBreak
	}
	if sess.ConversationID == "" {
		return ReplyNeedConversation
	}

	endsAt := r.now().Add(time.Duration(minutes) * time.Minute)
	sess.Break = &model.BreakState{Minutes: minutes, EndsAt: endsAt}
	r.saveSession(ctx, sess)
	r.startTimer(ctx, sess.ConversationID, time.Duration(minutes)*time.Minute)

	return fmt.Sprintf(ReplyBreakStarted, minutes, endsAt.In(r.opts.Location).Format("15:04"))
}

func (r *TopicRouter) cmdCancelBreak(ctx context.Context, sess *model.Session, employeeID string, args []string) string {
	stopped := r.stopTimer(sess.ConversationID)
	if sess.Break == nil && !stopped {
		return ReplyNoBreak
	}
	sess.Break = nil
	r.saveSession(ctx, sess)
	return ReplyBreakCancelled
}

// startTimer replaces any running timer for the conversation.
func (r *TopicRouter) startTimer(ctx context.Context, conversationID string, d time.Duration) {
	bg := context.WithoutCancel(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.timers[conversationID]; ok {
		t.Stop()
	}

	var timer *time.Timer
	timer = r.afterFunc(d, func() {
		r.mu.Lock()
		current, ok := r.timers[conversationID]
		if !ok || current != timer {
			r.mu.Unlock()
			return
		}
		delete(r.timers, conversationID)
		r.mu.Unlock()

		r.breakOver(bg, conversationID)
	})
	r.timers[conversationID] = timer
}

// stopTimer reports whether a timer was running.
func (r *TopicRouter) stopTimer(conversationID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.timers[conversationID]
	if !ok {
		return false
	}
	t.Stop()
	delete(r.timers, conversationID)
	return true
}

func (r *TopicRouter) breakOver(ctx context.Context, conversationID string) {
	sess := r.loadSession(ctx, conversationID)
	if sess.Break != nil {
		sess.Break = nil
		r.saveSession(ctx, &sess)
	}

	if err := r.notifier.Notify(ctx, conversationID, NotifyBreakOver); err != nil {
		r.l.Warnf(ctx, "%s: notify %s: %v", LogPrefixBreak, conversationID, err)
	}
}

// Close stops every pending break timer.
func (r *TopicRouter) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.timers {
		t.Stop()
		delete(r.timers, id)
	}
}
