package router

import (
	"context"
	"sync"
	"time"

	"mccrew-ai/internal/crew"
	"mccrew-ai/internal/gateway"
	"mccrew-ai/internal/knowledge"
	"mccrew-ai/internal/session"
	"mccrew-ai/pkg/log"
)

// Router is the interface for topic routing
type Router interface {
	Handle(ctx context.Context, input Input) (Output, error)
	// RememberEmployee stores the employee id used when a message carries none.
	RememberEmployee(ctx context.Context, conversationID, employeeID string) error
	// Close stops every pending break timer.
	Close()
}

// Options configure gateway context and display.
type Options struct {
	StoreName string
	Persona   string
	// SendCatalogue forwards the knowledge base text as the gateway kb.
	SendCatalogue bool
	Location      *time.Location
}

// TopicRouter answers locally where it can and forwards the rest to the gateway.
type TopicRouter struct {
	l        log.Logger
	crew     crew.UseCase
	kb       *knowledge.Base
	gw       gateway.UseCase
	sessions session.Store
	notifier Notifier
	opts     Options

	now       func() time.Time
	afterFunc func(d time.Duration, f func()) *time.Timer

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// Ensure TopicRouter implements Router interface
var _ Router = (*TopicRouter)(nil)

// New creates a new TopicRouter. notifier may be nil.
func New(l log.Logger, crewUC crew.UseCase, kb *knowledge.Base, gw gateway.UseCase, sessions session.Store, notifier Notifier, opts Options) *TopicRouter {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if notifier == nil {
		notifier = logNotifier{l: l}
	}
	return &TopicRouter{
		l:         l,
		crew:      crewUC,
		kb:        kb,
		gw:        gw,
		sessions:  sessions,
		notifier:  notifier,
		opts:      opts,
		now:       time.Now,
		afterFunc: time.AfterFunc,
		timers:    make(map[string]*time.Timer),
	}
}

// logNotifier is used when no channel can push messages.
type logNotifier struct {
	l log.Logger
}

func (n logNotifier) Notify(ctx context.Context, conversationID, text string) error {
	n.l.Infof(ctx, "%s: %s: %s", LogPrefixBreak, conversationID, text)
	return nil
}
