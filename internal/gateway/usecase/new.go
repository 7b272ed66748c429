package usecase

import (
	"context"

	"mccrew-ai/internal/gateway"
	"mccrew-ai/pkg/llmprovider"
	"mccrew-ai/pkg/log"
)

// Generator is the completion backend. *llmprovider.Manager satisfies it.
type Generator interface {
	Configured() bool
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options tune prompt assembly. Zero values fall back to the defaults.
type Options struct {
	Persona     string
	Knowledge   string
	Temperature float64
	MaxTokens   int
	TopicGuard  bool
	// ActionHint asks the model to append a JSON action marker when useful.
	ActionHint bool
}

type implUseCase struct {
	l    log.Logger
	llm  Generator
	opts Options
}

var _ gateway.UseCase = (*implUseCase)(nil)

// New creates a new gateway use case.
func New(l log.Logger, llm Generator, opts Options) *implUseCase {
	if opts.Persona == "" {
		opts.Persona = DefaultPersona
	}
	if opts.Knowledge == "" {
		opts.Knowledge = DefaultKnowledge
	}
	if opts.Temperature <= 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &implUseCase{
		l:    l,
		llm:  llm,
		opts: opts,
	}
}
