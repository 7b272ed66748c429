package gateway

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Configured reports whether a completion provider is available.
	Configured() bool
	// Ask answers one crew question with a single completion call, or with a
	// fixed refusal when the topic guard rejects it.
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
}
