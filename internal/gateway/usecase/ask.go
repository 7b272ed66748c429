package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mccrew-ai/internal/gateway"
	"mccrew-ai/internal/topic"
	"mccrew-ai/pkg/llmprovider"
)

// Configured reports whether the provider has credentials.
func (uc *implUseCase) Configured() bool {
	return uc.llm != nil && uc.llm.Configured()
}

// Ask answers one question. Order: credentials, question, topic guard, provider call.
func (uc *implUseCase) Ask(ctx context.Context, input gateway.AskInput) (gateway.AskOutput, error) {
	if !uc.Configured() {
		uc.l.Errorf(ctx, "gateway.usecase.Ask: %v", gateway.ErrNotConfigured)
		return gateway.AskOutput{}, gateway.ErrNotConfigured
	}

	question := strings.TrimSpace(input.Question)
	if question == "" {
		return gateway.AskOutput{}, gateway.ErrMissingQuestion
	}

	if uc.opts.TopicGuard {
		if cat := topic.Classify(question); !cat.InScope() {
			uc.l.Infof(ctx, "gateway.usecase.Ask: refused as %s", cat)
			return gateway.AskOutput{
				Reply:   gateway.Reply{Text: cat.Refusal()},
				Refused: true,
			}, nil
		}
	}

	persona := strings.TrimSpace(input.Persona)
	if persona == "" {
		persona = uc.opts.Persona
	}
	kb := strings.TrimSpace(input.Knowledge)
	if kb == "" {
		kb = strings.TrimSpace(uc.opts.Knowledge)
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    uc.buildMessages(question, persona, kb, input.Context),
		Temperature: uc.opts.Temperature,
		MaxTokens:   uc.opts.MaxTokens,
	})
	if err != nil {
		if errors.Is(err, llmprovider.ErrNotConfigured) {
			return gateway.AskOutput{}, gateway.ErrNotConfigured
		}
		uc.l.Errorf(ctx, "gateway.usecase.Ask.GenerateContent: %v", err)
		return gateway.AskOutput{}, fmt.Errorf("generate answer: %w", err)
	}

	answer := strings.TrimSpace(resp.Text)
	if answer == "" {
		answer = FallbackAnswer
	}

	out := gateway.AskOutput{Reply: gateway.ParseReply(answer)}
	if out.Reply.Text == "" {
		out.Reply.Text = FallbackAnswer
	}
	if input.Debug {
		out.Raw = resp.Raw
	}
	return out, nil
}
