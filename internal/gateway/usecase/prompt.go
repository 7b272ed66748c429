package usecase

import (
	"encoding/json"
	"strings"

	"mccrew-ai/pkg/llmprovider"
)

// buildMessages assembles system prompt, few-shots and the question.
func (uc *implUseCase) buildMessages(question, persona, kb string, ctx map[string]any) []llmprovider.Message {
	msgs := make([]llmprovider.Message, 0, len(fewShots)+2)
	msgs = append(msgs, llmprovider.Message{
		Role:    llmprovider.RoleSystem,
		Content: uc.systemPrompt(persona, kb, ctx),
	})

	nextPayday := nextPaydayFrom(ctx)
	for _, s := range fewShots {
		msgs = append(msgs, llmprovider.Message{
			Role:    s.role,
			Content: strings.Replace(s.content, nextPaydayToken, nextPayday, 1),
		})
	}

	return append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Content: question})
}

func (uc *implUseCase) systemPrompt(persona, kb string, ctx map[string]any) string {
	if kb == "" {
		kb = noKnowledge
	}
	lines := []string{
		persona,
		"",
		headerContext,
		renderContext(ctx),
		"",
		headerKnowledge,
		kb,
		"",
		refuseUnrelated,
		refuseCoding,
	}
	if uc.opts.ActionHint {
		lines = append(lines, actionHint)
	}
	return strings.Join(lines, "\n")
}

func renderContext(ctx map[string]any) string {
	if ctx == nil {
		ctx = map[string]any{}
	}
	b, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// nextPaydayFrom reads context.payConfig.nextPayday.
func nextPaydayFrom(ctx map[string]any) string {
	pay, ok := ctx["payConfig"].(map[string]any)
	if !ok {
		return nextPaydayFallback
	}
	if next, ok := pay["nextPayday"].(string); ok && next != "" {
		return next
	}
	return nextPaydayFallback
}
