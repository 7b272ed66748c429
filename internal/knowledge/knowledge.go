package knowledge

import (
	"strings"

	"mccrew-ai/internal/model"
)

// Search weights: a topic hit beats a keyword hit beats an answer-body hit.
const (
	weightTopic   = 3
	weightKeyword = 2
	weightAnswer  = 1
)

// Base is a read-only keyword-scored knowledge base.
type Base struct {
	entries []model.KnowledgeEntry
}

// New returns a Base over the built-in handbook.
func New() *Base {
	return NewWithEntries(entries)
}

// NewWithEntries returns a Base over the given entries.
func NewWithEntries(es []model.KnowledgeEntry) *Base {
	cp := make([]model.KnowledgeEntry, len(es))
	copy(cp, es)
	return &Base{entries: cp}
}

// Entries returns a copy of the catalogue in display order.
func (b *Base) Entries() []model.KnowledgeEntry {
	out := make([]model.KnowledgeEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Topics lists entry topics in display order.
func (b *Base) Topics() []string {
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.Topic
	}
	return out
}

// Search scores each entry by whether term appears in its topic, any keyword,
// or its answer, and returns the best entry with a positive score. Ties keep
// catalogue order.
func (b *Base) Search(term string) (model.KnowledgeEntry, bool) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return model.KnowledgeEntry{}, false
	}

	best, bestScore := -1, 0
	for i, e := range b.entries {
		score := 0
		if strings.Contains(strings.ToLower(e.Topic), term) {
			score += weightTopic
		}
		for _, kw := range e.Keywords {
			if strings.Contains(strings.ToLower(kw), term) {
				score += weightKeyword
				break
			}
		}
		if strings.Contains(strings.ToLower(e.Answer), term) {
			score += weightAnswer
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 {
		return model.KnowledgeEntry{}, false
	}
	return b.entries[best], true
}

// Match finds the entry whose keywords best cover a free-text message. Each
// contained keyword adds to the score and a fully quoted topic adds more.
func (b *Base) Match(message string) (model.KnowledgeEntry, bool) {
	text := strings.ToLower(message)
	if strings.TrimSpace(text) == "" {
		return model.KnowledgeEntry{}, false
	}

	best, bestScore := -1, 0
	for i, e := range b.entries {
		score := 0
		for _, kw := range e.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				score += weightKeyword
			}
		}
		if strings.Contains(text, strings.ToLower(e.Topic)) {
			score += weightTopic
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 {
		return model.KnowledgeEntry{}, false
	}
	return b.entries[best], true
}

// Text renders the catalogue as prompt knowledge.
func (b *Base) Text() string {
	var sb strings.Builder
	for i, e := range b.entries {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(e.Topic)
		sb.WriteString(":\n")
		sb.WriteString(e.Answer)
	}
	return sb.String()
}
