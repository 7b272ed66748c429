package knowledge_test

import (
	"strings"
	"testing"

	"mccrew-ai/internal/knowledge"
	"mccrew-ai/internal/model"
)

func TestSearch(t *testing.T) {
	kb := knowledge.New()

	tests := []struct {
		name      string
		term      string
		wantTopic string
		wantOK    bool
	}{
		{name: "uniform", term: "uniform", wantTopic: "Uniform Policy", wantOK: true},
		{name: "case insensitive", term: "UNIFORM", wantTopic: "Uniform Policy", wantOK: true},
		{name: "keyword only", term: "msds", wantTopic: "Cleaning Chemicals", wantOK: true},
		{name: "topic beats answer", term: "breaks", wantTopic: "Breaks", wantOK: true},
		{name: "big mac", term: "big mac", wantTopic: "Sandwich Build — Big Mac", wantOK: true},
		{name: "answer body only", term: "baskets", wantTopic: "Fry Station — Setup", wantOK: true},
		{name: "no match", term: "zzzqqq", wantOK: false},
		{name: "empty", term: "  ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := kb.Search(tt.term)
			if ok != tt.wantOK {
				t.Fatalf("Search(%q) ok = %v, want %v", tt.term, ok, tt.wantOK)
			}
			if ok && got.Topic != tt.wantTopic {
				t.Errorf("Search(%q) = %q, want %q", tt.term, got.Topic, tt.wantTopic)
			}
		})
	}
}

func TestSearch_TieKeepsCatalogueOrder(t *testing.T) {
	kb := knowledge.NewWithEntries([]model.KnowledgeEntry{
		{Topic: "First", Keywords: []string{"shared"}},
		{Topic: "Second", Keywords: []string{"shared"}},
	})

	got, ok := kb.Search("shared")
	if !ok || got.Topic != "First" {
		t.Errorf("expected first entry on tie, got %q", got.Topic)
	}
}

func TestMatch(t *testing.T) {
	kb := knowledge.New()

	got, ok := kb.Match("What is the uniform policy?")
	if !ok || got.Topic != "Uniform Policy" {
		t.Errorf("expected Uniform Policy, got %q (ok=%v)", got.Topic, ok)
	}

	got, ok = kb.Match("how do I set up the fry station")
	if !ok || got.Topic != "Fry Station — Setup" {
		t.Errorf("expected fry station entry, got %q (ok=%v)", got.Topic, ok)
	}

	if _, ok := kb.Match("when is payday"); ok {
		t.Error("expected no knowledge match for payday question")
	}
}

func TestText(t *testing.T) {
	text := knowledge.New().Text()
	for _, topic := range knowledge.New().Topics() {
		if !strings.Contains(text, topic) {
			t.Errorf("rendered knowledge missing topic %q", topic)
		}
	}
}
