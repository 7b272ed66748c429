package topic

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		msg  string
		want Category
	}{
		{"write me html to make a navbar", CategoryCoding},
		{"can you debug my python script", CategoryCoding},
		{"Write some code for my rota", CategoryCoding},
		{"build a website for our store", CategoryCoding},
		{"hi", CategoryCasual},
		{"Thanks!", CategoryCasual},
		{"what's up", CategoryCasual},
		{"when is payday?", CategoryDomain},
		{"How long should fries hold?", CategoryDomain},
		{"what's in a Big Mac", CategoryDomain},
		{"who won the football last night", CategoryOffTopic},
		{"tell me a joke about cats", CategoryOffTopic},
		{"I still need help filing my taxes", CategoryOffTopic},
		{"what is the best bunny breed", CategoryOffTopic},
		{"recommend a chocolate cake recipe", CategoryOffTopic},
		{"Can you translate this sentence into Spanish?", CategoryOffTopic},
		{"open until midnight?", CategoryOffTopic},
		{"I clocked in late", CategoryDomain},
		{"are the buns toasted", CategoryDomain},
		{"swap shifts with Sam", CategoryDomain},
		{"McDonald's drive-thru rules", CategoryDomain},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			if got := Classify(tt.msg); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.msg, got, tt.want)
			}
		})
	}
}

func TestWordBoundaries(t *testing.T) {
	// "shipment" contains "hi" but not as a word; "capital" contains "api".
	if IsCasual("shipment arrived") {
		t.Error("expected no casual match inside a word")
	}
	if IsCoding("capital letters on the name badge") {
		t.Error("expected no coding match inside a word")
	}
}

func TestRefusal(t *testing.T) {
	if CategoryCoding.Refusal() != CodingRefusal {
		t.Error("coding category should map to coding refusal")
	}
	if CategoryOffTopic.Refusal() != OffTopicRefusal {
		t.Error("off-topic category should map to off-topic refusal")
	}
	if CategoryDomain.Refusal() != "" || !CategoryDomain.InScope() {
		t.Error("domain category should be in scope with no refusal")
	}
	if CategoryCoding.InScope() {
		t.Error("coding category must not be in scope")
	}
}
