package llmprovider

import (
	"context"
	"errors"
	"testing"

	"mccrew-ai/pkg/gemini"
)

type fakeGemini struct {
	got  *gemini.Request
	resp *gemini.Response
	err  error
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	return f.resp, f.err
}

func (f *fakeGemini) Model() string { return "gemini-test" }

func TestGeminiAdapter_MapsRoles(t *testing.T) {
	fake := &fakeGemini{resp: &gemini.Response{Text: "ok", Usage: gemini.Usage{TotalTokens: 3}}}
	a := NewGeminiAdapter(fake)

	resp, err := a.GenerateContent(context.Background(), &Request{
		Messages: []Message{
			{Role: RoleSystem, Content: "persona"},
			{Role: RoleUser, Content: "q1"},
			{Role: RoleAssistant, Content: "a1"},
			{Role: RoleUser, Content: "q2"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" || resp.ProviderName != "gemini" || resp.ModelName != "gemini-test" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if fake.got.SystemInstruction != "persona" {
		t.Errorf("SystemInstruction = %q", fake.got.SystemInstruction)
	}
	if len(fake.got.Messages) != 3 || fake.got.Messages[1].Role != gemini.RoleModel {
		t.Errorf("unexpected messages: %+v", fake.got.Messages)
	}
}

func TestGeminiAdapter_UpstreamError(t *testing.T) {
	a := NewGeminiAdapter(&fakeGemini{err: &gemini.APIError{StatusCode: 400, Body: "bad key"}})

	_, err := a.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Content: "q"}}})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) || upstream.Status != 400 || upstream.Detail != "bad key" {
		t.Fatalf("expected upstream 400, got %v", err)
	}
}
