package log_test

import (
	"context"
	"testing"

	"mccrew-ai/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "development console", cfg: log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{name: "production json", cfg: log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: "json"}},
		{name: "unknown level", cfg: log.ZapConfig{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger, got nil")
			}
			l.Infof(context.Background(), "hello %s", "crew")
		})
	}
}

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}
