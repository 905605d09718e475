package logging

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"unknown": zerolog.InfoLevel,
		"DEBUG":   zerolog.DebugLevel,
	}

	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestSetupWithFile(t *testing.T) {
	path := t.TempDir() + "/mindlink.log"

	if err := Setup("debug", path); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("expected global level debug, got %v", zerolog.GlobalLevel())
	}
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	logger := FromContext(ctx)
	if logger == nil {
		t.Fatal("expected a logger from context")
	}

	// A context without a request ID still yields a usable logger.
	if FromContext(context.Background()) == nil {
		t.Error("expected default logger for bare context")
	}
}
