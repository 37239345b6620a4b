package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", "iso20022")
	log.Info().Msg("hidden")
	log.Warn().Str("file", "a.xml").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info must be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "file=a.xml") || !strings.Contains(out, "app=iso20022") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "chatty", "iso20022")
	if log.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("level: %v", log.GetLevel())
	}
	if !strings.Contains(buf.String(), "unknown log level") {
		t.Fatalf("expected a warning: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":       zerolog.InfoLevel,
		"DEBUG":  zerolog.DebugLevel,
		" warn ": zerolog.WarnLevel,
		"error":  zerolog.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
