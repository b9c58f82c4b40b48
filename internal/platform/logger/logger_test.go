package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"DEBUG":    zerolog.DebugLevel,
		" info ":   zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"":         zerolog.InfoLevel,
		"nonsense": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromEnv_OverlaysDefaults(t *testing.T) {
	opt := FromEnv(Options{Service: "datesieve", Level: "warn"})
	if opt.Service != "datesieve" || opt.Level != "warn" || opt.Format != "console" {
		t.Fatalf("defaults lost: %+v", opt)
	}

	t.Setenv("DATESIEVE_LOG_LEVEL", "DEBUG")
	t.Setenv("DATESIEVE_LOG_FORMAT", "json")
	t.Setenv("DATESIEVE_LOG_SERVICE", "datesieve-api")
	t.Setenv("DATESIEVE_LOG_CALLER", "true")
	opt = FromEnv(Options{Service: "datesieve", Level: "warn"})
	if opt.Level != "debug" || opt.Format != "json" || opt.Service != "datesieve-api" || !opt.WithCaller {
		t.Fatalf("env not applied: %+v", opt)
	}
}

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "info", Format: "json", Service: "datesieve", Component: "engine", Writer: &buf})
	l.Debug().Msg("hidden")
	l.Info().Str("format", "RFC_1123").Msg("matched")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d: %q", len(lines), buf.String())
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatal(err)
	}
	if m["service"] != "datesieve" || m["component"] != "engine" || m["format"] != "RFC_1123" || m["message"] != "matched" {
		t.Fatalf("fields = %v", m)
	}
}

func TestInit_C_Named(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Service: "svc-a", Writer: &buf})

	ctx := WithRequest(context.Background(), "req-123", "10.1.2.3")
	C(ctx).Info().Msg("ctx-msg")
	Named("api").Info().Msg("named-msg")
	C(WithRequest(context.Background(), "", "")).Info().Msg("bare")

	out := buf.String()
	for _, want := range []string{
		`"request_id":"req-123"`, `"client_ip":"10.1.2.3"`, `"message":"ctx-msg"`,
		`"component":"api"`, `"message":"named-msg"`, `"service":"svc-a"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in %q", want, out)
		}
	}
	last := out[strings.LastIndex(strings.TrimSpace(out), "\n")+1:]
	if strings.Contains(last, "request_id") {
		t.Fatalf("empty request values leaked: %q", last)
	}
	if Get() == nil || Named("") != Get() {
		t.Fatal("Named(\"\") should return the root")
	}
}
