package tracing

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// useRecorder installs an in-memory provider for the test and restores the
// previous global provider afterwards.
func useRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	prev := otel.GetTracerProvider()
	rec := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return rec
}

func restoreProvider(t *testing.T) {
	t.Helper()
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvEnabled, "")
		t.Setenv(EnvEndpoint, "")
		t.Setenv(EnvEnvironment, "")
		t.Setenv(EnvSampleRate, "")

		cfg := ConfigFromEnv("2.3.4")
		if cfg.ServiceName != TracerName || cfg.ServiceVersion != "2.3.4" {
			t.Errorf("service = %s %s", cfg.ServiceName, cfg.ServiceVersion)
		}
		if cfg.Enabled || cfg.OTLPEndpoint != "" {
			t.Errorf("tracing should be off by default: %+v", cfg)
		}
		if cfg.Environment != "development" || cfg.SampleRate != 1.0 {
			t.Errorf("environment = %q, rate = %v", cfg.Environment, cfg.SampleRate)
		}
	})

	t.Run("endpoint enables", func(t *testing.T) {
		t.Setenv(EnvEnabled, "")
		t.Setenv(EnvEndpoint, "localhost:4318")
		t.Setenv(EnvEnvironment, "production")
		t.Setenv(EnvSampleRate, "0.25")

		cfg := ConfigFromEnv("1.0.0")
		if !cfg.Enabled || cfg.OTLPEndpoint != "localhost:4318" {
			t.Errorf("endpoint should enable tracing: %+v", cfg)
		}
		if cfg.Environment != "production" || cfg.SampleRate != 0.25 {
			t.Errorf("environment = %q, rate = %v", cfg.Environment, cfg.SampleRate)
		}
	})

	t.Run("flag enables", func(t *testing.T) {
		t.Setenv(EnvEnabled, "true")
		t.Setenv(EnvEndpoint, "")
		if !ConfigFromEnv("1.0.0").Enabled {
			t.Error("OTEL_ENABLED=true should enable tracing")
		}
	})
}

func TestSampleRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 1.0},
		{"0.5", 0.5},
		{"0", 0},
		{"half", 1.0},
	}
	for _, tt := range tests {
		if got := sampleRate(tt.in); got != tt.want {
			t.Errorf("sampleRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource(Config{ServiceName: "svc", ServiceVersion: "9.9.9", Environment: "test"})
	if err != nil {
		t.Fatalf("newResource failed: %v", err)
	}

	got := make(map[attribute.Key]string)
	for _, kv := range res.Attributes() {
		got[kv.Key] = kv.Value.Emit()
	}
	for key, want := range map[attribute.Key]string{
		"service.name":                "svc",
		"service.version":             "9.9.9",
		"deployment.environment.name": "test",
	} {
		if got[key] != want {
			t.Errorf("%s = %q, want %q", key, got[key], want)
		}
	}
	if _, ok := got["telemetry.sdk.name"]; !ok {
		t.Error("SDK default attributes were not merged")
	}
}

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown returned error: %v", err)
	}
}

func TestSetupSampleRates(t *testing.T) {
	for _, rate := range []float64{1.0, 0.0, 0.5, 1.5, -0.5} {
		restoreProvider(t)
		var buf bytes.Buffer
		shutdown, err := Setup(context.Background(), Config{
			ServiceName:    "test-service",
			ServiceVersion: "1.0.0",
			Environment:    "test",
			Enabled:        true,
			SampleRate:     rate,
			Writer:         &buf,
		})
		if err != nil {
			t.Fatalf("Setup(rate=%v) failed: %v", rate, err)
		}
		_ = shutdown(context.Background())
	}
}

func TestSetupExportsSpans(t *testing.T) {
	restoreProvider(t)
	var buf bytes.Buffer
	shutdown, err := Setup(context.Background(), Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		Enabled:        true,
		SampleRate:     1.0,
		Writer:         &buf,
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	_, span := StartAdsSpan(context.Background(), "GoogleAdsService", "search", "1234567890")
	Finish(span, nil)
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"google_ads.GoogleAdsService.search", "1234567890", "test-service"} {
		if !strings.Contains(out, want) {
			t.Errorf("exported spans missing %q", want)
		}
	}
}

func TestToolSpanParentsAdsSpan(t *testing.T) {
	rec := useRecorder(t)

	ctx, tool := StartToolSpan(context.Background(), "google_ads_list_campaigns", "campaigns", "call-1", true)
	_, api := StartAdsSpan(ctx, "GoogleAdsService", "search", "1234567890")
	api.End()
	tool.End()

	ended := rec.Ended()
	if len(ended) != 2 {
		t.Fatalf("ended %d spans, want 2", len(ended))
	}
	apiSpan, toolSpan := ended[0], ended[1]

	if toolSpan.Name() != "mcp.tool.google_ads_list_campaigns" || toolSpan.SpanKind() != trace.SpanKindServer {
		t.Errorf("tool span = %s (%v)", toolSpan.Name(), toolSpan.SpanKind())
	}
	ta := attrs(toolSpan)
	if ta["mcp.tool.category"].AsString() != "campaigns" || ta["mcp.call_id"].AsString() != "call-1" || !ta["mcp.tool.readonly"].AsBool() {
		t.Errorf("tool attributes = %v", ta)
	}

	if apiSpan.Name() != "google_ads.GoogleAdsService.search" || apiSpan.SpanKind() != trace.SpanKindClient {
		t.Errorf("api span = %s (%v)", apiSpan.Name(), apiSpan.SpanKind())
	}
	if apiSpan.Parent().SpanID() != toolSpan.SpanContext().SpanID() {
		t.Error("api span is not a child of the tool span")
	}
	if got := attrs(apiSpan)["google_ads.customer_id"].AsString(); got != "1234567890" {
		t.Errorf("customer_id = %q", got)
	}
}

func TestStartAdsSpanWithoutCustomer(t *testing.T) {
	rec := useRecorder(t)

	_, span := StartAdsSpan(context.Background(), "CustomerService", "listAccessibleCustomers", "")
	span.End()

	if _, ok := attrs(rec.Ended()[0])["google_ads.customer_id"]; ok {
		t.Error("customer_id should be omitted when empty")
	}
}

func TestFinish(t *testing.T) {
	rec := useRecorder(t)

	_, failed := StartAdsSpan(context.Background(), "CampaignService", "mutate", "1")
	Finish(failed, errors.New("quota exhausted"))
	failed.End()

	_, ok := StartAdsSpan(context.Background(), "CampaignService", "mutate", "1")
	Finish(ok, nil)
	ok.End()

	ended := rec.Ended()
	if st := ended[0].Status(); st.Code != codes.Error || st.Description != "quota exhausted" {
		t.Errorf("failed status = %+v", st)
	}
	if len(ended[0].Events()) == 0 || ended[0].Events()[0].Name != "exception" {
		t.Error("error was not recorded as an exception event")
	}
	if st := ended[1].Status(); st.Code != codes.Ok {
		t.Errorf("ok status = %+v", st)
	}
}

func TestNewSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{1.5, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{0.5, "TraceIDRatioBased{0.5}"},
	}
	for _, tt := range tests {
		desc := newSampler(tt.rate).Description()
		if !strings.HasPrefix(desc, "ParentBased{root:"+tt.want) {
			t.Errorf("newSampler(%v) = %s, want root %s", tt.rate, desc, tt.want)
		}
	}
}
