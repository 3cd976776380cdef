// Package tracing provides OpenTelemetry tracing for the Google Ads MCP server.
// Tool calls and Google Ads API calls each get a span; API spans are children
// of the tool span that issued them.
package tracing

import (
	"context"
	"io"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope for every span the server creates.
const TracerName = "google-ads-mcp-server"

// Environment variables read by ConfigFromEnv.
const (
	EnvEnabled     = "OTEL_ENABLED"
	EnvEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvEnvironment = "OTEL_ENVIRONMENT"
	EnvSampleRate  = "OTEL_TRACES_SAMPLER_ARG"
)

// Config holds tracing configuration
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Enabled        bool
	OTLPEndpoint   string // If set, uses OTLP exporter; otherwise stdout
	SampleRate     float64

	// Writer receives stdout-exporter spans. Nil means stderr, since stdout
	// carries the stdio transport.
	Writer io.Writer
}

// ConfigFromEnv builds a Config for the given server version. Tracing is on
// when OTEL_ENABLED=true or an OTLP endpoint is set.
func ConfigFromEnv(version string) Config {
	endpoint := os.Getenv(EnvEndpoint)
	return Config{
		ServiceName:    TracerName,
		ServiceVersion: version,
		Environment:    getEnvOrDefault(EnvEnvironment, "development"),
		Enabled:        os.Getenv(EnvEnabled) == "true" || endpoint != "",
		OTLPEndpoint:   endpoint,
		SampleRate:     sampleRate(os.Getenv(EnvSampleRate)),
	}
}

func sampleRate(s string) float64 {
	if s == "" {
		return 1.0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1.0
	}
	return f
}

// Setup installs the global tracer provider and returns its shutdown
// function. When tracing is disabled the global no-op provider stays.
func Setup(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, err
	}
	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(cfg.SampleRate)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// newResource merges the SDK defaults with the service attributes. The
// service part carries no schema URL, so it merges with whatever semconv
// version the SDK's default resource uses.
func newResource(cfg Config) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			attribute.String("deployment.environment.name", cfg.Environment),
		),
	)
}

func newExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	if cfg.OTLPEndpoint != "" {
		return otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	return stdouttrace.New(stdouttrace.WithPrettyPrint(), stdouttrace.WithWriter(w))
}

// newSampler follows the parent's decision and samples root spans at rate.
func newSampler(rate float64) sdktrace.Sampler {
	var root sdktrace.Sampler
	switch {
	case rate >= 1.0:
		root = sdktrace.AlwaysSample()
	case rate <= 0:
		root = sdktrace.NeverSample()
	default:
		root = sdktrace.TraceIDRatioBased(rate)
	}
	return sdktrace.ParentBased(root)
}

func tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartToolSpan starts the span for one MCP tool call.
func StartToolSpan(ctx context.Context, tool, category, callID string, readOnly bool) (context.Context, trace.Span) {
	return tracer().Start(ctx, "mcp.tool."+tool,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("mcp.tool.name", tool),
			attribute.String("mcp.tool.category", category),
			attribute.String("mcp.call_id", callID),
			attribute.Bool("mcp.tool.readonly", readOnly),
		),
	)
}

// StartAdsSpan starts the span for one Google Ads API request.
func StartAdsSpan(ctx context.Context, service, action, customerID string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("google_ads.service", service),
		attribute.String("google_ads.action", action),
	}
	if customerID != "" {
		attrs = append(attrs, attribute.String("google_ads.customer_id", customerID))
	}
	return tracer().Start(ctx, "google_ads."+service+"."+action,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// Finish sets the span status from err. It does not end the span.
func Finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
