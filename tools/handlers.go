package tools

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/google-ads-mcp-server/internal/ads"
	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
	"github.com/olgasafonova/google-ads-mcp-server/internal/report"
	"github.com/olgasafonova/google-ads-mcp-server/metrics"
	"github.com/olgasafonova/google-ads-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their ads.Service methods.
type HandlerRegistry struct {
	service *ads.Service
	logger  *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(service *ads.Service, logger *slog.Logger) *HandlerRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &HandlerRegistry{
		service: service,
		logger:  logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	registered := 0
	for _, spec := range AllTools {
		if h.registerByName(server, spec) {
			registered++
		}
	}
	h.logger.Info("Registered all tools", "count", registered)
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) bool {
	tool := h.buildTool(spec)
	s := h.service

	switch spec.Method {
	// Accounts
	case "ListAccounts":
		register(h, server, tool, spec, s.ListAccounts)
	case "GetAccountInfo":
		register(h, server, tool, spec, s.GetAccountInfo)

	// Campaigns
	case "ListCampaigns":
		register(h, server, tool, spec, s.ListCampaigns)
	case "GetCampaign":
		register(h, server, tool, spec, s.GetCampaign)
	case "GetCampaignInsights":
		register(h, server, tool, spec, s.GetCampaignInsights)
	case "GetSearchTerms":
		register(h, server, tool, spec, s.GetSearchTerms)
	case "GetAssetPerformance":
		register(h, server, tool, spec, s.GetAssetPerformance)
	case "CreateCampaign":
		register(h, server, tool, spec, s.CreateCampaign)
	case "UpdateCampaignStatus":
		register(h, server, tool, spec, s.UpdateCampaignStatus)
	case "SetCampaignSchedule":
		register(h, server, tool, spec, s.SetCampaignSchedule)

	// Ad groups
	case "ListAdGroups":
		register(h, server, tool, spec, s.ListAdGroups)
	case "CreateAdGroup":
		register(h, server, tool, spec, s.CreateAdGroup)
	case "UpdateAdGroupStatus":
		register(h, server, tool, spec, s.UpdateAdGroupStatus)

	// Keywords
	case "ListKeywords":
		register(h, server, tool, spec, s.ListKeywords)
	case "AddKeywords":
		register(h, server, tool, spec, s.AddKeywords)
	case "RemoveKeywords":
		register(h, server, tool, spec, s.RemoveKeywords)

	// Ads
	case "ListAds":
		register(h, server, tool, spec, s.ListAds)
	case "CreateResponsiveSearchAd":
		register(h, server, tool, spec, s.CreateResponsiveSearchAd)
	case "UpdateAdStatus":
		register(h, server, tool, spec, s.UpdateAdStatus)

	// Assets
	case "CreateTextAssets":
		register(h, server, tool, spec, s.CreateTextAssets)
	case "RemoveAssetFromGroup":
		register(h, server, tool, spec, s.RemoveAssetFromGroup)
	case "UpdateAssetGroupAssets":
		register(h, server, tool, spec, s.UpdateAssetGroupAssets)

	// Negatives
	case "ListNegativeKeywords":
		register(h, server, tool, spec, s.ListNegativeKeywords)
	case "AddNegativeKeywords":
		register(h, server, tool, spec, s.AddNegativeKeywords)
	case "RemoveNegativeKeywords":
		register(h, server, tool, spec, s.RemoveNegativeKeywords)

	// Budgets
	case "UpdateCampaignBudget":
		register(h, server, tool, spec, s.UpdateCampaignBudget)
	case "GetBudgetUtilization":
		register(h, server, tool, spec, s.GetBudgetUtilization)

	// Quality
	case "GetKeywordQualityScores":
		register(h, server, tool, spec, s.GetKeywordQualityScores)
	case "GetAdStrength":
		register(h, server, tool, spec, s.GetAdStrength)
	case "GetPolicyIssues":
		register(h, server, tool, spec, s.GetPolicyIssues)

	// Recommendations
	case "ListRecommendations":
		register(h, server, tool, spec, s.ListRecommendations)
	case "ApplyRecommendation":
		register(h, server, tool, spec, s.ApplyRecommendation)
	case "DismissRecommendation":
		register(h, server, tool, spec, s.DismissRecommendation)

	// Conversions
	case "ListConversionActions":
		register(h, server, tool, spec, s.ListConversionActions)
	case "GetConversionStats":
		register(h, server, tool, spec, s.GetConversionStats)
	case "GetCampaignConversionGoals":
		register(h, server, tool, spec, s.GetCampaignConversionGoals)

	// Geo
	case "GetGeoTargets":
		register(h, server, tool, spec, s.GetGeoTargets)
	case "SearchGeoTargets":
		register(h, server, tool, spec, s.SearchGeoTargets)
	case "SetGeoTargets":
		register(h, server, tool, spec, s.SetGeoTargets)
	case "RemoveGeoTargets":
		register(h, server, tool, spec, s.RemoveGeoTargets)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return false
	}
	return true
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if !spec.ReadOnly {
		// The protocol default for DestructiveHint is true; state it either way.
		annotations.DestructiveHint = ptr(spec.Destructive)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// The service method's text becomes the tool result; its error becomes an
// IsError result carrying the formatted message.
func register[Args any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (string, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, any, error) {
		return h.invoke(ctx, spec, args, func(ctx context.Context) (string, error) {
			return method(ctx, args)
		}), nil, nil
	})
}

// invoke runs one tool call with panic recovery, tracing, metrics, the
// response guard and logging. It always returns a result.
func (h *HandlerRegistry) invoke(ctx context.Context, spec ToolSpec, args any, call func(context.Context) (string, error)) (result *mcp.CallToolResult) {
	callID := uuid.NewString()
	defer h.recoverPanic(spec.Name, callID, &result)

	ctx, span := tracing.StartToolSpan(ctx, spec.Name, spec.Category, callID, spec.ReadOnly)
	defer span.End()

	// Track in-flight requests
	metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
	defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

	start := time.Now()
	text, err := call(ctx)
	duration := time.Since(start).Seconds()

	span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

	if err != nil {
		kind := apperrors.KindOf(err)
		span.SetAttributes(attribute.String("mcp.error.kind", string(kind)))
		tracing.Finish(span, err)
		metrics.RecordRequest(spec.Name, duration, false)
		metrics.RecordError(spec.Name, string(kind))
		h.logger.Warn("Tool failed",
			"tool", spec.Name,
			"category", spec.Category,
			"customer_id", stringField(args, "CustomerID"),
			"kind", kind,
			"call_id", callID,
			"error", err)
		return errorResult(apperrors.Format(err))
	}

	text, truncated := report.Guard(text, report.CharacterLimit)
	size := utf8.RuneCountInString(text)
	metrics.RecordResponse(spec.Name, stringField(args, "ResponseFormat"), size, truncated)

	tracing.Finish(span, nil)
	metrics.RecordRequest(spec.Name, duration, true)
	h.logExecution(spec, callID, args, size, truncated)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// recoverPanic recovers from panics in tool handlers and turns them into
// an error result so the caller still gets text back.
func (h *HandlerRegistry) recoverPanic(toolName, callID string, result **mcp.CallToolResult) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"call_id", callID,
			"panic", rec,
			"stack", string(debug.Stack()))
		*result = errorResult(fmt.Sprintf("Error: Unexpected error occurred - %v", rec))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, callID string, args any, size int, truncated bool) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	if cid := stringField(args, "CustomerID"); cid != "" {
		attrs = append(attrs, "customer_id", cid)
	}
	if id := stringField(args, "CampaignID"); id != "" {
		attrs = append(attrs, "campaign_id", id)
	}
	if id := stringField(args, "AdGroupID"); id != "" {
		attrs = append(attrs, "ad_group_id", id)
	}

	attrs = append(attrs, "size", size, "call_id", callID)
	if truncated {
		attrs = append(attrs, "truncated", true)
	}

	h.logger.Info("Tool executed", attrs...)
}

// stringField reads a string field from an args struct by Go field name.
func stringField(args any, name string) string {
	v := reflect.ValueOf(args)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}
	f := v.FieldByName(name)
	if !f.IsValid() || f.Kind() != reflect.String {
		return ""
	}
	return f.String()
}
