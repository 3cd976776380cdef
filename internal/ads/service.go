// Package ads implements the Google Ads tools. Each exported Service method
// is one tool: it validates its arguments, builds a query or mutate payload,
// calls the Adapter, normalizes the rows and renders markdown or JSON.
package ads

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
	"github.com/olgasafonova/google-ads-mcp-server/internal/report"
	"github.com/olgasafonova/google-ads-mcp-server/internal/schema"
)

// Adapter is the remote boundary. *googleads.Client implements it.
type Adapter interface {
	Search(ctx context.Context, customerID, query string) ([]googleads.Row, error)
	Mutate(ctx context.Context, customerID, service string, ops []googleads.Operation) ([]string, error)
	ListAccessibleCustomers(ctx context.Context) ([]string, error)
	SuggestGeoTargets(ctx context.Context, locale, countryCode string, names []string) ([]googleads.Row, error)
	ApplyRecommendation(ctx context.Context, customerID, resourceName string) ([]string, error)
	DismissRecommendation(ctx context.Context, customerID, resourceName string) ([]string, error)
}

var _ Adapter = (*googleads.Client)(nil)

// Service runs tool calls against an Adapter.
type Service struct {
	ads    Adapter
	logger *slog.Logger
}

// NewService creates a Service. A nil logger falls back to slog.Default.
func NewService(a Adapter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ads: a, logger: logger}
}

// Unconfigured returns an Adapter that fails every call with cause. The
// server uses it when credentials are missing so tools still register and
// report the configuration problem to the caller.
func Unconfigured(cause error) Adapter {
	return unconfigured{err: &apperrors.ValidationError{Message: cause.Error()}}
}

type unconfigured struct {
	err error
}

func (u unconfigured) Search(context.Context, string, string) ([]googleads.Row, error) {
	return nil, u.err
}

func (u unconfigured) Mutate(context.Context, string, string, []googleads.Operation) ([]string, error) {
	return nil, u.err
}

func (u unconfigured) ListAccessibleCustomers(context.Context) ([]string, error) {
	return nil, u.err
}

func (u unconfigured) SuggestGeoTargets(context.Context, string, string, []string) ([]googleads.Row, error) {
	return nil, u.err
}

func (u unconfigured) ApplyRecommendation(context.Context, string, string) ([]string, error) {
	return nil, u.err
}

func (u unconfigured) DismissRecommendation(context.Context, string, string) ([]string, error) {
	return nil, u.err
}

// render returns the JSON form of v or the markdown built by md.
func render(format schema.Format, v any, md func() string) (string, error) {
	if format == schema.JSON {
		return report.JSON(v)
	}
	return md(), nil
}

// nullable renders an empty optional value as JSON null.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// lastSegment returns the trailing path element of a resource name:
// "customers/1/campaigns/42" → "42".
func lastSegment(resourceName string) string {
	if i := strings.LastIndex(resourceName, "/"); i >= 0 {
		return resourceName[i+1:]
	}
	return resourceName
}

// criterionID returns the part after "~" in a composite criterion key, or
// the whole value when there is none.
func criterionID(resourceName string) string {
	s := lastSegment(resourceName)
	if i := strings.LastIndex(s, "~"); i >= 0 {
		return s[i+1:]
	}
	return s
}

func customerPath(cid string) string {
	return "customers/" + cid
}

func resourcePath(cid, collection, id string) string {
	return "customers/" + cid + "/" + collection + "/" + id
}

// title renders an enum value the way a person would write it:
// "MONDAY" → "Monday".
func title(v string) string {
	if v == "" {
		return v
	}
	return v[:1] + strings.ToLower(v[1:])
}
