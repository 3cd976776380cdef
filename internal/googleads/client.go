// Package googleads is the only code that talks to the Google Ads REST API.
// It executes searches and mutations and decodes failures into
// *errors.RemoteError; it never retries and never caches.
package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/olgasafonova/google-ads-mcp-server/internal/base"
	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
	"github.com/olgasafonova/google-ads-mcp-server/metrics"
	"github.com/olgasafonova/google-ads-mcp-server/tracing"
)

const (
	// BaseURL is the Google Ads REST endpoint
	BaseURL = "https://googleads.googleapis.com"

	// DefaultAPIVersion used when none is configured
	DefaultAPIVersion = "v19"
)

// Client calls the Google Ads REST API.
type Client struct {
	*base.Client

	baseURL         string
	apiVersion      string
	developerToken  string
	loginCustomerID string
}

type settings struct {
	baseURL         string
	apiVersion      string
	loginCustomerID string
	transport       []base.ClientOption
}

// Option configures the Client
type Option func(*settings)

// WithBaseURL points the client at another host (used by tests)
func WithBaseURL(u string) Option {
	return func(s *settings) {
		s.baseURL = strings.TrimRight(u, "/")
	}
}

// WithAPIVersion sets the API version path segment, e.g. "v19"
func WithAPIVersion(v string) Option {
	return func(s *settings) {
		if v != "" {
			s.apiVersion = v
		}
	}
}

// WithLoginCustomerID sets the manager account used for access
func WithLoginCustomerID(id string) Option {
	return func(s *settings) {
		s.loginCustomerID = strings.ReplaceAll(id, "-", "")
	}
}

// WithHTTPClient sets the underlying HTTP client, which must add the
// OAuth2 Authorization header itself
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) {
		s.transport = append(s.transport, base.WithHTTPClient(hc))
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.transport = append(s.transport, base.WithLogger(l))
	}
}

// WithUserAgent sets the User-Agent sent with every request
func WithUserAgent(ua string) Option {
	return func(s *settings) {
		if ua != "" {
			s.transport = append(s.transport, base.WithUserAgent(ua))
		}
	}
}

// NewClient creates a Google Ads client authenticated with developerToken.
func NewClient(developerToken string, opts ...Option) *Client {
	s := settings{baseURL: BaseURL, apiVersion: DefaultAPIVersion}
	for _, opt := range opts {
		opt(&s)
	}
	return &Client{
		Client:          base.NewClient(s.transport...),
		baseURL:         s.baseURL,
		apiVersion:      s.apiVersion,
		developerToken:  developerToken,
		loginCustomerID: s.loginCustomerID,
	}
}

// Operation is one entry of a mutate request. Exactly one of Create, Update
// or Remove is set.
type Operation struct {
	Create     any    `json:"create,omitempty"`
	Update     any    `json:"update,omitempty"`
	UpdateMask string `json:"updateMask,omitempty"`
	Remove     string `json:"remove,omitempty"`
}

func (o Operation) kind() string {
	switch {
	case o.Create != nil:
		return "create"
	case o.Update != nil:
		return "update"
	default:
		return "remove"
	}
}

// Search runs a GAQL query and drains every streamed batch into one slice.
func (c *Client) Search(ctx context.Context, customerID, query string) ([]Row, error) {
	var batches []streamBatch
	err := c.call(ctx, "GoogleAdsService", "searchStream", customerID,
		c.customerURL(customerID, "googleAds:searchStream"),
		map[string]string{"query": query}, &batches)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for _, b := range batches {
		if b.Error != nil {
			return nil, b.Error.remote(http.StatusOK)
		}
		rows = append(rows, b.Results...)
	}
	return rows, nil
}

// Mutate sends operations to a mutate service ("campaigns", "adGroupCriteria",
// ...) in one request and returns the resulting resource names in order.
func (c *Client) Mutate(ctx context.Context, customerID, service string, ops []Operation) ([]string, error) {
	var resp struct {
		Results []struct {
			ResourceName string `json:"resourceName"`
		} `json:"results"`
	}
	err := c.call(ctx, service, "mutate", customerID,
		c.customerURL(customerID, service+":mutate"),
		map[string]any{"operations": ops}, &resp)

	counts := map[string]int{}
	for _, op := range ops {
		counts[op.kind()]++
	}
	for kind, n := range counts {
		metrics.RecordMutate(service, kind, n, err == nil)
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, len(resp.Results))
	for i, r := range resp.Results {
		names[i] = r.ResourceName
	}
	return names, nil
}

// ListAccessibleCustomers returns the resource names ("customers/123") of
// every account the credentials can access directly.
func (c *Client) ListAccessibleCustomers(ctx context.Context) ([]string, error) {
	var resp struct {
		ResourceNames []string `json:"resourceNames"`
	}
	err := c.call(ctx, "CustomerService", "listAccessibleCustomers", "",
		c.versionURL("customers:listAccessibleCustomers"), nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.ResourceNames, nil
}

// SuggestGeoTargets looks up geo target constants by location name.
// Each returned row holds reach and a geoTargetConstant object.
func (c *Client) SuggestGeoTargets(ctx context.Context, locale, countryCode string, names []string) ([]Row, error) {
	req := map[string]any{
		"locationNames": map[string]any{"names": names},
	}
	if locale != "" {
		req["locale"] = locale
	}
	if countryCode != "" {
		req["countryCode"] = countryCode
	}

	var resp struct {
		Suggestions []Row `json:"geoTargetConstantSuggestions"`
	}
	err := c.call(ctx, "GeoTargetConstantService", "suggest", "",
		c.versionURL("geoTargetConstants:suggest"), req, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// ApplyRecommendation applies one recommendation by resource name.
func (c *Client) ApplyRecommendation(ctx context.Context, customerID, resourceName string) ([]string, error) {
	return c.recommendationAction(ctx, customerID, "apply", resourceName)
}

// DismissRecommendation dismisses one recommendation by resource name.
func (c *Client) DismissRecommendation(ctx context.Context, customerID, resourceName string) ([]string, error) {
	return c.recommendationAction(ctx, customerID, "dismiss", resourceName)
}

func (c *Client) recommendationAction(ctx context.Context, customerID, action, resourceName string) ([]string, error) {
	var resp struct {
		Results []struct {
			ResourceName string `json:"resourceName"`
		} `json:"results"`
	}
	req := map[string]any{
		"operations": []map[string]string{{"resourceName": resourceName}},
	}
	err := c.call(ctx, "RecommendationService", action, customerID,
		c.customerURL(customerID, "recommendations:"+action), req, &resp)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(resp.Results))
	for i, r := range resp.Results {
		names[i] = r.ResourceName
	}
	return names, nil
}

// call performs one API request with tracing and metrics, decoding a
// successful body into out.
func (c *Client) call(ctx context.Context, service, action, customerID, url string, req, out any) error {
	ctx, span := tracing.StartAdsSpan(ctx, service, action, customerID)
	defer span.End()

	start := time.Now()
	err := c.do(ctx, url, req, out)
	duration := time.Since(start).Seconds()

	tracing.Finish(span, err)
	if err != nil {
		metrics.RecordAPICall(service, action, duration, string(apperrors.KindOf(err)))
		return err
	}
	metrics.RecordAPICall(service, action, duration, "")
	return nil
}

func (c *Client) do(ctx context.Context, url string, req, out any) error {
	cfg := base.RequestConfig{
		URL: url,
		Headers: map[string]string{
			"developer-token":   c.developerToken,
			"login-customer-id": c.loginCustomerID,
		},
	}
	if req != nil {
		body, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		cfg.Body = body
	}

	body, status, err := c.DoRequest(ctx, cfg)
	if err != nil {
		return err
	}
	if status >= 400 {
		return decodeFailure(status, body)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *Client) versionURL(method string) string {
	return c.baseURL + "/" + c.apiVersion + "/" + method
}

func (c *Client) customerURL(customerID, method string) string {
	return c.baseURL + "/" + c.apiVersion + "/customers/" + customerID + "/" + method
}

type streamBatch struct {
	Results []Row     `json:"results"`
	Error   *apiError `json:"error"`
}
