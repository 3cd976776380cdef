package googleads

import (
	"context"
	"net/http"
	"time"

	"github.com/olgasafonova/google-ads-mcp-server/internal/base"
	"github.com/olgasafonova/google-ads-mcp-server/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scope grants access to the Google Ads API
const Scope = "https://www.googleapis.com/auth/adwords"

// OAuthConfig returns the installed-app OAuth2 configuration for the
// Google Ads scope.
func OAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{Scope},
		Endpoint:     google.Endpoint,
	}
}

// TokenSource exchanges the configured refresh token for access tokens,
// reusing each token until it expires.
func TokenSource(ctx context.Context, cfg *config.Config) oauth2.TokenSource {
	oc := OAuthConfig(cfg.ClientID, cfg.ClientSecret, "")
	return oauth2.ReuseTokenSource(nil, oc.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken}))
}

// NewHTTPClient returns an HTTP client that authorizes every request with
// a bearer token from ts.
func NewHTTPClient(ts oauth2.TokenSource, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &oauth2.Transport{
			Source: ts,
			Base:   base.NewTransport(),
		},
	}
}

// NewFromConfig builds an authenticated client from loaded configuration.
// Token refresh uses ctx, so it should outlive every call made with the
// client.
func NewFromConfig(ctx context.Context, cfg *config.Config, opts ...Option) *Client {
	hc := NewHTTPClient(TokenSource(ctx, cfg), cfg.Timeout)
	all := append([]Option{
		WithHTTPClient(hc),
		WithAPIVersion(cfg.APIVersion),
		WithLoginCustomerID(cfg.LoginCustomerID),
	}, opts...)
	return NewClient(cfg.DeveloperToken, all...)
}
