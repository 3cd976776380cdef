package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olgasafonova/google-ads-mcp-server/internal/ads"
	"github.com/olgasafonova/google-ads-mcp-server/internal/config"
	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
)

// customersShown caps the accounts printed by check-connection.
const customersShown = 5

func newGenerateTokenCmd(opts *options) *cobra.Command {
	var (
		clientID     string
		clientSecret string
		port         int
	)

	cmd := &cobra.Command{
		Use:   "generate-token",
		Short: "Run the OAuth2 consent flow and print a refresh token",
		Long: `Run the installed-app OAuth2 flow for the Google Ads scope.

This command:
1. Prints a Google consent URL to open in a browser
2. Waits for the redirect on localhost
3. Exchanges the code and prints the refresh token for GOOGLE_ADS_REFRESH_TOKEN`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if clientID == "" {
				clientID = cfg.ClientID
			}
			if clientSecret == "" {
				clientSecret = cfg.ClientSecret
			}
			if clientID == "" || clientSecret == "" {
				return fmt.Errorf("client ID and secret are required: set %s and %s or pass --client-id and --client-secret",
					config.EnvClientID, config.EnvClientSecret)
			}
			return generateToken(cmd.Context(), cmd.OutOrStdout(), clientID, clientSecret, port)
		},
	}
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client ID (default $"+config.EnvClientID+")")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret (default $"+config.EnvClientSecret+")")
	cmd.Flags().IntVar(&port, "port", 8080, "Local port for the OAuth2 redirect")
	return cmd
}

func generateToken(ctx context.Context, out io.Writer, clientID, clientSecret string, port int) error {
	addr := net.JoinHostPort("localhost", strconv.Itoa(port))
	oc := googleads.OAuthConfig(clientID, clientSecret, "http://"+addr)
	state := uuid.NewString()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	codes := make(chan string, 1)
	errs := make(chan error, 1)
	srv := &http.Server{
		Handler:           oauthCallback(state, codes, errs),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() { _ = srv.Serve(ln) }()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	url := oc.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Fprintf(out, "Open this URL in your browser and approve access:\n\n%s\n\nWaiting for authorization on %s ...\n", url, addr)

	var code string
	select {
	case code = <-codes:
	case err := <-errs:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}

	token, err := oc.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	if token.RefreshToken == "" {
		return errors.New("no refresh token returned; revoke the app's access and run generate-token again")
	}

	fmt.Fprintf(out, "\nRefresh token:\n\n%s\n\nSet it as %s.\n", token.RefreshToken, config.EnvRefreshToken)
	return nil
}

// oauthCallback accepts exactly one redirect carrying state and forwards
// its code or error.
func oauthCallback(state string, codes chan<- string, errs chan<- error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "invalid state", http.StatusBadRequest)
			return
		}
		if e := q.Get("error"); e != "" {
			http.Error(w, "authorization failed: "+e, http.StatusBadRequest)
			select {
			case errs <- fmt.Errorf("authorization failed: %s", e):
			default:
			}
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}
		select {
		case codes <- code:
			fmt.Fprintln(w, "Authorization complete. You can close this window.")
		default:
			http.Error(w, "authorization already received", http.StatusConflict)
		}
	}
}

func newCheckConnectionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check-connection",
		Short: "Verify credentials and list accessible accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printMasked(out, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()
			client := googleads.NewFromConfig(ctx, cfg, clientOptions(newLogger(opts.logLevel))...)
			return checkConnection(ctx, out, client)
		},
	}
}

func printMasked(out io.Writer, cfg *config.Config) {
	masked := cfg.Masked()
	keys := make([]string, 0, len(masked))
	for k := range masked {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(out, "Configuration:")
	for _, k := range keys {
		fmt.Fprintf(out, "  %s: %s\n", k, masked[k])
	}
	fmt.Fprintln(out)
}

func checkConnection(ctx context.Context, out io.Writer, a ads.Adapter) error {
	names, err := a.ListAccessibleCustomers(ctx)
	if err != nil {
		return fmt.Errorf("list accessible customers: %w", err)
	}

	fmt.Fprintf(out, "✅ Connected. %d accessible account(s).\n", len(names))
	for i, name := range names {
		if i == customersShown {
			fmt.Fprintf(out, "  ... and %d more\n", len(names)-customersShown)
			break
		}
		fmt.Fprintf(out, "  - %s\n", strings.TrimPrefix(name, "customers/"))
	}
	return nil
}
