// Google Ads MCP Server - A Model Context Protocol server for the Google Ads API
// Provides tools for reporting on and managing campaigns, keywords, ads and assets
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/google-ads-mcp-server/internal/ads"
	"github.com/olgasafonova/google-ads-mcp-server/internal/config"
	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
	"github.com/olgasafonova/google-ads-mcp-server/tools"
	"github.com/olgasafonova/google-ads-mcp-server/tracing"
	"github.com/spf13/cobra"
)

const (
	ServerName    = "google-ads-mcp-server"
	ServerVersion = "1.0.0"

	// EnvLogLevel sets the log level when --log-level is not given
	EnvLogLevel = "GOOGLE_ADS_MCP_LOG_LEVEL"
)

const instructions = `Google Ads MCP Server provides tools for the Google Ads API.

Start with google_ads_list_accounts to find a customer_id, then use it with every other tool.
Customer IDs are 10 digits; dashes are accepted. Monetary inputs are in micros (1,000,000 = one unit of account currency).

Read tools accept response_format=json for machine-readable output.
Write tools act on the live account. New campaigns and ad groups start PAUSED.

Configure via environment variables:
- GOOGLE_ADS_DEVELOPER_TOKEN, GOOGLE_ADS_CLIENT_ID, GOOGLE_ADS_CLIENT_SECRET, GOOGLE_ADS_REFRESH_TOKEN (required)
- GOOGLE_ADS_LOGIN_CUSTOMER_ID: Manager account to act through (optional)`

// options holds the global command line flags.
type options struct {
	configPath string
	logLevel   string
	httpAddr   string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   ServerName,
		Short: "MCP server for the Google Ads API",
		Long: `google-ads-mcp-server exposes Google Ads reporting and management as MCP tools.

Run without a subcommand to serve over stdio.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a google-ads.yaml file (default $"+config.EnvConfigFile+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default $"+EnvLogLevel+" or info)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio, or streamable HTTP with --http",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	for _, c := range []*cobra.Command{root, serve} {
		c.Flags().StringVar(&opts.httpAddr, "http", "", "Listen address for streamable HTTP (e.g. :8080)")
	}

	root.AddCommand(serve, newGenerateTokenCmd(opts), newCheckConnectionCmd(opts))
	return root
}

// newLogger writes to stderr; stdout carries the stdio transport.
func newLogger(level string) *slog.Logger {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServe(ctx context.Context, opts *options) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(opts.logLevel)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		return err
	}

	shutdown, err := tracing.Setup(ctx, tracing.ConfigFromEnv(ServerVersion))
	if err != nil {
		logger.Warn("Tracing disabled", "error", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("Tracing shutdown failed", "error", err)
			}
		}()
	}

	server := newServer(ctx, cfg, logger)

	if opts.httpAddr != "" {
		logger.Info("Starting Google Ads MCP Server",
			"name", ServerName,
			"version", ServerVersion,
			"transport", "http",
			"addr", opts.httpAddr,
		)
		return serveHTTP(ctx, opts.httpAddr, newHTTPHandler(server, logger, DefaultSecurityConfig()), logger)
	}

	logger.Info("Starting Google Ads MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"transport", "stdio",
	)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("Server error", "error", err)
		return err
	}
	return nil
}

// newServer builds the MCP server with every tool registered. Missing
// credentials do not stop the server; each tool call reports them instead.
func newServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: instructions,
	})

	svc := ads.NewService(newAdapter(ctx, cfg, logger), logger)
	tools.NewHandlerRegistry(svc, logger).RegisterAll(server)
	return server
}

// clientOptions are the googleads options shared by the server and the CLI.
func clientOptions(logger *slog.Logger) []googleads.Option {
	return []googleads.Option{
		googleads.WithLogger(logger),
		googleads.WithUserAgent(ServerName + "/" + ServerVersion),
	}
}

func newAdapter(ctx context.Context, cfg *config.Config, logger *slog.Logger) ads.Adapter {
	if err := cfg.Validate(); err != nil {
		logger.Warn("Google Ads credentials incomplete; tools will report the problem", "missing", cfg.Missing())
		return ads.Unconfigured(err)
	}
	logger.Info("Google Ads client configured",
		"api_version", cfg.APIVersion,
		"login_customer_id", cfg.LoginCustomerID,
		"timeout", cfg.Timeout,
	)
	return googleads.NewFromConfig(ctx, cfg, clientOptions(logger)...)
}
