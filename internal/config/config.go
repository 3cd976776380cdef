// Package config loads Google Ads API credentials and server settings.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIVersion of the Google Ads REST API
	DefaultAPIVersion = "v19"

	// DefaultTimeout for a single API request
	DefaultTimeout = 30 * time.Second
)

// Environment variable names.
const (
	EnvDeveloperToken  = "GOOGLE_ADS_DEVELOPER_TOKEN"
	EnvClientID        = "GOOGLE_ADS_CLIENT_ID"
	EnvClientSecret    = "GOOGLE_ADS_CLIENT_SECRET"
	EnvRefreshToken    = "GOOGLE_ADS_REFRESH_TOKEN"
	EnvLoginCustomerID = "GOOGLE_ADS_LOGIN_CUSTOMER_ID"
	EnvAPIVersion      = "GOOGLE_ADS_API_VERSION"
	EnvTimeout         = "GOOGLE_ADS_TIMEOUT"
	EnvConfigFile      = "GOOGLE_ADS_CONFIG"
)

// Config holds the credentials needed to call the Google Ads API.
type Config struct {
	DeveloperToken  string        `yaml:"developer_token"`
	ClientID        string        `yaml:"client_id"`
	ClientSecret    string        `yaml:"client_secret"`
	RefreshToken    string        `yaml:"refresh_token"`
	LoginCustomerID string        `yaml:"login_customer_id"`
	APIVersion      string        `yaml:"api_version"`
	Timeout         time.Duration `yaml:"timeout"`
}

// Load builds a Config from an optional YAML file at path, then overrides
// each field with its environment variable when that is set. An empty path
// falls back to $GOOGLE_ADS_CONFIG; a missing file is only an error when the
// path was given explicitly.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigFile)
	}

	cfg := &Config{}
	if path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			if cfg, err = LoadFromReader(f); err != nil {
				return nil, fmt.Errorf("config: parse %q: %w", path, err)
			}
		case explicit || !os.IsNotExist(err):
			return nil, fmt.Errorf("config: open %q: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r. Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.DeveloperToken, EnvDeveloperToken)
	setString(&c.ClientID, EnvClientID)
	setString(&c.ClientSecret, EnvClientSecret)
	setString(&c.RefreshToken, EnvRefreshToken)
	setString(&c.LoginCustomerID, EnvLoginCustomerID)
	setString(&c.APIVersion, EnvAPIVersion)

	if t := os.Getenv(EnvTimeout); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	c.LoginCustomerID = strings.ReplaceAll(strings.TrimSpace(c.LoginCustomerID), "-", "")
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

// Missing returns the environment variable names of required values that
// are not set, in a stable order.
func (c *Config) Missing() []string {
	var missing []string
	for _, f := range []struct {
		env, value string
	}{
		{EnvDeveloperToken, c.DeveloperToken},
		{EnvClientID, c.ClientID},
		{EnvClientSecret, c.ClientSecret},
		{EnvRefreshToken, c.RefreshToken},
	} {
		if f.value == "" {
			missing = append(missing, f.env)
		}
	}
	return missing
}

// Validate reports missing credentials with the message shown to tool callers.
func (c *Config) Validate() error {
	if missing := c.Missing(); len(missing) > 0 {
		return &MissingError{Vars: missing}
	}
	return nil
}

// MissingError lists required credentials that are not configured.
type MissingError struct {
	Vars []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("Missing required environment variables: %s. Please configure credentials before using this tool.",
		strings.Join(e.Vars, ", "))
}

// Masked returns the configured values with secrets shortened for display.
// Keys are environment variable names.
func (c *Config) Masked() map[string]string {
	return map[string]string{
		EnvDeveloperToken:  Mask(c.DeveloperToken),
		EnvClientID:        Mask(c.ClientID),
		EnvClientSecret:    Mask(c.ClientSecret),
		EnvRefreshToken:    Mask(c.RefreshToken),
		EnvLoginCustomerID: Mask(c.LoginCustomerID),
	}
}

// Mask shows the first 10 characters of a secret.
func Mask(v string) string {
	if v == "" {
		return "NOT SET"
	}
	if len(v) <= 10 {
		return v + "..."
	}
	return v[:10] + "..."
}
