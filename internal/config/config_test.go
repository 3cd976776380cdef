package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		EnvDeveloperToken, EnvClientID, EnvClientSecret, EnvRefreshToken,
		EnvLoginCustomerID, EnvAPIVersion, EnvTimeout, EnvConfigFile,
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDeveloperToken, "dev-token-123")
	t.Setenv(EnvClientID, "client.apps.googleusercontent.com")
	t.Setenv(EnvClientSecret, "secret")
	t.Setenv(EnvRefreshToken, "1//refresh")
	t.Setenv(EnvLoginCustomerID, "123-456-7890")
	t.Setenv(EnvTimeout, "45s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := &Config{
		DeveloperToken:  "dev-token-123",
		ClientID:        "client.apps.googleusercontent.com",
		ClientSecret:    "secret",
		RefreshToken:    "1//refresh",
		LoginCustomerID: "1234567890",
		APIVersion:      DefaultAPIVersion,
		Timeout:         45 * time.Second,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "google-ads.yaml")
	content := `developer_token: file-token
client_id: file-client
client_secret: file-secret
refresh_token: file-refresh
api_version: v18
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvDeveloperToken, "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DeveloperToken != "env-token" {
		t.Errorf("DeveloperToken = %q, want env-token", cfg.DeveloperToken)
	}
	if cfg.ClientID != "file-client" {
		t.Errorf("ClientID = %q, want file-client", cfg.ClientID)
	}
	if cfg.APIVersion != "v18" {
		t.Errorf("APIVersion = %q, want v18", cfg.APIVersion)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default", cfg.Timeout)
	}
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("developer_tokn: typo\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty file should decode, got %v", err)
	}
	if cfg.DeveloperToken != "" {
		t.Errorf("unexpected value %q", cfg.DeveloperToken)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing explicit file")
	}
}

func TestLoad_MissingFileFromEnvIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := Load(""); err != nil {
		t.Errorf("missing file from %s should be ignored, got %v", EnvConfigFile, err)
	}
}

func TestLoad_BadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTimeout, "soon")
	if _, err := Load(""); err == nil {
		t.Error("expected error for unparsable timeout")
	}
}

func TestValidate_Missing(t *testing.T) {
	cfg := &Config{DeveloperToken: "x", ClientSecret: "y"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}

	var me *MissingError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MissingError, got %T", err)
	}
	want := "Missing required environment variables: GOOGLE_ADS_CLIENT_ID, GOOGLE_ADS_REFRESH_TOKEN. Please configure credentials before using this tool."
	if err.Error() != want {
		t.Errorf("message =\n%s\nwant\n%s", err.Error(), want)
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "NOT SET"},
		{"short", "short..."},
		{"abcdefghijKLMNOP", "abcdefghij..."},
	}
	for _, tt := range tests {
		if got := Mask(tt.in); got != tt.want {
			t.Errorf("Mask(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	masked := (&Config{RefreshToken: "1//0abcdefghijklmnop"}).Masked()
	if masked[EnvRefreshToken] != "1//0abcdef..." {
		t.Errorf("masked refresh token = %q", masked[EnvRefreshToken])
	}
	if masked[EnvDeveloperToken] != "NOT SET" {
		t.Errorf("masked developer token = %q", masked[EnvDeveloperToken])
	}
}
