package base

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient()
	if client == nil {
		t.Fatal("NewClient returned nil")
	}

	if client.HTTPClient == nil {
		t.Error("HTTPClient is nil")
	}
	if client.Logger == nil {
		t.Error("Logger is nil")
	}
	if client.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", client.UserAgent, DefaultUserAgent)
	}
	if client.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.HTTPClient.Timeout, DefaultTimeout)
	}
}

func TestNewClientWithOptions(t *testing.T) {
	customHTTP := &http.Client{Timeout: 60 * time.Second}
	customLogger := slog.Default()

	client := NewClient(
		WithHTTPClient(customHTTP),
		WithLogger(customLogger),
		WithUserAgent("custom-agent/1.0"),
	)

	if client.HTTPClient != customHTTP {
		t.Error("custom HTTP client was not set")
	}
	if client.Logger != customLogger {
		t.Error("custom logger was not set")
	}
	if client.UserAgent != "custom-agent/1.0" {
		t.Errorf("UserAgent = %q", client.UserAgent)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"longer than max length", 10, "longer tha..."},
		{"", 5, ""},
		{"abc", 0, "..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc..."},
	}

	for _, tt := range tests {
		result := Truncate(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
		}
	}
}

func TestReadAndClose(t *testing.T) {
	t.Run("normal response", func(t *testing.T) {
		resp := &http.Response{Body: io.NopCloser(strings.NewReader("test response body"))}

		data, err := readAndClose(resp, DefaultMaxResponseBytes)
		if err != nil {
			t.Fatalf("readAndClose failed: %v", err)
		}
		if string(data) != "test response body" {
			t.Errorf("got %q, want 'test response body'", string(data))
		}
	})

	t.Run("at limit", func(t *testing.T) {
		resp := &http.Response{Body: io.NopCloser(strings.NewReader("12345"))}

		data, err := readAndClose(resp, 5)
		if err != nil {
			t.Fatalf("readAndClose failed: %v", err)
		}
		if string(data) != "12345" {
			t.Errorf("got %q", data)
		}
	})

	t.Run("over limit", func(t *testing.T) {
		resp := &http.Response{Body: io.NopCloser(strings.NewReader("123456"))}

		if _, err := readAndClose(resp, 5); err == nil || !strings.Contains(err.Error(), "exceeds 5 bytes") {
			t.Errorf("err = %v, want size error", err)
		}
	})

	t.Run("empty response", func(t *testing.T) {
		resp := &http.Response{Body: io.NopCloser(strings.NewReader(""))}

		data, err := readAndClose(resp, DefaultMaxResponseBytes)
		if err != nil {
			t.Fatalf("readAndClose failed: %v", err)
		}
		if len(data) != 0 {
			t.Errorf("expected empty data, got %d bytes", len(data))
		}
	})
}

func TestDoRequest_BodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer server.Close()

	client := NewClient()
	client.MaxResponseBytes = 10
	_, status, err := client.DoRequest(context.Background(), RequestConfig{URL: server.URL})
	if err == nil || !strings.Contains(err.Error(), "exceeds 10 bytes") {
		t.Fatalf("err = %v, want size error", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
}

func TestDoRequest_GetSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Error("Accept header not set")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient()
	body, statusCode, err := client.DoRequest(context.Background(), RequestConfig{URL: server.URL})
	if err != nil {
		t.Fatalf("DoRequest failed: %v", err)
	}
	if statusCode != http.StatusOK {
		t.Errorf("status code = %d, want 200", statusCode)
	}
	if string(body) != `{"status":"ok"}` {
		t.Errorf("body = %q", string(body))
	}
}

func TestDoRequest_PostBodyAndHeaders(t *testing.T) {
	var gotBody, gotCT, gotToken, gotLogin string
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotMethod = r.Method
		gotCT = r.Header.Get("Content-Type")
		gotToken = r.Header.Get("developer-token")
		gotLogin = r.Header.Get("login-customer-id")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	_, _, err := client.DoRequest(context.Background(), RequestConfig{
		URL:  server.URL,
		Body: []byte(`{"query":"SELECT customer.id FROM customer"}`),
		Headers: map[string]string{
			"developer-token":   "dev-token",
			"login-customer-id": "",
		},
	})
	if err != nil {
		t.Fatalf("DoRequest failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST when a body is set", gotMethod)
	}
	if gotBody != `{"query":"SELECT customer.id FROM customer"}` {
		t.Errorf("body = %q", gotBody)
	}
	if gotCT != "application/json" {
		t.Errorf("Content-Type = %q", gotCT)
	}
	if gotToken != "dev-token" {
		t.Errorf("developer-token = %q", gotToken)
	}
	if gotLogin != "" {
		t.Errorf("empty header values should be skipped, got %q", gotLogin)
	}
}

func TestDoRequest_DefaultUserAgent(t *testing.T) {
	var receivedUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	_, _, _ = client.DoRequest(context.Background(), RequestConfig{URL: server.URL})

	if receivedUA != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", receivedUA, DefaultUserAgent)
	}
}

func TestDoRequest_ErrorStatusIsNotRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"code":503}}`))
	}))
	defer server.Close()

	client := NewClient()
	body, statusCode, err := client.DoRequest(context.Background(), RequestConfig{URL: server.URL})
	if err != nil {
		t.Fatalf("DoRequest should return error statuses to the caller, got %v", err)
	}
	if statusCode != http.StatusServiceUnavailable {
		t.Errorf("status code = %d, want 503", statusCode)
	}
	if !strings.Contains(string(body), "503") {
		t.Errorf("body = %q", string(body))
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want exactly 1", attempts)
	}
}

func TestDoRequest_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient()
	_, _, err := client.DoRequest(ctx, RequestConfig{URL: server.URL})
	if err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestDoRequest_InvalidURL(t *testing.T) {
	client := NewClient()
	_, _, err := client.DoRequest(context.Background(), RequestConfig{URL: "://bad"})
	if err == nil {
		t.Error("expected error for invalid URL")
	}
}
