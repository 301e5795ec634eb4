package logging

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRoundTripper_LogsAndRedacts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-RateLimit-Remaining", "59")
		_, _ = io.WriteString(w, `{"login":"tammzz","token":"abc"}`)
	}))
	defer server.Close()

	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Format: FormatJSON, Output: &buf})
	client := &http.Client{Transport: NewLoggingRoundTripper(nil, NewHTTPLogger(logger), true)}

	req, err := http.NewRequest(http.MethodGet, server.URL+"/users/tammzz", nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	req.Header.Set("Authorization", "Bearer secret-token")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != `{"login":"tammzz","token":"abc"}` {
		t.Errorf("body was not restored for the caller: %q", body)
	}

	out := buf.String()
	if strings.Contains(out, "secret-token") {
		t.Error("Authorization header should be redacted")
	}
	if strings.Contains(out, `"abc"`) {
		t.Error("token field in body should be redacted")
	}
	if !strings.Contains(out, "HTTP Request") || !strings.Contains(out, "HTTP Response") {
		t.Errorf("expected request and response entries, got %q", out)
	}
	if !strings.Contains(out, `"rate_limit_remaining":"59"`) {
		t.Errorf("expected rate limit field, got %q", out)
	}
}

func TestRoundTripper_TransportError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Format: FormatText, Output: &buf})
	client := &http.Client{Transport: NewLoggingRoundTripper(nil, NewHTTPLogger(logger), false)}

	_, err := client.Get("http://127.0.0.1:1/unreachable")
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if !strings.Contains(buf.String(), "HTTP Error") {
		t.Errorf("expected error entry, got %q", buf.String())
	}
}
