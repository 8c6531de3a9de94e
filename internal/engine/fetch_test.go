package engine

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"syscall"
	"testing"
	"time"

	appver "github.com/MOYARU/crs/internal/version"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "full url", input: "https://example.com/page", want: "https://example.com/page"},
		{name: "scheme added", input: "example.com", want: "https://example.com"},
		{name: "whitespace trimmed", input: "  example.com  ", want: "https://example.com"},
		{name: "http kept", input: "http://example.com", want: "http://example.com"},
		{name: "empty", input: "", wantErr: true},
		{name: "spaces only", input: "   ", wantErr: true},
		{name: "spaces in host", input: "not a url", wantErr: true},
		{name: "no dot in host", input: "https://hello", wantErr: true},
		{name: "unsupported scheme", input: "ftp://example.com", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Normalize(%q) expected error, got %v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got.String(), tc.want)
			}
		})
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("expected a User-Agent header")
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><title>ok</title></html>"))
	}))
	defer srv.Close()

	target, err := Normalize(srv.URL)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	fr, err := Fetch(context.Background(), srv.Client(), target, "")
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if fr.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", fr.StatusCode)
	}
	if !strings.Contains(fr.ContentType, "text/html") {
		t.Fatalf("unexpected content type: %s", fr.ContentType)
	}
	if !strings.Contains(string(fr.Body), "<title>ok</title>") {
		t.Fatalf("unexpected body: %s", fr.Body)
	}
	if fr.UsedHTTPS() {
		t.Fatal("httptest server is plain HTTP, UsedHTTPS should be false")
	}
}

func TestFetchBodyCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, maxBodyBytes+4096))
	}))
	defer srv.Close()

	target, err := Normalize(srv.URL)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	fr, err := Fetch(context.Background(), srv.Client(), target, "")
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(fr.Body) != maxBodyBytes {
		t.Fatalf("body not capped: got %d bytes", len(fr.Body))
	}
}

func TestFetchUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	target, err := Normalize(srv.URL)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	if _, err := Fetch(context.Background(), srv.Client(), target, ""); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if got != appver.ScorerUserAgent() {
		t.Fatalf("default User-Agent = %q, want %q", got, appver.ScorerUserAgent())
	}

	if _, err := Fetch(context.Background(), srv.Client(), target, "AuditBot/2.0"); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if got != "AuditBot/2.0" {
		t.Fatalf("custom User-Agent = %q, want AuditBot/2.0", got)
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "deadline exceeded" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "deadline", err: context.DeadlineExceeded, want: "timeout"},
		{name: "net timeout", err: net.Error(timeoutErr{}), want: "timeout"},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "nope.invalid"}, want: "DNS lookup failed"},
		{name: "refused", err: syscall.ECONNREFUSED, want: "connection refused"},
		{name: "reset", err: syscall.ECONNRESET, want: "connection reset"},
		{name: "other", err: errors.New("boom"), want: "request failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyError(tc.err); got != tc.want {
				t.Fatalf("ClassifyError(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}

func TestNewHTTPClientDefaults(t *testing.T) {
	c := NewHTTPClient(0)
	if c.Timeout != DefaultTimeout {
		t.Fatalf("unexpected default timeout: %s", c.Timeout)
	}
	c = NewHTTPClient(3 * time.Second)
	if c.Timeout != 3*time.Second {
		t.Fatalf("unexpected timeout: %s", c.Timeout)
	}
}
