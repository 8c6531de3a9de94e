package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	appver "github.com/MOYARU/crs/internal/version"
)

// Body reads are capped so a pathological page cannot balloon memory.
const maxBodyBytes = 1 << 20 // 1 MiB

type FetchResult struct {
	InitialURL  *url.URL
	FinalURL    *url.URL
	StatusCode  int
	ContentType string
	Body        []byte
}

// UsedHTTPS reports whether the content was ultimately served over TLS.
func (r *FetchResult) UsedHTTPS() bool {
	return r.FinalURL != nil && r.FinalURL.Scheme == "https"
}

// Fetch issues the single GET a scoring pass is allowed. The response body is
// fully read (up to the cap) and closed before returning, so callers never
// hold a live connection. An empty userAgent falls back to the default bot
// identity.
func Fetch(ctx context.Context, client *http.Client, target *url.URL, userAgent string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	if userAgent == "" {
		userAgent = appver.ScorerUserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		// A truncated body still carries signal; keep what arrived.
		log.Debug().Err(err).Str("url", target.String()).Msg("body read stopped early")
	}

	result := &FetchResult{
		InitialURL:  target,
		FinalURL:    resp.Request.URL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}

	log.Debug().
		Str("url", target.String()).
		Str("final_url", result.FinalURL.String()).
		Int("status", result.StatusCode).
		Int("body_bytes", len(body)).
		Msg("fetch complete")

	return result, nil
}

// Normalize validates raw user input and fills in a default scheme.
// "example.com" becomes "https://example.com"; a host without a dot is
// rejected so nonsense like "https://hello" never reaches the network.
func Normalize(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("empty URL")
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %s", parsed.Scheme)
	}

	host := parsed.Hostname()
	if host == "" {
		return nil, fmt.Errorf("missing host")
	}
	if !strings.Contains(host, ".") {
		return nil, fmt.Errorf("invalid host: %s", host)
	}

	return parsed, nil
}

// ClassifyError maps a fetch error to the short category that appears in
// the score explanation.
func ClassifyError(err error) string {
	var dnsErr *net.DNSError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded) || isTimeout(err):
		return "timeout"
	case errors.As(err, &dnsErr):
		return "DNS lookup failed"
	case errors.Is(err, syscall.ECONNREFUSED):
		return "connection refused"
	case errors.Is(err, syscall.ECONNRESET):
		return "connection reset"
	default:
		return "request failed"
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
