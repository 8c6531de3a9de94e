package engine

import (
	"crypto/tls"
	"net/http"
	"time"
)

const DefaultTimeout = 8 * time.Second

// NewHTTPClient builds the client used for the single scoring fetch.
// Redirects are followed so that the final URL reflects where the content
// actually lives (an http target redirecting to https earns the HTTPS bonus).
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          200,
			MaxIdleConnsPerHost:   32,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}
