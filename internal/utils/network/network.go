package network

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"
)

// NewSecureHTTPClient returns an HTTP client with sane timeouts and a
// minimum TLS version, used for probing repository index URLs.
func NewSecureHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 15 * time.Second,
		},
	}
}

// CheckURL performs a HEAD request against url and reports non-2xx/3xx
// statuses as errors. Some package indexes reject HEAD; those fall back
// to GET.
func CheckURL(url string) error {
	client := NewSecureHTTPClient()

	resp, err := client.Head(url)
	if err == nil && resp.StatusCode < 400 {
		resp.Body.Close()
		return nil
	}
	if resp != nil {
		resp.Body.Close()
	}

	resp, err = client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("unexpected status for %s: %s", url, resp.Status)
	}
	return nil
}
