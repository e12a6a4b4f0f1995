// Package httpclient implements the HTTPClient port over net/http.
//
// The client is configured per invocation: TLS verification, proxy and
// credentials are options on the constructed client, never process-global
// state, so nothing leaks between invocations in a long-lived process.
package httpclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"urlget/internal/config"
)

// Options carries the per-request transport settings taken from the task
// parameters.
type Options struct {
	// SkipCertificateValidation accepts any TLS server certificate.
	// Deliberately unsafe; meant for test and internal environments.
	SkipCertificateValidation bool

	// Username and Password enable basic auth when both are set.
	Username string
	Password string

	// ProxyURL routes requests through a proxy; ProxyUsername and
	// ProxyPassword attach proxy credentials when both are set.
	ProxyURL      string
	ProxyUsername string
	ProxyPassword string
}

// Client implements the domain.HTTPClient port.
type Client struct {
	client    *http.Client
	opts      Options
	userAgent string
}

// New creates an HTTP client for a single invocation.
func New(opts Options, cfg config.HTTPConfig) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if opts.SkipCertificateValidation {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	if opts.ProxyURL != "" {
		proxyURL, err := url.Parse(opts.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("parsing proxy url: %w", err)
		}
		if opts.ProxyUsername != "" && opts.ProxyPassword != "" {
			proxyURL.User = url.UserPassword(opts.ProxyUsername, opts.ProxyPassword)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &Client{
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		opts:      opts,
		userAgent: cfg.UserAgent,
	}, nil
}

// Head retrieves the response headers for a URL without a body.
func (c *Client) Head(ctx context.Context, reqURL string) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating HEAD request: %w", err)
	}
	c.decorate(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing HEAD request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return flattenHeaders(resp.Header), nil
}

// Get retrieves a URL for streaming. The caller owns the returned body.
func (c *Client) Get(ctx context.Context, reqURL string) (io.ReadCloser, map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("creating GET request: %w", err)
	}
	c.decorate(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("performing GET request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, flattenHeaders(resp.Header), nil
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	if c.opts.Username != "" && c.opts.Password != "" {
		req.SetBasicAuth(c.opts.Username, c.opts.Password)
	}
}

func flattenHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for key := range header {
		headers[key] = header.Get(key)
	}
	return headers
}
