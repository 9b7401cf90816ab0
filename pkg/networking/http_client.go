// Package networking provides shared helpers for outbound HTTP clients.
package networking

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// HttpTimeout is the timeout for outgoing HTTP requests
const HttpTimeout = 30 * time.Second

// ValidatingTransport is for validating URLs prior to request
type ValidatingTransport struct {
	Transport http.RoundTripper
}

// RoundTrip validates the request URL prior to forwarding
func (t *ValidatingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	parsedUrl, err := url.Parse(req.URL.String())
	if err != nil {
		return nil, fmt.Errorf("the supplied URL %s is malformed", req.URL.String())
	}

	// Check for HTTPS scheme
	if parsedUrl.Scheme != "https" {
		return nil, fmt.Errorf("the supplied URL %s is not HTTPS scheme", req.URL.String())
	}

	return t.Transport.RoundTrip(req)
}

// authenticatedTransport adds fixed Authorization and User-Agent headers to
// HTTP requests. The Authorization value is sent verbatim, so callers that
// need a scheme prefix such as "Bearer " must include it.
type authenticatedTransport struct {
	transport  http.RoundTripper
	authHeader string
	userAgent  string
}

// RoundTrip adds the configured headers and forwards the request
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	newReq := req.Clone(req.Context())
	if t.authHeader != "" {
		newReq.Header.Set("Authorization", t.authHeader)
	}
	if t.userAgent != "" {
		newReq.Header.Set("User-Agent", t.userAgent)
	}

	return t.transport.RoundTrip(newReq)
}

// HttpClientBuilder provides a fluent interface for building HTTP clients
type HttpClientBuilder struct {
	clientTimeout         time.Duration
	tlsHandshakeTimeout   time.Duration
	responseHeaderTimeout time.Duration
	caCertPath            string
	authHeader            string
	userAgent             string
}

// NewHttpClientBuilder returns a new HttpClientBuilder
func NewHttpClientBuilder() *HttpClientBuilder {
	return &HttpClientBuilder{
		clientTimeout:         HttpTimeout,
		tlsHandshakeTimeout:   10 * time.Second,
		responseHeaderTimeout: 10 * time.Second,
	}
}

// WithCABundle sets the CA certificate bundle path
func (b *HttpClientBuilder) WithCABundle(path string) *HttpClientBuilder {
	b.caCertPath = path
	return b
}

// WithAuthHeader sets the Authorization header value sent with every request
func (b *HttpClientBuilder) WithAuthHeader(value string) *HttpClientBuilder {
	b.authHeader = value
	return b
}

// WithUserAgent sets the User-Agent header sent with every request
func (b *HttpClientBuilder) WithUserAgent(agent string) *HttpClientBuilder {
	b.userAgent = agent
	return b
}

// Build creates the configured HTTP client
func (b *HttpClientBuilder) Build() (*http.Client, error) {
	transport := &http.Transport{
		TLSHandshakeTimeout:   b.tlsHandshakeTimeout,
		ResponseHeaderTimeout: b.responseHeaderTimeout,
	}

	if b.caCertPath != "" {
		caCert, err := os.ReadFile(b.caCertPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate bundle: %w", err)
		}

		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA certificate bundle")
		}

		transport.TLSClientConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
			RootCAs:    caCertPool,
		}
	}

	// Start with validation transport
	var clientTransport http.RoundTripper = &ValidatingTransport{
		Transport: transport,
	}

	if b.authHeader != "" || b.userAgent != "" {
		clientTransport = &authenticatedTransport{
			transport:  clientTransport,
			authHeader: b.authHeader,
			userAgent:  b.userAgent,
		}
	}

	client := &http.Client{
		Transport: clientTransport,
		Timeout:   b.clientTimeout,
	}

	return client, nil
}
