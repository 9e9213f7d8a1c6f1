// Package uoapi is a client for the Urban Observatory sensor data API,
// initially the Urban Sciences Building deployment.
package uoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/urbanobservatory/uoapi-go/pkg/httpclient"
	"go.uber.org/zap"
)

const (
	// DefaultAPIVersion is substituted into the base URL template when no
	// version is configured.
	DefaultAPIVersion = "0.1"

	// DefaultBaseURLTemplate is the production endpoint; the {version}
	// token is replaced once at construction.
	DefaultBaseURLTemplate = "https://api.usb.urbanobservatory.ac.uk/api/v{version}/"

	versionToken   = "{version}"
	defaultTimeout = 15 * time.Second
)

// Client issues GET requests against the Urban Observatory API. It holds the
// effective base URL and a per-instance registry of named resource paths.
// The registry is not synchronized; mutate it before sharing the client
// across goroutines.
type Client struct {
	base    *url.URL
	methods map[string]string
	http    httpclient.Client
	log     *zap.SugaredLogger
}

// Option customizes client construction.
type Option func(*options)

type options struct {
	version  string
	template string
	http     httpclient.Client
	log      *zap.SugaredLogger
	timeout  time.Duration
}

// WithAPIVersion sets the API version substituted into the base URL template.
func WithAPIVersion(version string) Option {
	return func(o *options) {
		if version != "" {
			o.version = version
		}
	}
}

// WithBaseURLTemplate overrides the base URL template. The template may
// contain a {version} token.
func WithBaseURLTemplate(template string) Option {
	return func(o *options) {
		if template != "" {
			o.template = template
		}
	}
}

// WithHTTPClient injects an alternative HTTP transport, e.g. a fake in tests.
func WithHTTPClient(client httpclient.Client) Option {
	return func(o *options) {
		if client != nil {
			o.http = client
		}
	}
}

// WithLogger attaches a logger for diagnostic output such as built URLs.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithTimeout sets the request timeout of the default transport. Ignored
// when WithHTTPClient is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// NewClient builds a client with the version resolved into the base URL and
// a fresh copy of the default resource registry.
func NewClient(opts ...Option) (*Client, error) {
	o := options{
		version:  DefaultAPIVersion,
		template: DefaultBaseURLTemplate,
		timeout:  defaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	raw := strings.ReplaceAll(o.template, versionToken, o.version)
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	if o.http == nil {
		o.http = httpclient.NewRestyClient(o.timeout)
	}
	if o.log == nil {
		o.log = zap.NewNop().Sugar()
	}

	methods := make(map[string]string, len(defaultMethods))
	for name, path := range defaultMethods {
		methods[name] = path
	}

	return &Client{
		base:    base,
		methods: methods,
		http:    o.http,
		log:     o.log,
	}, nil
}

// BaseURL returns the effective base URL after version substitution.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Resolve performs a GET against rawURL expecting http.StatusOK and decodes
// the JSON body.
func (c *Client) Resolve(ctx context.Context, rawURL string) (any, error) {
	return c.ResolveStatus(ctx, rawURL, http.StatusOK)
}

// ResolveStatus performs a GET against rawURL. When the response status
// matches expected the body is decoded as JSON (object or array) and
// returned; otherwise the call fails with an *APIRequestError carrying the
// actual status and raw body. Transport and JSON decode failures propagate
// unmodified.
func (c *Client) ResolveStatus(ctx context.Context, rawURL string, expected int) (any, error) {
	resp, err := c.http.Get(ctx, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != expected {
		return nil, &APIRequestError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	var out any
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
