package uoapi

import (
	"fmt"
	"net/url"
	"strings"
)

// Logical REST method names pre-registered on every client.
const (
	MethodEntities   = "entities"
	MethodFeed       = "feed"
	MethodTimeseries = "timeseries"
	MethodSummary    = "summary"
)

// defaultMethods maps logical method names to relative resource paths. Each
// client receives its own copy so registry mutation never leaks between
// instances.
var defaultMethods = map[string]string{
	MethodEntities:   "sensors/entity",
	MethodFeed:       "sensors/feed",
	MethodTimeseries: "sensors/timeseries",
	MethodSummary:    "sensors/summary",
}

// Param is a single query-string pair.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Order is preserved when
// encoding, unlike url.Values which sorts keys.
type Params []Param

// Encode percent-encodes the parameters in order, joined by '&'.
func (ps Params) Encode() string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// RegisterMethod adds or replaces a named resource path in the registry.
// The last write wins; the path is taken verbatim with no validation.
func (c *Client) RegisterMethod(name, path string) {
	c.methods[name] = path
}

// BuildURL constructs a fully qualified URL for a registered REST method,
// appending the path components in order. Every segment is resolved with a
// trailing slash; the slash is structural, without it the next segment would
// replace rather than extend the previous one under URL-join semantics.
func (c *Client) BuildURL(method string, components []string, params Params) (string, error) {
	path, ok := c.methods[method]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	u := c.base.ResolveReference(&url.URL{Path: path + "/"})
	for _, comp := range components {
		u = u.ResolveReference(&url.URL{Path: comp + "/"})
	}

	built := u.String()
	if len(params) > 0 {
		built += "?" + params.Encode()
	}

	c.log.Debugw("built url", "url", built)
	return built, nil
}
