package uoapi

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Endpoint is one named resource path for the registry.
type Endpoint struct {
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
}

type endpointsFile struct {
	Endpoints []Endpoint `yaml:"endpoints"`
}

// LoadEndpoints reads extra or overriding registry entries from a YAML file.
func LoadEndpoints(path string) ([]Endpoint, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("endpoints file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read endpoints file: %w", err)
	}

	var f endpointsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode endpoints file: %w", err)
	}
	if len(f.Endpoints) == 0 {
		return nil, errors.New("endpoints file contains no entries")
	}

	seen := make(map[string]bool, len(f.Endpoints))
	for i := range f.Endpoints {
		e := &f.Endpoints[i]
		e.Method = strings.TrimSpace(e.Method)
		e.Path = strings.TrimSpace(e.Path)

		if e.Method == "" {
			return nil, fmt.Errorf("endpoint[%d]: method is required", i)
		}
		if e.Path == "" {
			return nil, fmt.Errorf("endpoint[%d]: path is required for method %q", i, e.Method)
		}
		if seen[e.Method] {
			return nil, fmt.Errorf("duplicate endpoint method %q", e.Method)
		}
		seen[e.Method] = true
	}

	return f.Endpoints, nil
}

// RegisterEndpoints applies the entries to the client registry in order.
func (c *Client) RegisterEndpoints(endpoints []Endpoint) {
	for _, e := range endpoints {
		c.RegisterMethod(e.Method, e.Path)
	}
}
