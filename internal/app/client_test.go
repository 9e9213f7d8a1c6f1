package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/urbanobservatory/uoapi-go/internal/config"
)

func TestNewClientAppliesEndpointsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "endpoints.yaml")
	content := `
endpoints:
  - method: buildings
    path: sensors/building
`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write endpoints file: %v", err)
	}

	cfg := &config.Config{
		APIVersion:      "0.1",
		BaseURLTemplate: "https://example.com/api/v{version}/",
		EndpointsFile:   file,
		HTTPTimeout:     time.Second,
	}

	client, err := NewClient(cfg, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	u, err := client.BuildURL("buildings", []string{"b-1"}, nil)
	if err != nil {
		t.Fatalf("BuildURL: %v", err)
	}
	if u != "https://example.com/api/v0.1/sensors/building/b-1/" {
		t.Fatalf("url = %s", u)
	}
}

func TestNewClientRejectsBadEndpointsFile(t *testing.T) {
	cfg := &config.Config{
		APIVersion:      "0.1",
		BaseURLTemplate: "https://example.com/api/v{version}/",
		EndpointsFile:   filepath.Join(t.TempDir(), "missing.yaml"),
		HTTPTimeout:     time.Second,
	}

	_, err := NewClient(cfg, nil)
	if err == nil || !strings.Contains(err.Error(), "endpoints file") {
		t.Fatalf("expected endpoints file error, got %v", err)
	}
}
