package app

import (
	"fmt"

	"github.com/urbanobservatory/uoapi-go/internal/config"
	"github.com/urbanobservatory/uoapi-go/pkg/uoapi"
	"go.uber.org/zap"
)

// NewClient builds an API client from application config, applying any
// configured endpoints file to the registry.
func NewClient(cfg *config.Config, log *zap.SugaredLogger) (*uoapi.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	client, err := uoapi.NewClient(
		uoapi.WithAPIVersion(cfg.APIVersion),
		uoapi.WithBaseURLTemplate(cfg.BaseURLTemplate),
		uoapi.WithTimeout(cfg.HTTPTimeout),
		uoapi.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	if cfg.EndpointsFile != "" {
		endpoints, err := uoapi.LoadEndpoints(cfg.EndpointsFile)
		if err != nil {
			return nil, fmt.Errorf("load endpoints file: %w", err)
		}
		client.RegisterEndpoints(endpoints)
		log.Infow("extra endpoints registered", "count", len(endpoints), "file", cfg.EndpointsFile)
	}

	return client, nil
}
