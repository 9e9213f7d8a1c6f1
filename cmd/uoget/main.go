package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urbanobservatory/uoapi-go/internal/app"
	"github.com/urbanobservatory/uoapi-go/internal/config"
	"github.com/urbanobservatory/uoapi-go/internal/logger"
	"github.com/urbanobservatory/uoapi-go/pkg/uoapi"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "uoget failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		resource = flag.String("resource", "summary", "resource to fetch: entities, entity, feed, timeseries or summary")
		uuid     = flag.String("uuid", "", "entity, feed or timeseries UUID")
		page     = flag.Int("page", 0, "page number for the entities listing")
		start    = flag.String("start", "", "historic window start timestamp (e.g. 2017-12-16T00:00:00Z)")
		end      = flag.String("end", "", "historic window end timestamp")
		last24   = flag.Bool("last24", false, "fetch the trailing 24-hour historic window")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := app.NewClient(cfg, log)
	if err != nil {
		return err
	}

	res, err := fetch(ctx, client, *resource, *uuid, *page, *start, *end, *last24)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func fetch(ctx context.Context, client *uoapi.Client, resource, uuid string, page int, start, end string, last24 bool) (any, error) {
	switch resource {
	case "entities":
		return client.GetEntities(ctx, page)
	case "entity":
		if uuid == "" {
			return nil, fmt.Errorf("-uuid is required for resource %q", resource)
		}
		return client.GetEntity(ctx, uuid)
	case "feed":
		if uuid == "" {
			return nil, fmt.Errorf("-uuid is required for resource %q", resource)
		}
		return client.GetFeed(ctx, uuid)
	case "timeseries":
		if uuid == "" {
			return nil, fmt.Errorf("-uuid is required for resource %q", resource)
		}
		q := uoapi.TimeseriesQuery{Last24: last24}
		if start != "" {
			q.Start = start
		}
		if end != "" {
			q.End = end
		}
		return client.GetTimeseries(ctx, uuid, q)
	case "summary":
		return client.GetSummary(ctx)
	default:
		return nil, fmt.Errorf("unknown resource %q", resource)
	}
}
