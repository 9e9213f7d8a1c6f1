package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urbanobservatory/uoapi-go/pkg/uoapi"
	"go.uber.org/zap"
)

// Checker runs live verification calls against a deployed API, mirroring the
// documented example requests for the Urban Sciences Building.
type Checker struct {
	client *uoapi.Client
	log    *zap.SugaredLogger
}

// Well-known fixture identifiers on the USB deployment.
const (
	checkEntityID     = "47d42c59-0a33-4267-9a33-e64f5d11afc9"
	checkFeedID       = "f163a36e-e65a-4739-911d-9b909eccb83e"
	checkTimeseriesID = "bd0cc46d-ba2e-4924-a66e-b032d7ca33a5"
)

// NewChecker builds a checker around an existing client.
func NewChecker(client *uoapi.Client, log *zap.SugaredLogger) (*Checker, error) {
	if client == nil {
		return nil, fmt.Errorf("client must not be nil")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Checker{client: client, log: log}, nil
}

// Run executes every check, logging the outcome of each. Failures are
// aggregated; a nil return means every check passed.
func (c *Checker) Run(ctx context.Context) error {
	checks := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"entities page", c.checkEntities},
		{"single entity", c.checkEntity},
		{"feed", c.checkFeed},
		{"summary", c.checkSummary},
		{"timeseries window from time values", c.checkTimeseriesWindow},
		{"timeseries window from strings", c.checkTimeseriesStrings},
	}

	var errs []error
	for _, chk := range checks {
		if err := chk.fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", chk.name, err))
			c.log.Errorw("check failed", "check", chk.name, "error", err)
			continue
		}
		c.log.Infow("check passed", "check", chk.name)
	}
	return errors.Join(errs...)
}

func (c *Checker) checkEntities(ctx context.Context) error {
	res, err := c.client.GetEntities(ctx, 0)
	if err != nil {
		return err
	}
	obj, err := asObject(res)
	if err != nil {
		return err
	}
	return requireKeys(obj, "pagination", "items")
}

func (c *Checker) checkEntity(ctx context.Context) error {
	res, err := c.client.GetEntity(ctx, checkEntityID)
	if err != nil {
		return err
	}
	obj, err := asObject(res)
	if err != nil {
		return err
	}
	if got := obj["entityId"]; got != checkEntityID {
		return fmt.Errorf("entityId = %v, want %s", got, checkEntityID)
	}
	return requireKeys(obj, "meta")
}

func (c *Checker) checkFeed(ctx context.Context) error {
	res, err := c.client.GetFeed(ctx, checkFeedID)
	if err != nil {
		return err
	}
	obj, err := asObject(res)
	if err != nil {
		return err
	}
	if got := obj["feedId"]; got != checkFeedID {
		return fmt.Errorf("feedId = %v, want %s", got, checkFeedID)
	}
	return requireKeys(obj, "metric", "meta")
}

func (c *Checker) checkSummary(ctx context.Context) error {
	res, err := c.client.GetSummary(ctx)
	if err != nil {
		return err
	}
	list, ok := res.([]any)
	if !ok {
		return fmt.Errorf("summary payload is %T, want array", res)
	}
	if len(list) == 0 {
		return errors.New("summary payload is empty")
	}
	first, err := asObject(list[0])
	if err != nil {
		return err
	}
	return requireKeys(first, "entityId")
}

func (c *Checker) checkTimeseriesWindow(ctx context.Context) error {
	return c.checkTimeseries(ctx, uoapi.TimeseriesQuery{
		Start: time.Date(2018, 1, 20, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2018, 1, 20, 1, 0, 0, 0, time.UTC),
	})
}

func (c *Checker) checkTimeseriesStrings(ctx context.Context) error {
	return c.checkTimeseries(ctx, uoapi.TimeseriesQuery{
		Start: "2018-01-20T00:00:00Z",
		End:   "2018-01-20T01:00:00Z",
	})
}

func (c *Checker) checkTimeseries(ctx context.Context, q uoapi.TimeseriesQuery) error {
	res, err := c.client.GetTimeseries(ctx, checkTimeseriesID, q)
	if err != nil {
		return err
	}
	obj, err := asObject(res)
	if err != nil {
		return err
	}
	ts, err := asObject(obj["timeseries"])
	if err != nil {
		return fmt.Errorf("timeseries field: %w", err)
	}
	if got := ts["timeseriesId"]; got != checkTimeseriesID {
		return fmt.Errorf("timeseriesId = %v, want %s", got, checkTimeseriesID)
	}
	return nil
}

func asObject(v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("payload is %T, want object", v)
	}
	return obj, nil
}

func requireKeys(obj map[string]any, keys ...string) error {
	for _, key := range keys {
		if _, ok := obj[key]; !ok {
			return fmt.Errorf("payload is missing %q", key)
		}
	}
	return nil
}
