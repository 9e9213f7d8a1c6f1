package uoapi

import (
	"context"
	"fmt"
	"time"
)

// TimeValue is either a pre-formatted timestamp string, passed through
// unchanged, or a time.Time normalized to ISO-8601 before use.
type TimeValue any

// TimeseriesQuery selects one of three mutually exclusive timeseries views:
// an explicit historic window (Start and End both set), the trailing
// 24-hour window (Last24 with no explicit times), or the latest snapshot
// (zero value).
type TimeseriesQuery struct {
	Start  TimeValue
	End    TimeValue
	Last24 bool
}

const historicSegment = "historic"

// GetTimeseries returns timeseries data for the given UUID, scoped by the
// query. Window starts have sub-second precision truncated to zero; window
// ends keep full precision.
func (c *Client) GetTimeseries(ctx context.Context, timeseriesID string, q TimeseriesQuery) (any, error) {
	u, err := c.timeseriesURL(timeseriesID, q)
	if err != nil {
		return nil, err
	}
	return c.Resolve(ctx, u)
}

func (c *Client) timeseriesURL(timeseriesID string, q TimeseriesQuery) (string, error) {
	switch {
	case q.Start != nil && q.End != nil:
		start, err := normalizeTime(q.Start, true)
		if err != nil {
			return "", err
		}
		end, err := normalizeTime(q.End, false)
		if err != nil {
			return "", err
		}
		return c.BuildURL(MethodTimeseries, []string{timeseriesID, historicSegment}, Params{
			{Key: "startTime", Value: start},
			{Key: "endTime", Value: end},
		})
	case q.Last24:
		return c.BuildURL(MethodTimeseries, []string{timeseriesID, historicSegment}, nil)
	default:
		return c.BuildURL(MethodTimeseries, []string{timeseriesID}, nil)
	}
}

// normalizeTime renders a TimeValue as a timestamp string. Strings pass
// through untouched; truncate drops sub-second precision.
func normalizeTime(v TimeValue, truncate bool) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case time.Time:
		if truncate {
			return t.Truncate(time.Second).Format(time.RFC3339), nil
		}
		return t.Format(time.RFC3339Nano), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrInvalidTimeValue, v)
	}
}
