package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/urbanobservatory/uoapi-go/pkg/uoapi"
)

func newFixtureServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()

	var timeseriesQueries []string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v0.1/sensors/entity/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v0.1/sensors/entity/"+checkEntityID+"/" {
			w.Write([]byte(`{"entityId": "` + checkEntityID + `", "meta": {}}`))
			return
		}
		w.Write([]byte(`{"pagination": {"pageNumber": 0}, "items": []}`))
	})
	mux.HandleFunc("/api/v0.1/sensors/feed/"+checkFeedID+"/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"feedId": "` + checkFeedID + `", "metric": "wind speed", "meta": {}}`))
	})
	mux.HandleFunc("/api/v0.1/sensors/summary/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"entityId": "` + checkEntityID + `"}]`))
	})
	mux.HandleFunc("/api/v0.1/sensors/timeseries/"+checkTimeseriesID+"/historic/", func(w http.ResponseWriter, r *http.Request) {
		timeseriesQueries = append(timeseriesQueries, r.URL.RawQuery)
		w.Write([]byte(`{"timeseries": {"timeseriesId": "` + checkTimeseriesID + `"}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &timeseriesQueries
}

func newFixtureChecker(t *testing.T, baseURL string) *Checker {
	t.Helper()
	client, err := uoapi.NewClient(uoapi.WithBaseURLTemplate(baseURL + "/api/v{version}/"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	checker, err := NewChecker(client, nil)
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	return checker
}

func TestCheckerRunAllPass(t *testing.T) {
	srv, queries := newFixtureServer(t)
	checker := newFixtureChecker(t, srv.URL)

	if err := checker.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(*queries) != 2 {
		t.Fatalf("expected 2 historic window requests, got %d", len(*queries))
	}
	for _, q := range *queries {
		if !strings.Contains(q, "startTime=2018-01-20T00%3A00%3A00Z") ||
			!strings.Contains(q, "endTime=2018-01-20T01%3A00%3A00Z") {
			t.Fatalf("unexpected historic window query: %s", q)
		}
	}
}

func TestCheckerAggregatesFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/v0.1/sensors/summary/") {
			// Wrong shape: the summary must be an array.
			w.Write([]byte(`{"entities": []}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("backend down"))
	}))
	defer srv.Close()

	checker := newFixtureChecker(t, srv.URL)
	err := checker.Run(context.Background())
	if err == nil {
		t.Fatalf("expected aggregated failures")
	}
	if !strings.Contains(err.Error(), "summary") {
		t.Fatalf("summary shape failure not reported: %v", err)
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("status mismatch failures not reported: %v", err)
	}
}

func TestNewCheckerRequiresClient(t *testing.T) {
	if _, err := NewChecker(nil, nil); err == nil {
		t.Fatalf("expected error for nil client")
	}
}
