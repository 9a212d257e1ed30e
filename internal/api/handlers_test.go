package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/routekit/elbow/pkg/cache"
	"github.com/routekit/elbow/pkg/errors"
	"github.com/routekit/elbow/pkg/pipeline"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, nil)
	t.Cleanup(func() { _ = runner.Close() })
	return NewServer("127.0.0.1:0", runner, nil)
}

const routeBody = `{
	"name": "demo",
	"a": {"shape": {"x": 0, "y": 0, "width": 100, "height": 100}, "side": "right", "distance": 0.5},
	"b": {"shape": {"x": 300, "y": 0, "width": 100, "height": 100}, "side": "left", "distance": 0.5},
	"shape_margin": 10
}`

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, testServer(t), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRoute(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/route", routeBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var resp routeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Result.Name != "demo" || resp.CacheHit {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Result.Bends != 0 || len(resp.Result.Connections) != 1 {
		t.Errorf("unexpected result: %+v", resp.Result)
	}

	// Identical request hits the cache.
	rec = doRequest(t, s, http.MethodPost, "/api/v1/route", routeBody)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.CacheHit {
		t.Error("expected cache hit on repeat request")
	}
}

func TestRouteSVG(t *testing.T) {
	rec := doRequest(t, testServer(t), http.MethodPost, "/api/v1/route/svg", routeBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg ") {
		t.Errorf("body is not SVG: %.40s", rec.Body)
	}
}

func TestRouteErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   errors.Code
	}{
		{
			"malformed JSON",
			"{not json",
			http.StatusBadRequest,
			errors.ErrCodeInvalidScenario,
		},
		{
			"unknown side",
			strings.Replace(routeBody, `"side": "right"`, `"side": "diagonal"`, 1),
			http.StatusBadRequest,
			errors.ErrCodeInvalidScenario,
		},
		{
			"negative margin",
			strings.Replace(routeBody, `"shape_margin": 10`, `"shape_margin": -1`, 1),
			http.StatusBadRequest,
			errors.ErrCodeInvalidConfig,
		},
		{
			"unroutable enclosure",
			`{
				"a": {"shape": {"x": 0, "y": 0, "width": 100, "height": 100}, "side": "right", "distance": 0.5},
				"b": {"shape": {"x": 20, "y": 20, "width": 30, "height": 30}, "side": "left", "distance": 0.5},
				"shape_margin": 60
			}`,
			http.StatusUnprocessableEntity,
			errors.ErrCodeUnroutable,
		},
	}

	s := testServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/api/v1/route", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp.Code != tt.code {
				t.Errorf("code = %q, want %q", resp.Code, tt.code)
			}
		})
	}
}
