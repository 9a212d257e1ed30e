package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/routekit/elbow/pkg/errors"
	"github.com/routekit/elbow/pkg/render"
	"github.com/routekit/elbow/pkg/router"
	"github.com/routekit/elbow/pkg/scenario"
)

// maxBodySize bounds request bodies to keep malformed uploads cheap.
const maxBodySize = 1 << 20

// routeResponse is the envelope for a successful routing call.
type routeResponse struct {
	Result   *scenario.Result `json:"result"`
	CacheHit bool             `json:"cache_hit"`
}

// errorResponse is the envelope for failures.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRoute routes a single request and returns the full result with
// rulers, grid, spots and connections.
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	bp, hit, err := s.runner.RouteRequest(r.Context(), req, false)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, routeResponse{
		Result:   scenario.ResultFrom(req.Name, bp),
		CacheHit: hit,
	})
}

// handleRouteSVG routes a single request and returns the rendered SVG.
func (s *Server) handleRouteSVG(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	bp, _, err := s.runner.RouteRequest(r.Context(), req, false)
	if err != nil {
		s.writeError(w, err)
		return
	}
	svg := render.SVG(bp, render.WithShapes(req.A.Shape.Rect(), req.B.Shape.Rect()))
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (scenario.Request, bool) {
	var req scenario.Request
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode request body"))
		return req, false
	}
	if req.Name == "" {
		req.Name = "route"
	}
	return req, true
}

// writeError maps an error to its HTTP status. Core sentinel errors that
// reach this point uncoded get classified here so handlers don't have to.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		switch {
		case stderrors.Is(err, router.ErrInvalidConfig):
			code = errors.ErrCodeInvalidConfig
		case stderrors.Is(err, router.ErrUnroutable):
			code = errors.ErrCodeUnroutable
		default:
			code = errors.ErrCodeInternal
		}
	}
	status := errors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
