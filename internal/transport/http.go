// Package transport serves the host UI over plain JSON-RPC 2.0 plus an
// SVG snapshot endpoint.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yanchr/history-arrow-2/internal/timeline/view"
)

// RPCHandler handles method dispatch.
type RPCHandler interface {
	Handle(ctx context.Context, method string, params json.RawMessage) (any, error)
}

// SVGService renders a window of the timeline as an SVG document.
type SVGService interface {
	RenderWindow(ctx context.Context, w view.Window, viewportPx float64, platform string) (string, error)
}

// APIError carries a machine-readable code alongside the message; the
// dispatch handler returns these for domain failures.
type APIError interface {
	error
	CodeValue() string
}

// Server wires HTTP handlers.
type Server struct {
	handler RPCHandler
	svg     SVGService
}

// NewServer creates an HTTP router for the host UI.
func NewServer(handler RPCHandler, svg SVGService) *chi.Mux {
	r := chi.NewRouter()

	srv := &Server{handler: handler, svg: svg}

	r.Post("/rpc", srv.handleRPC)
	r.Get("/health", srv.handleHealth)
	r.Get("/timeline.svg", srv.handleSVG)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.Body)
	if err != nil {
		WriteError(w, nil, ErrInvalidReq, "invalid request", nil)
		return
	}

	result, err := s.handler.Handle(r.Context(), req.Method, req.Params)
	if err != nil {
		var apiErr APIError
		if errors.As(err, &apiErr) {
			WriteError(w, req.ID, ErrInvalidParams, err.Error(), apiErr)
			return
		}
		WriteError(w, req.ID, ErrInternal, err.Error(), nil)
		return
	}

	WriteResult(w, req.ID, result)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var window view.Window
	var err error
	if window.Start, err = queryFloat(q.Get("start")); err != nil {
		http.Error(w, "invalid start", http.StatusBadRequest)
		return
	}
	if window.End, err = queryFloat(q.Get("end")); err != nil {
		http.Error(w, "invalid end", http.StatusBadRequest)
		return
	}
	width, err := queryFloat(q.Get("width"))
	if err != nil {
		http.Error(w, "invalid width", http.StatusBadRequest)
		return
	}

	svg, err := s.svg.RenderWindow(r.Context(), window, width, q.Get("platform"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}

func queryFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
