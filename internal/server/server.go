package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"roomstudio/internal/studio"
	"roomstudio/pkg/catalog"
	"roomstudio/pkg/httputil"
	"roomstudio/pkg/logger"
	"roomstudio/pkg/recommend"
)

// Server exposes the resolver, catalog and studio views over HTTP.
type Server struct {
	cat *catalog.Catalog
	res studio.Resolver
	svc *studio.Service
}

// NewServer initialises the HTTP API.
func NewServer(cat *catalog.Catalog, res studio.Resolver, svc *studio.Service) *Server {
	return &Server{cat: cat, res: res, svc: svc}
}

// Handler returns the routed handler wrapped in request-ID and access-log
// middleware.
func (s *Server) Handler() http.Handler {
	// Go 1.22+ pattern routing
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("POST /v1/resolve", s.handleResolve)
	mux.HandleFunc("GET /v1/models", s.handleModels)
	mux.HandleFunc("GET /v1/models/{key}/geometry", s.handleGeometry)
	mux.HandleFunc("POST /v1/studio/furniture-list", s.handleFurnitureList)
	mux.HandleFunc("POST /v1/studio/product-queries", s.handleProductQueries)
	mux.HandleFunc("POST /v1/studio/scene", s.handleScene)
	return withRequestID(withAccessLog(mux))
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("[Server] Starting room studio API on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type resolveRequest struct {
	Labels []string `json:"labels"`
}

type resolveResult struct {
	Label string `json:"label"`
	Key   string `json:"key"`
	Known bool   `json:"known"`
}

type resolveResponse struct {
	Results []resolveResult `json:"results"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Labels) == 0 {
		httputil.WriteError(w, http.StatusBadRequest, "labels must not be empty")
		return
	}

	out := resolveResponse{Results: make([]resolveResult, 0, len(req.Labels))}
	for _, label := range req.Labels {
		key, known := s.res.Lookup(label)
		out.Results = append(out.Results, resolveResult{Label: label, Key: key, Known: known})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"models": s.svc.Models()})
}

type geometryResponse struct {
	Key   string        `json:"key"`
	Color string        `json:"color"`
	Node  *catalog.Node `json:"node"`
}

func (s *Server) handleGeometry(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	entry, ok := s.cat.Entry(key)
	if !ok {
		httputil.WriteError(w, http.StatusNotFound, "unknown model key: "+key)
		return
	}

	color := entry.Color
	if c := r.URL.Query().Get("color"); c != "" {
		parsed, err := catalog.ParseColor(c)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		color = parsed.Hex()
	}
	httputil.WriteJSON(w, http.StatusOK, geometryResponse{Key: key, Color: color, Node: s.cat.Build(key, color)})
}

func (s *Server) handleFurnitureList(w http.ResponseWriter, r *http.Request) {
	var req studio.ListRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, s.svc.FurnitureList(r.Context(), req))
}

type productQueriesRequest struct {
	Room     recommend.RoomContext `json:"room"`
	Analysis *recommend.Analysis   `json:"analysis,omitempty"`
}

func (s *Server) handleProductQueries(w http.ResponseWriter, r *http.Request) {
	var req productQueriesRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, s.svc.ProductQueries(req.Analysis, req.Room))
}

type sceneRequest struct {
	Placements []studio.Placement `json:"placements"`
}

type sceneResponse struct {
	Objects []studio.SceneObject `json:"objects"`
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	var req sceneRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sceneResponse{Objects: s.svc.Scene(req.Placements)})
}
