package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/kardel/brep2graph/pkg/hetero"
	"github.com/kardel/brep2graph/pkg/logging"
	"github.com/kardel/brep2graph/pkg/pubsub"
)

//go:embed static/*
var staticFiles embed.FS

// Server serves the converted graph over HTTP: JSON endpoints for the
// full tensor set and its summary, plus SSE streams for live updates
// in watch mode.
type Server struct {
	router    *mux.Router
	publisher pubsub.Publisher

	mu    sync.RWMutex
	scene string
	graph *hetero.Graph
}

// NewServer creates a new web server
func NewServer() *Server {
	ssePublisher := pubsub.NewSSEPublisher()

	// conversion_status: buffer last 10 events, replay only the
	// current state to new subscribers
	ssePublisher.ConfigureTopic("conversion_status", pubsub.TopicConfig{
		BufferSize: 10,
		ReplayAll:  false,
	})

	// graph: buffer last event, replay it
	ssePublisher.ConfigureTopic("graph", pubsub.TopicConfig{
		BufferSize: 1,
		ReplayAll:  false,
	})

	s := &Server{
		router:    mux.NewRouter(),
		publisher: ssePublisher,
	}
	s.setupRoutes()
	return s
}

// SetGraph stores a freshly converted graph and notifies subscribers
func (s *Server) SetGraph(scene string, g *hetero.Graph) {
	s.mu.Lock()
	s.scene = scene
	s.graph = g
	s.mu.Unlock()

	if err := s.publisher.Publish("graph", "updated", summarize(scene, g)); err != nil {
		logging.Warn("failed to publish graph update", "error", err)
	}
}

// PublishStatus publishes a conversion status event
func (s *Server) PublishStatus(state, message, scene string) error {
	status := pubsub.ConversionStatus{
		State:   state,
		Message: message,
		Scene:   scene,
	}
	return s.publisher.Publish("conversion_status", state, status)
}

func (s *Server) setupRoutes() {
	// SSE subscription endpoints; /api/events is the combined default
	// stream the viewer listens on
	s.router.HandleFunc("/api/subscribe/conversion_status", s.handleSubscribe("conversion_status")).Methods("GET")
	s.router.HandleFunc("/api/subscribe/graph", s.handleSubscribe("graph")).Methods("GET")
	s.router.HandleFunc("/api/events", s.handleSubscribe("graph")).Methods("GET")

	// API routes
	s.router.HandleFunc("/api/graph", s.handleGraph).Methods("GET")
	s.router.HandleFunc("/api/summary", s.handleSummary).Methods("GET")

	// Serve static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	s.router.PathPrefix("/").Handler(http.FileServer(http.FS(staticFS)))
}

// handleSubscribe streams one topic's events as SSE
func (s *Server) handleSubscribe(topic string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		// Initial comment to establish the connection (Safari
		// compatibility)
		fmt.Fprintf(w, ": connected\n\n")
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}

		sub, err := s.publisher.Subscribe(r.Context(), topic)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer sub.Close()

		for event := range sub.Events() {
			if err := pubsub.WriteSSE(w, event); err != nil {
				logging.Error("error writing SSE event", "error", err)
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}
		}
	}
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	s.mu.RLock()
	g := s.graph
	s.mu.RUnlock()

	if g == nil {
		http.Error(w, "Graph not available", http.StatusServiceUnavailable)
		return
	}
	json.NewEncoder(w).Encode(g)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	s.mu.RLock()
	scene, g := s.scene, s.graph
	s.mu.RUnlock()

	if g == nil {
		json.NewEncoder(w).Encode(pubsub.GraphSummary{})
		return
	}
	json.NewEncoder(w).Encode(summarize(scene, g))
}

// summarize reduces a graph to the counts shown in the UI
func summarize(scene string, g *hetero.Graph) pubsub.GraphSummary {
	return pubsub.GraphSummary{
		Scene:         scene,
		Vertices:      g.NumNodes(hetero.KindVertex),
		Edges:         g.NumNodes(hetero.KindEdge),
		Faces:         g.NumNodes(hetero.KindFace),
		ControlPoints: g.NumNodes(hetero.KindControlPoint),
		Adjacencies:   g.FaceAdjacentFace.Len(),
		Complete:      true,
	}
}

// Handler returns the server's root handler with request logging
func (s *Server) Handler() http.Handler {
	return logging.RequestIDMiddleware(s.router)
}

// Start starts the web server on the specified port
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	logging.Info("starting web server", "addr", fmt.Sprintf("http://localhost%s", addr))
	return http.ListenAndServe(addr, s.Handler())
}
