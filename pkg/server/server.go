// Package server exposes the converter over HTTP for frontends that
// upload a Graphviz SVG and receive a draw.io file back.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/khushaljethava/graphviz2drawio/internal/logger"
	"github.com/khushaljethava/graphviz2drawio/internal/store"
	"github.com/khushaljethava/graphviz2drawio/pkg/converter"
	"github.com/khushaljethava/graphviz2drawio/pkg/mxgraph"
	"github.com/khushaljethava/graphviz2drawio/pkg/svg"
)

// Server handles conversion requests. The history store is optional;
// when present, successful conversions are recorded in it.
type Server struct {
	router  *mux.Router
	history *store.Store
}

func NewServer(history *store.Store) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		history: history,
	}
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/convert", s.handleConvert).Methods(http.MethodPost)
	s.router.HandleFunc("/api/conversions", s.handleConversions).Methods(http.MethodGet)
	return s
}

// Handler returns the root http handler for the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server on the given address
func (s *Server) ListenAndServe(addr string) error {
	logger.Info("Listening on", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	doc, err := svg.NewDocument(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	g, err := converter.BuildGraph(doc, nil)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	compressed := r.URL.Query().Get("compressed") == "1"
	var out []byte
	if compressed {
		out, err = mxgraph.EmitCompressed(g)
	} else {
		out, err = mxgraph.Emit(g)
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	// history is best effort; a store failure never fails a conversion
	if s.history != nil {
		_, err := s.history.Record(store.Conversion{
			NodeCount: len(g.Nodes),
			EdgeCount: len(g.Edges),
			BytesOut:  len(out),
		})
		if err != nil {
			logger.Warn("Failed to record conversion:", err)
		}
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

func (s *Server) handleConversions(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "conversion history is not enabled"})
		return
	}
	recent, err := s.history.Recent(20)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	type conversionJSON struct {
		ID        int64  `json:"id"`
		CreatedAt string `json:"created_at"`
		NodeCount int    `json:"node_count"`
		EdgeCount int    `json:"edge_count"`
		BytesOut  int    `json:"bytes_out"`
	}
	out := make([]conversionJSON, 0, len(recent))
	for _, c := range recent {
		out = append(out, conversionJSON{
			ID:        c.ID,
			CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			NodeCount: c.NodeCount,
			EdgeCount: c.EdgeCount,
			BytesOut:  c.BytesOut,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to write response:", err)
	}
}

// Start opens the optional history store and runs the server until it
// stops
func Start(addr string, dbPath string) error {
	var history *store.Store
	if dbPath != "" {
		h, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open conversion history: %w", err)
		}
		defer h.Close()
		history = h
		logger.Info("Recording conversion history in", dbPath)
	}
	return NewServer(history).ListenAndServe(addr)
}
